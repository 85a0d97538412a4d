// Package baserow is a minimal HTTP client for the Baserow row API: paginated
// listing with server-side search/filter/sort, and create/update/delete of
// single rows keyed by row identifier.
package baserow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the hosted Baserow API endpoint.
const DefaultBaseURL = "https://api.baserow.io"

// Config holds the connection parameters for a Client.
type Config struct {
	// BaseURL of the Baserow deployment. Defaults to DefaultBaseURL.
	BaseURL string
	// Token is the database token sent as "Authorization: Token <token>".
	Token string
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the Baserow row API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	debug      bool
}

// NewClient constructs a Client with sane defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
		debug:      os.Getenv("ENV") == "development",
	}, nil
}

// rowsPath builds the row endpoint for a table. The trailing slash is
// required by the API.
func rowsPath(tableID string) string {
	return fmt.Sprintf("/api/database/rows/table/%s/", tableID)
}

// ListRows fetches one page of rows with the given search/filter/sort parameters.
func (c *Client) ListRows(ctx context.Context, tableID string, params ListParams) (*RowPage, error) {
	if tableID == "" {
		return nil, ErrMissingTable
	}
	var page RowPage
	if err := c.doRequest(ctx, http.MethodGet, rowsPath(tableID), params.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateRow inserts a row. Fields are keyed by opaque field identifier.
func (c *Client) CreateRow(ctx context.Context, tableID string, fields map[string]any) (*Row, error) {
	if tableID == "" {
		return nil, ErrMissingTable
	}
	var row Row
	if err := c.doRequest(ctx, http.MethodPost, rowsPath(tableID), nil, fields, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateRow patches an existing row. Only the provided fields change.
func (c *Client) UpdateRow(ctx context.Context, tableID string, rowID int64, fields map[string]any) (*Row, error) {
	if tableID == "" {
		return nil, ErrMissingTable
	}
	var row Row
	path := fmt.Sprintf("%s%d/", rowsPath(tableID), rowID)
	if err := c.doRequest(ctx, http.MethodPatch, path, nil, fields, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteRow removes a row by identifier.
func (c *Client) DeleteRow(ctx context.Context, tableID string, rowID int64) error {
	if tableID == "" {
		return ErrMissingTable
	}
	path := fmt.Sprintf("%s%d/", rowsPath(tableID), rowID)
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}

// doRequest performs one HTTP call against the row API and decodes the JSON
// response into result when result is non-nil.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	reqID := uuid.NewString()

	var payload io.Reader
	var rawBody []byte
	if body != nil {
		var err error
		rawBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(rawBody)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	if c.debug {
		ev := log.Debug().
			Str("request_id", reqID).
			Str("method", method).
			Str("endpoint", endpoint)
		if rawBody != nil {
			ev = ev.RawJSON("request", rawBody)
		}
		ev.Msg("[BASEROW] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("request_id", reqID).
			Int("status_code", resp.StatusCode).
			Str("path", path).
			Msg("[BASEROW] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   strings.TrimSpace(string(respBody)),
		}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
