package baserow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, Token: "test-token"})
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://localhost"})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestListRowsSendsTokenAndParams(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(RowPage{Count: 0})
	})

	_, err := client.ListRows(context.Background(), "501", ListParams{Page: 2, Size: 10, Search: "pen"})
	require.NoError(t, err)

	assert.Equal(t, "Token test-token", gotAuth)
	assert.Equal(t, "/api/database/rows/table/501/", gotPath)
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "size=10")
	assert.Contains(t, gotQuery, "search=pen")
}

func TestCreateRowPostsFields(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id": 99, "field_5372": "TEMP-1"}`))
	})

	row, err := client.CreateRow(context.Background(), "501", map[string]any{"field_5372": "TEMP-1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "TEMP-1", gotBody["field_5372"])
	assert.Equal(t, int64(99), row.ID)
}

func TestUpdateRowPatchesByID(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 42}`))
	})

	_, err := client.UpdateRow(context.Background(), "501", 42, map[string]any{"field_5305": "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/database/rows/table/501/42/", gotPath)
}

func TestDeleteRow(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteRow(context.Background(), "501", 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/database/rows/table/501/7/", gotPath)
}

func TestErrorResponseBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "ERROR_ROW_DOES_NOT_EXIST"}`))
	})

	err := client.DeleteRow(context.Background(), "501", 12345)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.True(t, IsNotFound(err))
}
