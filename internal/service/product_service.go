package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/offineeds/pim-admin/internal/models"
	"github.com/offineeds/pim-admin/internal/schema"
	"github.com/offineeds/pim-admin/pkg/baserow"
)

// distinctValuesPageSize bounds the single page scanned when collecting
// dropdown options. Values past this window are not offered.
const distinctValuesPageSize = 1000

// ProductService is the mapping and query layer over the product table: it
// translates raw opaque-identifier rows into named Product records and builds
// the outbound search/filter/sort parameters.
type ProductService struct {
	client  *baserow.Client
	fields  schema.FieldMap
	tableID string
}

// NewProductService constructs a ProductService.
func NewProductService(client *baserow.Client, sch *schema.Schema, tableID string) *ProductService {
	return &ProductService{
		client:  client,
		fields:  sch.Products,
		tableID: tableID,
	}
}

// List fetches one catalog page. Filters on option-typed attributes match the
// unwrapped select value exactly; everything else is a substring match. A
// category filter is special-cased to a contains match on the linked-category
// field because linked rows render as labels.
func (s *ProductService) List(ctx context.Context, q models.ListQuery) (*models.ProductPage, error) {
	params := baserow.ListParams{
		Page:   q.Page,
		Size:   q.Size,
		Search: q.Search,
	}

	if q.Category != "" {
		params.Filters = append(params.Filters, baserow.Filter{
			Field:      s.fields.ColumnFor("categories"),
			Comparison: baserow.CompareContains,
			Value:      q.Category,
		})
	}

	// Stable filter order keeps outbound requests deterministic.
	names := make([]string, 0, len(q.Filters))
	for name := range q.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := q.Filters[name]
		if strings.TrimSpace(value) == "" {
			continue
		}
		filter := baserow.Filter{Value: value}
		switch {
		case name == "categories" || name == "category":
			filter.Field = s.fields.ColumnFor("categories")
			filter.Comparison = baserow.CompareContains
		case s.fields.IsOption(name):
			filter.Field = s.fields.ColumnFor(name)
			filter.Comparison = baserow.CompareOptionEqual
		default:
			filter.Field = s.fields.ColumnFor(name)
			filter.Comparison = baserow.CompareContains
		}
		params.Filters = append(params.Filters, filter)
	}

	if q.Sort.IsActive() {
		params.SortBy = s.fields.ColumnFor(q.Sort.Field)
		params.SortDesc = q.Sort.Direction == models.SortDesc
	}

	page, err := s.client.ListRows(ctx, s.tableID, params)
	if err != nil {
		log.Error().Err(err).Int("page", q.Page).Msg("failed to list products")
		return nil, err
	}

	products := make([]models.Product, 0, len(page.Results))
	for _, row := range page.Results {
		products = append(products, s.toProduct(row))
	}
	return &models.ProductPage{
		Products:   products,
		TotalCount: page.Count,
		Page:       q.Page,
		Size:       q.Size,
	}, nil
}

// Create inserts a new product. The draft's named attributes are mapped back
// to opaque field identifiers before submission; the read and write paths
// share one dictionary.
func (s *ProductService) Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	row, err := s.client.CreateRow(ctx, s.tableID, s.writeFields(draft))
	if err != nil {
		log.Error().Err(err).Str("sku", draft.SKU).Msg("failed to create product")
		return nil, err
	}
	created := s.toProduct(*row)
	return &created, nil
}

// Update patches an existing product with the draft's attributes.
func (s *ProductService) Update(ctx context.Context, id int64, draft models.ProductDraft) (*models.Product, error) {
	row, err := s.client.UpdateRow(ctx, s.tableID, id, s.writeFields(draft))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update product")
		return nil, err
	}
	updated := s.toProduct(*row)
	return &updated, nil
}

// Delete removes a single product by identifier.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteRow(ctx, s.tableID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete product")
		return err
	}
	return nil
}

// DeleteMany fans out one delete per identifier, concurrently, and joins on
// all of them. One failing delete fails the aggregate but does not cancel its
// siblings, so every identifier gets its attempt; completed deletes are not
// rolled back.
func (s *ProductService) DeleteMany(ctx context.Context, ids []int64) error {
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			return s.Delete(ctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("bulk delete failed")
		return err
	}
	return nil
}

// DistinctValues scans one fixed-size page of rows and returns the sorted
// unique values of the named attribute, for dropdown filters. Failures
// degrade to an empty list so one broken field never blocks the others.
func (s *ProductService) DistinctValues(ctx context.Context, field string) []string {
	page, err := s.client.ListRows(ctx, s.tableID, baserow.ListParams{Size: distinctValuesPageSize})
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to load distinct values")
		return nil
	}

	col := s.fields.ColumnFor(field)
	kind := s.fields.Kind(field)

	seen := make(map[string]struct{})
	for _, row := range page.Results {
		for _, value := range cellStrings(row.Field(col), kind) {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			seen[value] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// cellStrings renders a cell into candidate strings according to the field's
// declared kind. Linked cells contribute each label separately.
func cellStrings(v baserow.Value, kind schema.FieldKind) []string {
	switch kind {
	case schema.KindOption:
		return []string{v.Option()}
	case schema.KindLink:
		return v.Linked()
	case schema.KindBool:
		return []string{yesNo(v.Bool())}
	default:
		return []string{v.Text()}
	}
}
