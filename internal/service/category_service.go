package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/offineeds/pim-admin/internal/models"
	"github.com/offineeds/pim-admin/internal/schema"
	"github.com/offineeds/pim-admin/pkg/baserow"
)

const (
	// categoryPageSize is the page size used while draining the category table.
	categoryPageSize = 200

	// rootMainCatalog parents the displayable top-level categories.
	rootMainCatalog = "root_catalog_main_by_category"
	// rootBuildbox is a special root shown alongside the main categories.
	rootBuildbox = "root_catalog_buildbox"
	// rootCatalogPrefix marks the internal root rows that are never displayed.
	rootCatalogPrefix = "root_catalog"
)

// CategoryService reads the category table and derives the two-level
// navigation tree. Categories have their own lifecycle; this application
// never creates or edits them.
type CategoryService struct {
	client  *baserow.Client
	fields  schema.FieldMap
	tableID string
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(client *baserow.Client, sch *schema.Schema, tableID string) *CategoryService {
	return &CategoryService{
		client:  client,
		fields:  sch.Categories,
		tableID: tableID,
	}
}

// Tree returns the active root categories with one level of children attached
// by parent-code match, sorted alphabetically. An empty or failed fetch
// degrades to a single placeholder entry so the UI always has something to
// render.
func (s *CategoryService) Tree(ctx context.Context) []models.Category {
	all := s.fetchAll(ctx)

	active := make([]models.Category, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}

	roots := make([]models.Category, 0, len(active))
	seen := make(map[string]struct{})
	for _, c := range active {
		if !isRootCategory(c) {
			continue
		}
		if _, dup := seen[c.Code]; dup {
			continue
		}
		seen[c.Code] = struct{}{}
		roots = append(roots, c)
	}

	for i := range roots {
		var children []models.Category
		for _, c := range active {
			if c.ParentCode == roots[i].Code {
				children = append(children, c)
			}
		}
		sort.Slice(children, func(a, b int) bool {
			return children[a].Name < children[b].Name
		})
		roots[i].Subcategories = children
	}
	sort.Slice(roots, func(a, b int) bool {
		return roots[a].Name < roots[b].Name
	})

	if len(roots) == 0 {
		return []models.Category{{Name: "All Categories"}}
	}
	return roots
}

// isRootCategory applies the parent-code convention: displayable roots are
// the direct children of the main root catalog, the special buildbox root,
// and stray categories whose parent is neither empty nor one of the internal
// root catalog rows. Children of other root catalogs stay hidden, and a
// category with a regular parent is listed at top level as well as under it.
func isRootCategory(c models.Category) bool {
	if c.ParentCode == rootMainCatalog || c.Code == rootBuildbox {
		return true
	}
	return c.ParentCode != "" && !strings.HasPrefix(c.ParentCode, rootCatalogPrefix)
}

// fetchAll drains the category table page by page until the store reports no
// next page. Any failure is logged and yields whatever was fetched so far.
func (s *CategoryService) fetchAll(ctx context.Context) []models.Category {
	var all []models.Category
	for page := 1; ; page++ {
		rows, err := s.client.ListRows(ctx, s.tableID, baserow.ListParams{
			Page: page,
			Size: categoryPageSize,
		})
		if err != nil {
			log.Error().Err(err).Int("page", page).Msg("failed to fetch categories")
			return all
		}
		for _, row := range rows.Results {
			all = append(all, s.toCategory(row))
		}
		if rows.Next == nil {
			return all
		}
	}
}

// toCategory converts one raw category row into the named shape.
func (s *CategoryService) toCategory(row baserow.Row) models.Category {
	get := func(name string) baserow.Value {
		return row.Field(s.fields.ColumnFor(name))
	}
	activeCell := get("is_active")
	return models.Category{
		ID:         row.ID,
		Code:       get("code").Text(),
		Name:       get("name").Text(),
		ParentCode: get("parent_code").Text(),
		IsActive:   activeCell.Option() == "1" || activeCell.Bool(),
	}
}
