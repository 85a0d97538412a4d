package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offineeds/pim-admin/pkg/baserow"
)

func newCategoryService(t *testing.T, handler http.HandlerFunc) *CategoryService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := baserow.NewClient(baserow.Config{BaseURL: srv.URL, Token: "test-token"})
	require.NoError(t, err)
	return NewCategoryService(client, testSchema(), "502")
}

func TestTreeBuildsRootsWithChildren(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 6,
			"next": null,
			"results": [
				{"id": 1, "field_21": "drinkware", "field_22": "Drinkware", "field_23": "root_catalog_main_by_category", "field_24": {"value": "1"}},
				{"id": 2, "field_21": "apparel", "field_22": "Apparel", "field_23": "root_catalog_main_by_category", "field_24": {"value": "1"}},
				{"id": 3, "field_21": "mugs", "field_22": "Mugs", "field_23": "drinkware", "field_24": {"value": "1"}},
				{"id": 4, "field_21": "bottles", "field_22": "Bottles", "field_23": "drinkware", "field_24": {"value": "1"}},
				{"id": 5, "field_21": "retired", "field_22": "Retired", "field_23": "root_catalog_main_by_category", "field_24": {"value": "0"}},
				{"id": 6, "field_21": "root_catalog_main_by_category", "field_22": "Main", "field_23": "", "field_24": {"value": "1"}}
			]
		}`))
	})

	tree := svc.Tree(context.Background())

	// Inactive rows and internal root rows are dropped; roots and children
	// come back alphabetically. Categories with a regular parent surface at
	// top level in addition to appearing under that parent.
	names := make([]string, 0, len(tree))
	for _, root := range tree {
		names = append(names, root.Name)
	}
	assert.Equal(t, []string{"Apparel", "Bottles", "Drinkware", "Mugs"}, names)

	var drinkware []string
	for _, root := range tree {
		if root.Name != "Drinkware" {
			continue
		}
		for _, sub := range root.Subcategories {
			drinkware = append(drinkware, sub.Name)
		}
	}
	assert.Equal(t, []string{"Bottles", "Mugs"}, drinkware)
}

func TestTreeRootParentConvention(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 3,
			"next": null,
			"results": [
				{"id": 1, "field_21": "drinkware", "field_22": "Drinkware", "field_23": "root_catalog_main_by_category", "field_24": {"value": "1"}},
				{"id": 2, "field_21": "mugs", "field_22": "Mugs", "field_23": "drinkware", "field_24": {"value": "1"}},
				{"id": 3, "field_21": "b2b-kits", "field_22": "B2B Kits", "field_23": "root_catalog_b2b", "field_24": {"value": "1"}}
			]
		}`))
	})

	tree := svc.Tree(context.Background())

	names := make([]string, 0, len(tree))
	for _, root := range tree {
		names = append(names, root.Name)
	}
	// A regular parent puts the category at top level too; a parent under a
	// root catalog other than the main one keeps it hidden.
	assert.Equal(t, []string{"Drinkware", "Mugs"}, names)
	assert.NotContains(t, names, "B2B Kits")
}

func TestTreeBuildboxRoot(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 1,
			"next": null,
			"results": [
				{"id": 1, "field_21": "root_catalog_buildbox", "field_22": "Buildbox", "field_23": "", "field_24": {"value": "1"}}
			]
		}`))
	})

	tree := svc.Tree(context.Background())
	require.Len(t, tree, 1)
	assert.Equal(t, "Buildbox", tree[0].Name)
}

func TestTreeDrainsAllPages(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`{
				"count": 2,
				"next": "page-2",
				"results": [
					{"id": 1, "field_21": "drinkware", "field_22": "Drinkware", "field_23": "root_catalog_main_by_category", "field_24": {"value": "1"}}
				]
			}`))
		default:
			w.Write([]byte(`{
				"count": 2,
				"next": null,
				"results": [
					{"id": 2, "field_21": "apparel", "field_22": "Apparel", "field_23": "root_catalog_main_by_category", "field_24": {"value": "1"}}
				]
			}`))
		}
	})

	tree := svc.Tree(context.Background())
	require.Len(t, tree, 2)
	assert.Equal(t, "Apparel", tree[0].Name)
	assert.Equal(t, "Drinkware", tree[1].Name)
}

func TestTreeFallbackOnFailure(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	tree := svc.Tree(context.Background())
	require.Len(t, tree, 1)
	assert.Equal(t, "All Categories", tree[0].Name)
}

func TestTreeFallbackWhenEmpty(t *testing.T) {
	svc := newCategoryService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "next": null, "results": []}`))
	})

	tree := svc.Tree(context.Background())
	require.Len(t, tree, 1)
	assert.Equal(t, "All Categories", tree[0].Name)
}
