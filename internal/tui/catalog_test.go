package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offineeds/pim-admin/internal/models"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testCatalog() CatalogModel {
	return NewCatalogModel(nil, nil)
}

func TestPaginationBounds(t *testing.T) {
	m := testCatalog()
	m.total = 25
	m.size = 10

	m.page = 1
	assert.False(t, m.canPrev())
	assert.True(t, m.canNext())

	m.page = 2
	assert.True(t, m.canPrev())
	assert.True(t, m.canNext())

	// The last page holds the remaining five records and nothing follows.
	m.page = 3
	assert.True(t, m.canPrev())
	assert.False(t, m.canNext())
	assert.Equal(t, 3, m.totalPages())
}

func TestPaginationExactMultiple(t *testing.T) {
	m := testCatalog()
	m.total = 30
	m.size = 10
	m.page = 3

	assert.False(t, m.canNext())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	m := testCatalog()
	m.fetchSeq = 2
	m.loading = true

	m, _ = m.Update(productsLoadedMsg{
		seq:  1,
		page: &models.ProductPage{Products: []models.Product{{ID: 1}}, TotalCount: 1},
	})

	// The superseded response must not touch rows, total or the loading flag.
	assert.True(t, m.loading)
	assert.Empty(t, m.rows)
	assert.Zero(t, m.total)
}

func TestCurrentResponseIsApplied(t *testing.T) {
	m := testCatalog()
	m.fetchSeq = 2
	m.loading = true

	m, _ = m.Update(productsLoadedMsg{
		seq:  2,
		page: &models.ProductPage{Products: []models.Product{{ID: 1}, {ID: 2}}, TotalCount: 40},
	})

	assert.False(t, m.loading)
	assert.Len(t, m.rows, 2)
	assert.Equal(t, 40, m.total)
	assert.NoError(t, m.err)
}

func TestFailedFetchShowsErrorState(t *testing.T) {
	m := testCatalog()
	m.rows = []models.Product{{ID: 1}}
	m.total = 1
	m.loading = true

	m, _ = m.Update(productsLoadedMsg{seq: 0, err: assert.AnError})

	assert.False(t, m.loading)
	assert.Error(t, m.err)
	assert.Empty(t, m.rows)
	assert.Zero(t, m.total)
}

func TestSortKeyCyclesCurrentColumn(t *testing.T) {
	m := testCatalog()
	m.colIdx = 3 // price

	m, _ = m.Update(key("s"))
	assert.Equal(t, models.SortSpec{Field: "price", Direction: models.SortAsc}, m.sort)
	assert.Equal(t, 1, m.page)

	m, _ = m.Update(key("s"))
	assert.Equal(t, models.SortDesc, m.sort.Direction)

	m, _ = m.Update(key("s"))
	assert.False(t, m.sort.IsActive())
}

func TestSortResetsToFirstPage(t *testing.T) {
	m := testCatalog()
	m.page = 4
	m.total = 100

	m, _ = m.Update(key("s"))
	assert.Equal(t, 1, m.page)
}

func TestFilterKeyCyclesClosedSet(t *testing.T) {
	m := testCatalog()
	m.colIdx = 5 // enable_product
	m.filterOptions["enable_product"] = []string{"1", "2"}

	m, _ = m.Update(key("f"))
	assert.Equal(t, "1", m.filters["enable_product"])

	m, _ = m.Update(key("f"))
	assert.Equal(t, "2", m.filters["enable_product"])

	// Past the last option the filter clears and the key leaves the map.
	m, _ = m.Update(key("f"))
	_, ok := m.filters["enable_product"]
	assert.False(t, ok)
}

func TestFilterKeyOpensFreeTextWithoutOptions(t *testing.T) {
	m := testCatalog()
	m.colIdx = 1 // name, no preloaded options

	m, _ = m.Update(key("f"))
	assert.True(t, m.filterEditing)
	assert.True(t, m.filterInput.Focused())
}

func TestClearFilterKey(t *testing.T) {
	m := testCatalog()
	m.colIdx = 1
	m.filters.Set("name", "ceramic")

	m, _ = m.Update(key("x"))
	assert.Empty(t, m.filters)
}

func TestClearAllResetsEverything(t *testing.T) {
	m := testCatalog()
	m.page = 5
	m.category = "Drinkware"
	m.filters.Set("brand", "Acme")
	m.sort = models.SortSpec{Field: "price", Direction: models.SortAsc}
	m.search.SetValue("mug")

	m, _ = m.Update(key("c"))

	assert.Equal(t, 1, m.page)
	assert.Empty(t, m.category)
	assert.Empty(t, m.filters)
	assert.False(t, m.sort.IsActive())
	assert.Empty(t, m.search.Value())
}

func TestToggleSelectAll(t *testing.T) {
	m := testCatalog()
	m.rows = []models.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	m.selected[2] = struct{}{}

	// A partial selection grows to every loaded row.
	m.toggleSelectAll()
	assert.Len(t, m.selected, 3)

	// A full selection collapses to none.
	m.toggleSelectAll()
	assert.Empty(t, m.selected)
}

func TestBulkDeleteFailureKeepsSelection(t *testing.T) {
	m := testCatalog()
	m.selected = map[int64]struct{}{1: {}, 2: {}}
	m.loading = true

	m, _ = m.Update(bulkDeleteMsg{err: assert.AnError})

	assert.Error(t, m.err)
	assert.Len(t, m.selected, 2)
}

func TestBulkDeleteSuccessClearsSelectionAndReloads(t *testing.T) {
	m := testCatalog()
	m.selected = map[int64]struct{}{1: {}, 2: {}}
	seqBefore := m.fetchSeq

	m, cmd := m.Update(bulkDeleteMsg{})

	assert.Empty(t, m.selected)
	assert.Greater(t, m.fetchSeq, seqBefore)
	assert.NotNil(t, cmd)
}

func TestPageSizeStepping(t *testing.T) {
	assert.Equal(t, 25, stepPageSize(10, 1))
	assert.Equal(t, 5, stepPageSize(10, -1))
	assert.Equal(t, 100, stepPageSize(100, 1))
	assert.Equal(t, 5, stepPageSize(5, -1))
	// Unknown sizes snap back to the default.
	assert.Equal(t, 10, stepPageSize(7, 1))
}

func TestNextOptionWrapsToEmpty(t *testing.T) {
	opts := []string{"a", "b"}
	assert.Equal(t, "a", nextOption(opts, ""))
	assert.Equal(t, "b", nextOption(opts, "a"))
	assert.Equal(t, "", nextOption(opts, "b"))
	assert.Equal(t, "", nextOption(nil, "a"))
}

func TestNewCatalogKeyOpensCreate(t *testing.T) {
	m := testCatalog()

	_, cmd := m.Update(key("n"))
	require.NotNil(t, cmd)
	assert.IsType(t, openCreateMsg{}, cmd())
}

func TestSelectionSurvivesReload(t *testing.T) {
	m := testCatalog()
	m.selected = map[int64]struct{}{7: {}}

	m, _ = m.Update(productsLoadedMsg{
		seq:  0,
		page: &models.ProductPage{Products: []models.Product{{ID: 7}, {ID: 8}}, TotalCount: 2},
	})

	assert.Contains(t, m.selected, int64(7))
}
