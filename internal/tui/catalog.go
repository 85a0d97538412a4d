package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/offineeds/pim-admin/internal/models"
	"github.com/offineeds/pim-admin/internal/service"
)

// catalogColumn describes one table column bound to a product attribute.
type catalogColumn struct {
	field string
	label string
	width int
}

var catalogColumns = []catalogColumn{
	{"sku", "SKU", 14},
	{"name", "Product Name", 24},
	{"categories", "Category", 18},
	{"price", "Price", 10},
	{"brand", "Brand", 14},
	{"enable_product", "Enabled", 9},
	{"color", "Color", 10},
	{"type", "Type", 10},
	{"visibility", "Visibility", 12},
	{"quantity", "Qty", 6},
	{"is_in_stock", "In Stock", 9},
	{"vendor_code", "Vendor Code", 12},
}

// pageSizes is the fixed set of selectable page sizes.
var pageSizes = []int{5, 10, 25, 50, 100}

// filterableFields get their distinct values preloaded for closed-set filters.
var filterableFields = []string{"categories", "brand", "type", "enable_product", "visibility"}

type (
	// productsLoadedMsg carries one fetched page with the generation that
	// requested it; stale generations are discarded.
	productsLoadedMsg struct {
		seq  int
		page *models.ProductPage
		err  error
	}
	filterOptionsMsg map[string][]string
	categoryTreeMsg  []models.Category
	bulkDeleteMsg    struct{ err error }
)

// CatalogModel is the catalog screen: a paginated, searchable, filterable,
// sortable product table with row selection and bulk delete.
type CatalogModel struct {
	svc        *service.ProductService
	categories *service.CategoryService

	table       table.Model
	search      textinput.Model
	filterInput textinput.Model
	spin        spinner.Model

	page     int
	size     int
	colIdx   int
	category string
	sort     models.SortSpec
	filters  models.FilterSet
	selected map[int64]struct{}

	rows          []models.Product
	total         int
	loading       bool
	fetchSeq      int
	filterOptions map[string][]string
	categoryTree  []models.Category
	filterEditing bool
	err           error

	width  int
	height int
	styles Styles
}

// NewCatalogModel constructs the catalog screen.
func NewCatalogModel(svc *service.ProductService, categories *service.CategoryService) CatalogModel {
	cols := make([]table.Column, 0, len(catalogColumns)+1)
	cols = append(cols, table.Column{Title: " ", Width: 2})
	for _, c := range catalogColumns {
		cols = append(cols, table.Column{Title: c.label, Width: c.width})
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	search := textinput.New()
	search.Placeholder = "Search products by name, description, or SKU"
	search.CharLimit = 100
	search.Width = 50

	filterInput := textinput.New()
	filterInput.CharLimit = 80
	filterInput.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return CatalogModel{
		svc:           svc,
		categories:    categories,
		table:         t,
		search:        search,
		filterInput:   filterInput,
		spin:          sp,
		page:          1,
		size:          10,
		filters:       models.FilterSet{},
		selected:      map[int64]struct{}{},
		filterOptions: map[string][]string{},
		loading:       true,
		styles:        DefaultStyles(),
	}
}

// Init fires the initial fetch for generation zero; the constructor already
// marked the model loading.
func (m CatalogModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.loadFilterOptionsCmd(), m.loadCategoriesCmd(), m.spin.Tick)
}

// Reload refreshes the current page, e.g. after a save in the create view.
func (m *CatalogModel) Reload() tea.Cmd {
	var cmd tea.Cmd
	*m, cmd = m.reload(false)
	return cmd
}

// query snapshots the current request state. Filters are copied so an
// in-flight fetch is not affected by later edits.
func (m CatalogModel) query() models.ListQuery {
	filters := models.FilterSet{}
	for k, v := range m.filters {
		filters[k] = v
	}
	return models.ListQuery{
		Page:     m.page,
		Size:     m.size,
		Search:   m.search.Value(),
		Category: m.category,
		Filters:  filters,
		Sort:     m.sort,
	}
}

// reload bumps the fetch generation and issues an asynchronous fetch. Every
// state change except plain page movement resets to page one.
func (m CatalogModel) reload(resetPage bool) (CatalogModel, tea.Cmd) {
	if resetPage {
		m.page = 1
	}
	m.fetchSeq++
	m.loading = true
	return m, tea.Batch(m.fetchCmd(), m.spin.Tick)
}

// fetchCmd issues the list request for the current generation.
func (m CatalogModel) fetchCmd() tea.Cmd {
	seq := m.fetchSeq
	q := m.query()
	svc := m.svc
	return func() tea.Msg {
		page, err := svc.List(context.Background(), q)
		return productsLoadedMsg{seq: seq, page: page, err: err}
	}
}

// loadFilterOptionsCmd preloads distinct values for the filterable fields,
// concurrently. A failed field comes back as an empty list and its column
// falls back to free-text filtering.
func (m CatalogModel) loadFilterOptionsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		options := make([][]string, len(filterableFields))
		g, ctx := errgroup.WithContext(context.Background())
		for i, field := range filterableFields {
			g.Go(func() error {
				options[i] = svc.DistinctValues(ctx, field)
				return nil
			})
		}
		_ = g.Wait()
		out := make(map[string][]string, len(filterableFields))
		for i, field := range filterableFields {
			out[field] = options[i]
		}
		return filterOptionsMsg(out)
	}
}

func (m CatalogModel) loadCategoriesCmd() tea.Cmd {
	svc := m.categories
	return func() tea.Msg {
		return categoryTreeMsg(svc.Tree(context.Background()))
	}
}

// deleteSelectedCmd fans out one delete per selected identifier and joins on
// all of them.
func (m CatalogModel) deleteSelectedCmd() tea.Cmd {
	ids := make([]int64, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	svc := m.svc
	return func() tea.Msg {
		return bulkDeleteMsg{err: svc.DeleteMany(context.Background(), ids)}
	}
}

func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case productsLoadedMsg:
		// A response from a superseded request must not overwrite newer state.
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.rows = nil
			m.total = 0
		} else {
			m.err = nil
			m.rows = msg.page.Products
			m.total = msg.page.TotalCount
		}
		m.syncTable()
		return m, nil

	case filterOptionsMsg:
		m.filterOptions = msg
		return m, nil

	case categoryTreeMsg:
		m.categoryTree = msg
		return m, nil

	case bulkDeleteMsg:
		m.loading = false
		if msg.err != nil {
			// Selection stays so the user can retry; state may now disagree
			// with the server until the next reload.
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.selected = map[int64]struct{}{}
		cmd := m.Reload()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CatalogModel) handleKey(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			var reloadCmd tea.Cmd
			m, reloadCmd = m.reload(true)
			return m, tea.Batch(cmd, reloadCmd)
		}
		return m, cmd
	}

	if m.filterEditing {
		switch msg.String() {
		case "enter":
			m.filterEditing = false
			m.filterInput.Blur()
			m.filters.Set(m.currentField(), strings.TrimSpace(m.filterInput.Value()))
			return m.reload(true)
		case "esc":
			m.filterEditing = false
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "n":
		return m, func() tea.Msg { return openCreateMsg{} }

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "left", "h":
		if m.colIdx > 0 {
			m.colIdx--
		}
		return m, nil

	case "right", "l":
		if m.colIdx < len(catalogColumns)-1 {
			m.colIdx++
		}
		return m, nil

	case "s":
		m.sort = m.sort.Cycle(m.currentField())
		return m.reload(true)

	case "f":
		field := m.currentField()
		if opts := m.filterOptions[field]; len(opts) > 0 {
			m.filters.Set(field, nextOption(opts, m.filters[field]))
			return m.reload(true)
		}
		m.filterEditing = true
		m.filterInput.SetValue(m.filters[field])
		m.filterInput.Placeholder = "Filter " + catalogColumns[m.colIdx].label + "..."
		m.filterInput.Focus()
		return m, textinput.Blink

	case "x":
		field := m.currentField()
		if _, ok := m.filters[field]; ok {
			m.filters.Set(field, "")
			return m.reload(true)
		}
		return m, nil

	case "C":
		m.category = m.nextCategory()
		return m.reload(true)

	case " ":
		if p, ok := m.currentProduct(); ok {
			m.toggleSelect(p.ID)
			m.syncTable()
		}
		return m, nil

	case "a":
		m.toggleSelectAll()
		m.syncTable()
		return m, nil

	case "d":
		if len(m.selected) == 0 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.deleteSelectedCmd(), m.spin.Tick)

	case "c":
		m.search.SetValue("")
		m.category = ""
		m.filters = models.FilterSet{}
		m.sort = models.SortSpec{}
		return m.reload(true)

	case "+", "=":
		m.size = stepPageSize(m.size, 1)
		return m.reload(true)

	case "-":
		m.size = stepPageSize(m.size, -1)
		return m.reload(true)

	case "pgdown":
		if m.canNext() {
			m.page++
			return m.reload(false)
		}
		return m, nil

	case "pgup":
		if m.canPrev() {
			m.page--
			return m.reload(false)
		}
		return m, nil

	case "home":
		if m.canPrev() {
			m.page = 1
			return m.reload(false)
		}
		return m, nil

	case "end":
		if m.canNext() {
			m.page = m.totalPages()
			return m.reload(false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CatalogModel) currentField() string {
	return catalogColumns[m.colIdx].field
}

func (m CatalogModel) currentProduct() (models.Product, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return models.Product{}, false
	}
	return m.rows[idx], true
}

func (m *CatalogModel) toggleSelect(id int64) {
	if _, ok := m.selected[id]; ok {
		delete(m.selected, id)
	} else {
		m.selected[id] = struct{}{}
	}
}

// toggleSelectAll selects every currently loaded row, or clears the selection
// when everything loaded is already selected. Rows on other pages are never
// touched.
func (m *CatalogModel) toggleSelectAll() {
	if len(m.rows) == 0 {
		return
	}
	allSelected := true
	for _, p := range m.rows {
		if _, ok := m.selected[p.ID]; !ok {
			allSelected = false
			break
		}
	}
	if allSelected {
		m.selected = map[int64]struct{}{}
		return
	}
	for _, p := range m.rows {
		m.selected[p.ID] = struct{}{}
	}
}

// nextCategory cycles the category filter through the loaded tree roots and
// their children, back to no filter after the last one.
func (m CatalogModel) nextCategory() string {
	var names []string
	for _, root := range m.categoryTree {
		if root.Name != "" && root.Name != "All Categories" {
			names = append(names, root.Name)
		}
		for _, sub := range root.Subcategories {
			names = append(names, sub.Name)
		}
	}
	return nextOption(names, m.category)
}

// nextOption returns the entry after current in the closed set, starting at
// the first for an empty current and wrapping back to empty after the last.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return options[0]
}

func stepPageSize(current, dir int) int {
	for i, s := range pageSizes {
		if s == current {
			next := i + dir
			if next < 0 {
				next = 0
			}
			if next >= len(pageSizes) {
				next = len(pageSizes) - 1
			}
			return pageSizes[next]
		}
	}
	return pageSizes[1]
}

// canNext reports whether a further page exists: false exactly when
// page*size >= total.
func (m CatalogModel) canNext() bool {
	return m.page*m.size < m.total
}

func (m CatalogModel) canPrev() bool {
	return m.page > 1
}

func (m CatalogModel) totalPages() int {
	if m.total == 0 || m.size == 0 {
		return 1
	}
	return (m.total + m.size - 1) / m.size
}

// syncTable rebuilds the table rows from the loaded products and selection.
func (m *CatalogModel) syncTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, p := range m.rows {
		marker := " "
		if _, ok := m.selected[p.ID]; ok {
			marker = "✓"
		}
		row := table.Row{marker}
		for _, col := range catalogColumns {
			row = append(row, productCell(p, col.field))
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
}

// productCell renders one attribute for display.
func productCell(p models.Product, field string) string {
	switch field {
	case "sku":
		return p.SKU
	case "name":
		return p.Name
	case "categories":
		return p.Categories
	case "price":
		return fmt.Sprintf("%.2f", p.Price)
	case "brand":
		return p.Brand
	case "enable_product":
		return p.EnableProduct
	case "color":
		return p.Color
	case "type":
		return p.Type
	case "visibility":
		return p.Visibility
	case "quantity":
		return fmt.Sprintf("%.0f", p.Quantity)
	case "is_in_stock":
		return p.IsInStock
	case "vendor_code":
		return p.VendorCode
	default:
		return ""
	}
}

func (m *CatalogModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	tableHeight := h - 12
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)
	if w > 4 {
		m.table.SetWidth(w - 2)
	}
}

func (m CatalogModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Product Catalog"))
	sb.WriteString("\n")

	searchLabel := m.styles.Label.Render("Search: ")
	sb.WriteString(searchLabel + m.search.View() + "\n")

	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n")

	if m.filterEditing {
		sb.WriteString(m.styles.Label.Render("Filter: ") + m.filterInput.View() + "\n")
	}

	if m.loading {
		sb.WriteString(m.spin.View() + m.styles.Muted.Render(" Loading...") + "\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	} else if !m.loading && len(m.rows) == 0 {
		sb.WriteString(m.styles.Muted.Render("No products found. Try adjusting your filters.") + "\n")
	}

	sb.WriteString(m.renderPagination())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(
		"←/→ column · s sort · f filter · x clear filter · C category · / search · space select · a select all · d delete · n new · c clear all · q quit"))

	return sb.String()
}

// renderFilterBar shows the column cursor, sort state, selection count and
// active filters.
func (m CatalogModel) renderFilterBar() string {
	col := catalogColumns[m.colIdx]

	parts := []string{m.styles.Active.Render(col.label)}

	if m.sort.IsActive() {
		arrow := "↑"
		if m.sort.Direction == models.SortDesc {
			arrow = "↓"
		}
		parts = append(parts, m.styles.Header.Render("sort "+m.sort.Field+" "+arrow))
	}
	if m.category != "" {
		parts = append(parts, m.styles.Header.Render("category="+m.category))
	}
	for field, value := range m.filters {
		parts = append(parts, m.styles.Muted.Render(field+"="+value))
	}
	if len(m.selected) > 0 {
		parts = append(parts, m.styles.Success.Render(fmt.Sprintf("%d selected", len(m.selected))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m CatalogModel) renderPagination() string {
	first := m.styles.Disabled.Render("« First")
	prev := m.styles.Disabled.Render("‹ Prev")
	next := m.styles.Disabled.Render("Next ›")
	last := m.styles.Disabled.Render("Last »")
	if m.canPrev() {
		first = m.styles.Label.Render("« First")
		prev = m.styles.Label.Render("‹ Prev")
	}
	if m.canNext() {
		next = m.styles.Label.Render("Next ›")
		last = m.styles.Label.Render("Last »")
	}

	info := fmt.Sprintf("Page %d/%d · %d per page · %d products", m.page, m.totalPages(), m.size, m.total)
	return strings.Join([]string{first, prev, m.styles.Header.Render(info), next, last}, "  ")
}
