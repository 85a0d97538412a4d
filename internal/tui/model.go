// Package tui is the terminal front end: a catalog view for browsing the
// product table and a form view for creating one record, switched by a
// two-valued view selector.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/offineeds/pim-admin/internal/service"
)

// view selects which screen is active. There are exactly two and no history
// stack.
type view int

const (
	viewCatalog view = iota
	viewCreate
)

// Messages exchanged with the root model for view transitions.
type (
	// openCreateMsg asks the router to show the creation form.
	openCreateMsg struct{}
	// createSavedMsg reports a successful save; the router returns to the
	// catalog and refreshes it.
	createSavedMsg struct{}
	// createCancelledMsg returns to the catalog without saving.
	createCancelledMsg struct{}
)

// Model is the root bubbletea model: the view router.
type Model struct {
	view     view
	catalog  CatalogModel
	create   CreateModel
	products *service.ProductService
	quitting bool
	width    int
	height   int
}

// New constructs the root model with both sub-views wired to the services.
func New(products *service.ProductService, categories *service.CategoryService) Model {
	return Model{
		view:     viewCatalog,
		catalog:  NewCatalogModel(products, categories),
		create:   NewCreateModel(products),
		products: products,
	}
}

func (m Model) Init() tea.Cmd {
	return m.catalog.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.catalog.SetSize(msg.Width, msg.Height)
		m.create.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case openCreateMsg:
		m.view = viewCreate
		m.create = NewCreateModel(m.products)
		m.create.SetSize(m.width, m.height)
		return m, m.create.Init()

	case createSavedMsg:
		m.view = viewCatalog
		cmd := m.catalog.Reload()
		return m, cmd

	case createCancelledMsg:
		m.view = viewCatalog
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case viewCatalog:
		m.catalog, cmd = m.catalog.Update(msg)
	case viewCreate:
		m.create, cmd = m.create.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewCreate:
		return m.create.View()
	default:
		return m.catalog.View()
	}
}
