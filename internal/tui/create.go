package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/offineeds/pim-admin/internal/models"
	"github.com/offineeds/pim-admin/internal/service"
)

// fieldSpec declares one form field. The form is built from this table so
// sections and validation stay in one place.
type fieldSpec struct {
	key         string
	label       string
	section     string
	placeholder string
	initial     string
	required    bool
}

var createFields = []fieldSpec{
	{key: "website", label: "Website", section: "General", placeholder: "e.g. Offineeds", required: true},
	{key: "productType", label: "Product Type", section: "General", placeholder: "e.g. Simple", required: true},
	{key: "status", label: "Status", section: "General", initial: "Not Checked"},

	{key: "finalSKUCode", label: "Final SKU Code", section: "SKU Details", required: true},
	{key: "styleCode", label: "Style Code", section: "SKU Details"},
	{key: "colorName", label: "Color Name", section: "SKU Details", required: true},
	{key: "sizeChart", label: "Size Chart", section: "SKU Details", initial: "NO"},

	{key: "vendorName", label: "Vendor Name", section: "Vendor Details", required: true},
	{key: "vendorGSTNumber", label: "Vendor GST Number", section: "Vendor Details"},
	{key: "vendorAddress", label: "Vendor Address", section: "Vendor Details"},
	{key: "brandName", label: "Brand Name", section: "Vendor Details", required: true},
	{key: "countryOfOrigin", label: "Country Of Origin", section: "Vendor Details", initial: "India"},

	{key: "firstName", label: "First Name", section: "Contact Information"},
	{key: "lastName", label: "Last Name", section: "Contact Information"},
	{key: "emailId", label: "Email ID", section: "Contact Information"},
	{key: "phoneNumber", label: "Phone Number", section: "Contact Information"},

	{key: "pricingCategory", label: "Pricing Category", section: "Pricing", required: true},
	{key: "mrp", label: "MRP", section: "Pricing", placeholder: "0.00"},
	{key: "wp", label: "Wholesale Price", section: "Pricing", placeholder: "0.00"},
	{key: "buyingPrice", label: "Buying Price", section: "Pricing", placeholder: "0.00"},

	{key: "dispatchTimeline", label: "Dispatch Timeline", section: "Shipping", placeholder: "e.g. 5-7 days"},
	{key: "length", label: "Length (cm)", section: "Shipping"},
	{key: "breadth", label: "Breadth (cm)", section: "Shipping"},
	{key: "height", label: "Height (cm)", section: "Shipping"},
	{key: "weight", label: "Weight (g)", section: "Shipping"},

	{key: "imageLink", label: "Image Link", section: "Images"},

	{key: "customizationPart", label: "Customization Part", section: "Customization", initial: "Not Done", required: true},
	{key: "customizationType", label: "Customization Type", section: "Customization"},
}

// createDoneMsg reports the outcome of the save request.
type createDoneMsg struct{ err error }

// CreateModel is the product creation form.
type CreateModel struct {
	svc *service.ProductService

	inputs  []textinput.Model
	focused int
	errors  map[string]string
	saving  bool
	err     error

	width  int
	height int
	styles Styles
}

// NewCreateModel builds a fresh form with defaults applied.
func NewCreateModel(svc *service.ProductService) CreateModel {
	inputs := make([]textinput.Model, len(createFields))
	for i, f := range createFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 120
		in.Width = 40
		in.SetValue(f.initial)
		inputs[i] = in
	}
	inputs[0].Focus()

	return CreateModel{
		svc:    svc,
		inputs: inputs,
		errors: map[string]string{},
		styles: DefaultStyles(),
	}
}

func (m CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CreateModel) value(key string) string {
	for i, f := range createFields {
		if f.key == key {
			return strings.TrimSpace(m.inputs[i].Value())
		}
	}
	return ""
}

// validate checks required fields and fills the per-field error map. The form
// cannot submit while any entry remains.
func (m *CreateModel) validate() bool {
	m.errors = map[string]string{}
	for i, f := range createFields {
		if f.required && strings.TrimSpace(m.inputs[i].Value()) == "" {
			m.errors[f.key] = f.label + " is required"
		}
	}
	return len(m.errors) == 0
}

// draft assembles the record to create from the form values.
func (m CreateModel) draft() models.ProductDraft {
	name := strings.TrimSpace(m.value("firstName") + " " + m.value("lastName"))
	return models.ProductDraft{
		SKU:              fmt.Sprintf("TEMP-%d", time.Now().UnixMilli()),
		Name:             name + " Product",
		Description:      "Product created for " + m.value("emailId"),
		Price:            parsePrice(m.value("mrp")),
		Quantity:         0,
		Categories:       m.value("pricingCategory"),
		VendorCode:       m.value("vendorGSTNumber"),
		Brand:            name,
		DeliveryTimeline: m.value("dispatchTimeline"),
		TierPrice:        m.value("buyingPrice"),
		SamplePrice:      parsePrice(m.value("wp")),
	}
}

func parsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (m CreateModel) saveCmd() tea.Cmd {
	svc := m.svc
	draft := m.draft()
	return func() tea.Msg {
		_, err := svc.Create(context.Background(), draft)
		return createDoneMsg{err: err}
	}
}

func (m CreateModel) Update(msg tea.Msg) (CreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case createDoneMsg:
		m.saving = false
		if msg.err != nil {
			// The form keeps its values for a retry.
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return createSavedMsg{} }

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return createCancelledMsg{} }

		case "tab", "down", "enter":
			m.focusField((m.focused + 1) % len(m.inputs))
			return m, textinput.Blink

		case "shift+tab", "up":
			m.focusField((m.focused - 1 + len(m.inputs)) % len(m.inputs))
			return m, textinput.Blink

		case "ctrl+s":
			if !m.validate() {
				return m, nil
			}
			m.saving = true
			m.err = nil
			return m, m.saveCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *CreateModel) focusField(idx int) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
}

func (m *CreateModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m CreateModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Create Product"))
	sb.WriteString("\n\n")

	section := ""
	for i, f := range createFields {
		if f.section != section {
			section = f.section
			sb.WriteString(m.styles.Section.Render(section))
			sb.WriteString("\n")
		}

		label := f.label
		if f.required {
			label += " *"
		}
		rendered := m.styles.Label.Render(fmt.Sprintf("%-22s", label))
		if i == m.focused {
			rendered = m.styles.Active.Render(fmt.Sprintf("%-22s", label))
		}
		sb.WriteString("  " + rendered + m.inputs[i].View())
		if msg, ok := m.errors[f.key]; ok {
			sb.WriteString("  " + m.styles.Error.Render(msg))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.saving:
		sb.WriteString(m.styles.Muted.Render("Saving...") + "\n")
	case m.err != nil:
		sb.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	case len(m.errors) > 0:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("%d field(s) need attention", len(m.errors))) + "\n")
	}

	sb.WriteString(m.styles.Help.Render("tab/shift+tab move · ctrl+s save · esc cancel"))
	return sb.String()
}
