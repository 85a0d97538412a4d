package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by the catalog and create views.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Section  lipgloss.Style
}

// DefaultStyles returns the default color theme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(1, 0),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Margin(1, 0),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Margin(1, 0, 0, 0),
	}
}
