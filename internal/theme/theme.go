package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles for the terminal host chrome.
type Styles struct {
	Title     *lipgloss.Style
	Path      *lipgloss.Style
	Selection *lipgloss.Style
	Watched   *lipgloss.Style
	Info      *lipgloss.Style
	Error     *lipgloss.Style
	Footer    *lipgloss.Style
	Screen    *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Path: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Selection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Watched: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Screen: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")),
	),
}

// Default exposes the standard style set used by the terminal host.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
