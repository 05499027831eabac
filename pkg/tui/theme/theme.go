// Package theme centralizes Lip Gloss styles for the shelf UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across the TUI.
type Theme struct {
	Breadcrumb     lipgloss.Style
	BreadcrumbTail lipgloss.Style
	Row            lipgloss.Style
	RowCursor      lipgloss.Style
	RowSelected    lipgloss.Style
	Badge          lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style
	DrawerFrame    lipgloss.Style
	DrawerTitle    lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldFocused   lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent, _ := colorful.Hex("#ff6ad5")
	accentColor := lipgloss.Color(accent.Hex())
	faint := lipgloss.Color("244")

	return Theme{
		Breadcrumb:     lipgloss.NewStyle().Foreground(faint),
		BreadcrumbTail: lipgloss.NewStyle().Bold(true),
		Row:            lipgloss.NewStyle(),
		RowCursor:      lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		RowSelected:    lipgloss.NewStyle().Foreground(accentColor),
		Badge:          lipgloss.NewStyle().Foreground(faint),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DrawerFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1),
		DrawerTitle:  lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		FieldLabel:   lipgloss.NewStyle().Foreground(faint),
		FieldFocused: lipgloss.NewStyle().Foreground(accentColor),
	}
}
