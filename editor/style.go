package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	// Embed styles the chip text of embedded tokens.
	Embed lipgloss.Style

	// Composition marks the IME composing span.
	Composition lipgloss.Style

	Popup         lipgloss.Style
	PopupSelected lipgloss.Style
	PopupDetail   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Embed:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Composition: lipgloss.NewStyle().Underline(true),

		Popup:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		PopupSelected: lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("255")).Bold(true),
		PopupDetail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
