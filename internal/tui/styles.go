package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	labelStyle         = lipgloss.NewStyle().Width(20)
	valueStyle         = lipgloss.NewStyle()
	mutedStyle         = lipgloss.NewStyle().Foreground(mutedColor)
	selectedLabelStyle = labelStyle.Foreground(accentColor).Bold(true)

	validStyle   = lipgloss.NewStyle().Foreground(successColor)
	invalidStyle = lipgloss.NewStyle().Foreground(errorColor)

	previewFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor).
				Padding(0, 1)

	codeFrameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor)

	statusStyle      = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	statusErrorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true).MarginTop(1)
	helpStyle        = lipgloss.NewStyle().Foreground(mutedColor)
)

// swatch renders a two-cell block filled with a #RRGGBB color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
