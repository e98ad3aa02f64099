package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the terminal uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPeach
	colorFocus  = colorLavender
	colorError  = colorRed
	colorInfo   = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	textStyle  = lipgloss.NewStyle().Foreground(colorText)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	goodStyle  = lipgloss.NewStyle().Foreground(colorGreen)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.BorderForeground(colorFocus)

	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorInfo).Background(colorMantle)
	errorBarStyle  = lipgloss.NewStyle().Foreground(colorError).Background(colorMantle)
	footerStyle    = lipgloss.NewStyle().Background(colorMantle)
	helpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	helpDescStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1).
			Background(colorSurface0)
	popupSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
)
