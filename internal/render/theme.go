// Package render turns expenses, reports and budgets into terminal text.
// Every function is pure: the same input always yields the same string.
package render

import "github.com/charmbracelet/lipgloss"

const (
	colorBlue   lipgloss.Color = "#3b82f6"
	colorGreen  lipgloss.Color = "#10b981"
	colorYellow lipgloss.Color = "#f59e0b"
	colorRed    lipgloss.Color = "#ef4444"
	colorPurple lipgloss.Color = "#8b5cf6"
	colorGray   lipgloss.Color = "#6b7280"
	colorText   lipgloss.Color = "#111827"
	colorMuted  lipgloss.Color = "#9ca3af"
)

// barColors are cycled across histogram bars.
var barColors = []lipgloss.Color{colorBlue, colorGreen, colorYellow, colorRed, colorPurple}

var categoryColors = map[string]lipgloss.Color{
	"food":          colorGreen,
	"transport":     colorBlue,
	"bills":         colorRed,
	"entertainment": colorPurple,
	"other":         colorGray,
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	amountStyle  = lipgloss.NewStyle().Bold(true)
	totalStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)
