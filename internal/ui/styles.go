package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Colors, carried over from the cyberpunk/neon palette this UI is
// descended from.
var (
	ColorPrimary    = lipgloss.Color("#C084FC")
	ColorSuccess    = lipgloss.Color("#39FF14")
	ColorDanger     = lipgloss.Color("#FF5555")
	ColorMuted      = lipgloss.Color("#4A5568")
	ColorBorder     = lipgloss.Color("#4A5568")
	ColorBackground = lipgloss.Color("#1F1F23")
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorDir        = lipgloss.Color("#00FFFF")
	ColorFile       = lipgloss.Color("#A0A0A0")
	ColorText       = lipgloss.Color("#E4E4E7")
)

var (
	BreadcrumbStyle = lipgloss.NewStyle().
				Background(ColorBackground).
				Foreground(ColorText).
				Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	HintBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3D4555")).
			Padding(0, 1)

	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Background(lipgloss.Color("#1E3A4C")).
			Padding(0, 1)

	ListPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	RingPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ListItemDirStyle = lipgloss.NewStyle().
				Foreground(ColorDir)

	ListItemOthersStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	ListItemSelected = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	ListItemSelectedUnfocused = lipgloss.NewStyle().
					Background(lipgloss.Color("#4A5568")).
					Foreground(lipgloss.Color("#FFFFFF"))

	SizeBarStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	ErrorRowStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	ToastStyle = lipgloss.NewStyle().
			Background(ColorDanger).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Background(ColorBackground).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
)

// formatTime renders a timestamp using a shorter form for the current
// year. No view currently calls it.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Year() == time.Now().Year() {
		return t.Format("Jan 2 15:04")
	}
	return t.Format("Jan 2, 2006 15:04")
}
