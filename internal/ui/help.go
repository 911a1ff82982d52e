package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpEntries mirrors spec.md §4.6's Normal-mode input table.
var helpEntries = []struct {
	key  string
	desc string
}{
	{"j / ↓", "move selection down"},
	{"k / ↑", "move selection up"},
	{"gg", "jump to first"},
	{"G", "jump to last"},
	{"Enter / l", "open selected directory"},
	{"Backspace / h", "go back"},
	{"Tab / ← / →", "switch focus (list/ring)"},
	{"s", "cycle sort mode"},
	{"t", "cycle fold threshold"},
	{"e", "open error list"},
	{"x", "open export menu"},
	{"?", "toggle this help"},
	{"q / Ctrl+C", "quit"},
}

// renderHelp draws the Help modal content.
func renderHelp() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("DiskLens"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	for _, e := range helpEntries {
		b.WriteString(keyStyle.Render(e.key))
		b.WriteString(descStyle.Render(e.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(HintBarStyle.Render("?/esc: close"))

	return ModalStyle.Render(b.String())
}
