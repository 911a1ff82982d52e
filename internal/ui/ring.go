package ui

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZingerLittleBee/DiskLens/internal/core"
)

// blockPalette cycles a small set of distinguishable foreground colors,
// picked deterministically per node name so the same directory keeps its
// color across re-renders.
var blockPalette = []lipgloss.Color{
	ColorPrimary,
	ColorCyan,
	lipgloss.Color("#39FF14"),
	lipgloss.Color("#FBBF24"),
	lipgloss.Color("#FF5555"),
	lipgloss.Color("#5EEAD4"),
}

func colorFor(name string) lipgloss.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	return blockPalette[int(h.Sum32())%len(blockPalette)]
}

// renderRing draws the proportional block chart for state's current
// directory into a width x height panel. Blocks are colored per entry
// name; the selected entry is not marked in the chart.
func renderRing(state core.AppState, width, height int) string {
	children := state.SortedChildren()
	innerW, innerH := width-4, height-4
	if innerW < 1 || innerH < 1 || len(children) == 0 {
		style := RingPanelStyle.Width(width - 2).Height(height - 2)
		if state.Focus == core.FocusRing {
			style = style.BorderForeground(ColorPrimary)
		}
		return style.Render("(nothing to show)")
	}

	blocks := layoutTreemap(children, innerW, innerH)

	canvas := make([][]rune, innerH)
	colors := make([][]lipgloss.Color, innerH)
	for y := range canvas {
		canvas[y] = make([]rune, innerW)
		colors[y] = make([]lipgloss.Color, innerW)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	for _, b := range blocks {
		col := colorFor(b.node.Name)
		label := []rune(b.node.Name)
		for y := b.y; y < b.y+b.height && y < innerH; y++ {
			for x := b.x; x < b.x+b.width && x < innerW; x++ {
				canvas[y][x] = '·'
				colors[y][x] = col
			}
		}
		if b.height > 0 && b.width > 1 && b.y < innerH {
			for i, r := range label {
				x := b.x + 1 + i
				if x >= b.x+b.width-1 || x >= innerW {
					break
				}
				canvas[b.y][x] = r
				colors[b.y][x] = col
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < innerH; y++ {
		var line strings.Builder
		for x := 0; x < innerW; x++ {
			ch := string(canvas[y][x])
			if canvas[y][x] == ' ' {
				line.WriteString(ch)
				continue
			}
			line.WriteString(lipgloss.NewStyle().Foreground(colors[y][x]).Render(ch))
		}
		sb.WriteString(line.String())
		if y < innerH-1 {
			sb.WriteString("\n")
		}
	}

	style := RingPanelStyle.Width(width - 2).Height(height - 2)
	if state.Focus == core.FocusRing {
		style = style.BorderForeground(ColorPrimary)
	}
	return style.Render(sb.String())
}
