package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZingerLittleBee/DiskLens/internal/core"
	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// renderFileList draws the sorted/folded child list for state's current
// directory, highlighting the selected row. It is a pure function of
// AppState and the pane's dimensions.
func renderFileList(state core.AppState, width, height int) string {
	children := state.SortedChildren()
	total := currentTotal(state)

	var rows []string
	focused := state.Focus == core.FocusList

	for i, c := range children {
		row := renderFileRow(c, total, width-4)
		style := ListItemStyle
		switch {
		case core.IsOthers(c):
			style = ListItemOthersStyle
		case c.Kind == model.Directory:
			style = ListItemDirStyle
		}
		if i == state.SelectedIndex {
			if focused {
				row = ListItemSelected.Width(width - 4).Render(row)
			} else {
				row = ListItemSelectedUnfocused.Width(width - 4).Render(row)
			}
		} else {
			row = style.Render(row)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		rows = append(rows, ListItemOthersStyle.Render("(empty directory)"))
	}

	content := strings.Join(rows, "\n")
	style := ListPanelStyle.Width(width - 2).Height(height - 2)
	if focused {
		style = style.BorderForeground(ColorPrimary)
	}
	return style.Render(content)
}

func currentTotal(state core.AppState) int64 {
	if state.Result == nil {
		return 0
	}
	return state.Result.TotalSize
}

func renderFileRow(n *model.Node, total int64, width int) string {
	icon := "📄"
	if n.Kind == model.Directory {
		icon = "📁"
	} else if n.Kind == model.Symlink {
		icon = "🔗"
	}

	name := n.Name
	size := model.HumanSize(n.Size)
	pct := ""
	if total > 0 {
		pct = fmt.Sprintf("%5.1f%%", n.Percentage(total))
	}

	left := fmt.Sprintf("%s %s", icon, name)
	right := fmt.Sprintf("%10s %7s", size, pct)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
