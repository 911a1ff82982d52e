package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// ErrorListState is the ErrorList modal's own cursor/sort state, kept
// separate from core.AppState since it is purely a view concern over
// core.AppState.Result.Errors.
type ErrorListState struct {
	Selected int
	SortKind bool // false: scan order, true: grouped by ErrorKind
}

// sortedErrors returns errs grouped by Kind when SortKind is set,
// preserving the original order within each group.
func (s ErrorListState) sortedErrors(errs []model.ScanError) []model.ScanError {
	out := make([]model.ScanError, len(errs))
	copy(out, errs)
	if !s.SortKind {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

// renderErrorList draws the ErrorList modal.
func renderErrorList(errs []model.ScanError, s ErrorListState, width, height int) string {
	sorted := s.sortedErrors(errs)

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(fmt.Sprintf("Errors (%d)", len(sorted))))
	b.WriteString("\n\n")

	if len(sorted) == 0 {
		b.WriteString(HintBarStyle.Render("no errors recorded"))
	}

	for i, e := range sorted {
		row := fmt.Sprintf("[%s] %s", e.Kind, e.Path)
		if i == s.Selected {
			row = ListItemSelected.Render(row)
		} else {
			row = ErrorRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	sortLabel := "scan order"
	if s.SortKind {
		sortLabel = "grouped by kind"
	}
	b.WriteString(HintBarStyle.Render(fmt.Sprintf("s: sort (%s)   c: copy path   esc/e: close", sortLabel)))

	return ModalStyle.Width(width).Height(height).Render(b.String())
}

// copyPathToClipboard emits an OSC52 clipboard-set sequence for path.
// Terminal emulators that support OSC52 (most modern ones) pick it up
// without any system clipboard integration on the host.
func copyPathToClipboard(path string) {
	osc52.New(path).WriteTo(os.Stdout)
}
