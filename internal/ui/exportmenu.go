package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/export"
	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// ExportMenuState tracks the last export attempt so the modal can show a
// status line instead of silently succeeding or crashing (spec.md §7).
type ExportMenuState struct {
	LastPath string
	LastErr  error
	LastAt   time.Time
}

// doExport writes result as JSON to the default report path and records
// the outcome in s.
func doExport(s *ExportMenuState, result *model.ScanResult) {
	path := fmt.Sprintf("disklens-report-%s.json", time.Now().Format("20060102-150405"))
	err := export.Write(path, result)
	s.LastPath = path
	s.LastErr = err
	s.LastAt = time.Now()
}

// renderExportMenu draws the ExportMenu modal.
func renderExportMenu(s ExportMenuState, width, height int) string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Export"))
	b.WriteString("\n\n")
	b.WriteString("j: write JSON report to the current directory\n\n")

	switch {
	case s.LastErr != nil:
		b.WriteString(ErrorRowStyle.Render(fmt.Sprintf("export failed: %v", s.LastErr)))
	case s.LastPath != "":
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("wrote %s", s.LastPath)))
	default:
		b.WriteString(HintBarStyle.Render("no export yet"))
	}

	b.WriteString("\n\n")
	b.WriteString(HintBarStyle.Render("esc: close"))

	return ModalStyle.Width(width).Height(height).Render(b.String())
}
