package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func threeFileTree() *model.Node {
	a := model.FromFile("/tmp/r/a.txt", model.File, 100, 100, time.Now(), 1, true)
	b := model.FromFile("/tmp/r/b.txt", model.File, 200, 200, time.Now(), 2, true)
	c := model.FromFile("/tmp/r/d/c.txt", model.File, 50, 50, time.Now(), 3, true)
	d := model.FromDirectory("/tmp/r/d", []*model.Node{c}, time.Now(), 4, true)
	return model.FromDirectory("/tmp/r", []*model.Node{a, b, d}, time.Now(), 5, true)
}

func TestJSONExportRoundTrip(t *testing.T) {
	root := threeFileTree()
	result := model.NewScanResult(root, nil, 0, time.Now())

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	if err := Write(path, result); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var parsed Report
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if parsed.ScanInfo.TotalSize != result.TotalSize {
		t.Errorf("total_size = %d, want %d", parsed.ScanInfo.TotalSize, result.TotalSize)
	}
	if parsed.ScanInfo.TotalFiles != result.TotalFiles {
		t.Errorf("total_files = %d, want %d", parsed.ScanInfo.TotalFiles, result.TotalFiles)
	}
}

func TestBuildReportErrorCount(t *testing.T) {
	root := threeFileTree()
	errs := []model.ScanError{
		{Path: "/tmp/r/secret", Kind: model.PermissionDenied},
	}
	result := model.NewScanResult(root, errs, 0, time.Now())

	report := BuildReport(result)
	if report.ScanInfo.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", report.ScanInfo.ErrorCount)
	}
	if len(report.Errors) != 1 || report.Errors[0].Kind != "permission denied" {
		t.Errorf("Errors = %+v", report.Errors)
	}
}
