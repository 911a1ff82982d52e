// Package export writes a ScanResult as the JSON report layout spec.md
// §6 names: a tree mirror of the Node structure plus a top-level
// scan_info block and an errors array. It is the only serialization
// format wired; Markdown/HTML stay external collaborators per spec.md §1.
package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// ScanInfo is the report's summary header.
type ScanInfo struct {
	Timestamp  time.Time `json:"timestamp"`
	TotalSize  int64     `json:"total_size"`
	TotalFiles int64     `json:"total_files"`
	TotalDirs  int64     `json:"total_dirs"`
	ErrorCount int       `json:"error_count"`
	DurationMs int64     `json:"duration_ms"`
}

// ErrorEntry mirrors one model.ScanError.
type ErrorEntry struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// TreeNode mirrors one model.Node for serialization, with snake_case
// field names; empty Children are omitted rather than emitted as null.
type TreeNode struct {
	Name       string      `json:"name"`
	Path       string      `json:"path"`
	Kind       string      `json:"kind"`
	Size       int64       `json:"size"`
	SizeOnDisk int64       `json:"size_on_disk"`
	FileCount  int64       `json:"file_count"`
	DirCount   int64       `json:"dir_count"`
	Modified   time.Time   `json:"modified"`
	Children   []*TreeNode `json:"children,omitempty"`
}

// Report is the full on-disk JSON document.
type Report struct {
	ScanInfo ScanInfo     `json:"scan_info"`
	Errors   []ErrorEntry `json:"errors"`
	Tree     *TreeNode    `json:"tree"`
}

// BuildReport converts a ScanResult into its JSON-serializable shape.
func BuildReport(result *model.ScanResult) *Report {
	r := &Report{
		ScanInfo: ScanInfo{
			Timestamp:  result.Timestamp,
			TotalSize:  result.TotalSize,
			TotalFiles: result.TotalFiles,
			TotalDirs:  result.TotalDirs,
			ErrorCount: len(result.Errors),
			DurationMs: result.Duration.Milliseconds(),
		},
		Errors: make([]ErrorEntry, 0, len(result.Errors)),
		Tree:   convertNode(result.Root),
	}
	for _, e := range result.Errors {
		r.Errors = append(r.Errors, ErrorEntry{Path: e.Path, Kind: e.Kind.String(), Detail: e.Detail})
	}
	return r
}

func convertNode(n *model.Node) *TreeNode {
	if n == nil {
		return nil
	}
	t := &TreeNode{
		Name:       n.Name,
		Path:       n.Path,
		Kind:       n.Kind.String(),
		Size:       n.Size,
		SizeOnDisk: n.SizeOnDisk,
		FileCount:  n.FileCount,
		DirCount:   n.DirCount,
		Modified:   n.Modified,
	}
	for _, c := range n.Children {
		t.Children = append(t.Children, convertNode(c))
	}
	return t
}

// Write serializes result as indented JSON to path.
func Write(path string, result *model.ScanResult) error {
	report := BuildReport(result)
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
