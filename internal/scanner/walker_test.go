package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "e")
	mustMkdir(t, root)

	w := NewWalker()
	go drain(w)
	result, err := w.Scan(context.Background(), root, DefaultScanConfig())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.Root.Size != 0 {
		t.Errorf("Size = %d, want 0", result.Root.Size)
	}
	if result.Root.FileCount != 0 {
		t.Errorf("FileCount = %d, want 0", result.Root.FileCount)
	}
	if result.Root.DirCount != 1 {
		t.Errorf("DirCount = %d, want 1", result.Root.DirCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
}

func TestScanBasicTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "b")
	mustMkdir(t, filepath.Join(root, "d"))
	mustWriteFile(t, filepath.Join(root, "a.txt"), 100)
	mustWriteFile(t, filepath.Join(root, "d", "b.txt"), 200)

	w := NewWalker()
	go drain(w)
	result, err := w.Scan(context.Background(), root, DefaultScanConfig())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.Root.Size != 300 {
		t.Errorf("Size = %d, want 300", result.Root.Size)
	}
	if result.Root.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", result.Root.FileCount)
	}
	if result.Root.DirCount != 2 {
		t.Errorf("DirCount = %d, want 2", result.Root.DirCount)
	}

	var dNode *model.Node
	for _, c := range result.Root.Children {
		if c.Name == "d" {
			dNode = c
		}
	}
	if dNode == nil {
		t.Fatalf("child 'd' not found among %v", result.Root.Children)
	}
	got := dNode.Percentage(300)
	if got < 66.66 || got > 66.67 {
		t.Errorf("d.Percentage(300) = %v, want ~66.66", got)
	}
}

func TestScanMaxDepthTruncation(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "five")
	deepest := root
	for i := 0; i < 5; i++ {
		deepest = filepath.Join(deepest, "lvl")
		mustMkdir(t, deepest)
	}
	mustWriteFile(t, filepath.Join(deepest, "leaf.txt"), 42)

	maxDepth := 2
	cfg := DefaultScanConfig()
	cfg.MaxDepth = &maxDepth

	w := NewWalker()
	go drain(w)
	result, err := w.Scan(context.Background(), root, cfg)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	node := result.Root
	for depth := 0; depth < maxDepth; depth++ {
		if len(node.Children) != 1 {
			t.Fatalf("at depth %d: children = %v, want exactly one 'lvl'", depth, node.Children)
		}
		node = node.Children[0]
	}
	if len(node.Children) != 0 {
		t.Errorf("level-%d directory has %d children, want 0 (truncated)", maxDepth, len(node.Children))
	}
	if node.Size != 0 {
		t.Errorf("level-%d directory Size = %d, want 0 (contents unobserved)", maxDepth, node.Size)
	}
}

func TestScanSymlinkCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "cycle")
	mustMkdir(t, root)
	// root/self -> root, a cycle the walker must not follow infinitely.
	if err := os.Symlink(root, filepath.Join(root, "self")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	cfg := DefaultScanConfig()
	cfg.FollowSymlinks = true

	w := NewWalker()
	go drain(w)
	result, err := w.Scan(context.Background(), root, cfg)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(result.Errors) == 0 {
		t.Fatalf("expected at least one error, got none")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == model.SymlinkCycle {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors = %v, want at least one SymlinkCycle", result.Errors)
	}
}

func TestScanNonexistentRoot(t *testing.T) {
	w := NewWalker()
	go drain(w)
	_, err := w.Scan(context.Background(), "/does/not/exist/anywhere", DefaultScanConfig())
	if err == nil {
		t.Fatalf("Scan: expected error for nonexistent root")
	}
}

// drain consumes a walker's progress/error channels concurrently with a
// scan, as Controller does in production, so their buffers do not stay
// full for the length of the walk.
func drain(w *Walker) {
	for {
		select {
		case _, ok := <-w.ProgressEvents():
			if !ok {
				return
			}
		case _, ok := <-w.Errors():
			if !ok {
				return
			}
		}
	}
}
