package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func sampleResult() *model.Node {
	a := model.FromFile("/root/a.txt", model.File, 100, 100, time.Now(), 1, true)
	b := model.FromFile("/root/b.txt", model.File, 200, 200, time.Now(), 2, true)
	return model.FromDirectory("/root", []*model.Node{a, b}, time.Now(), 3, true)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rootDir := filepath.Join(dir, "scanroot")
	if err := os.Mkdir(rootDir, 0o755); err != nil {
		t.Fatal(err)
	}

	c := New(filepath.Join(dir, "cache"))
	root := sampleResult()
	root.Path = rootDir
	original := model.NewScanResult(root, nil, 5*time.Second, time.Now())

	if err := c.Store(rootDir, original); err != nil {
		t.Fatalf("Store: %v", err)
	}

	loaded, ok := c.Load(rootDir)
	if !ok {
		t.Fatalf("Load: expected hit")
	}
	if loaded.TotalSize != original.TotalSize {
		t.Errorf("TotalSize = %d, want %d", loaded.TotalSize, original.TotalSize)
	}
	if loaded.TotalFiles != original.TotalFiles {
		t.Errorf("TotalFiles = %d, want %d", loaded.TotalFiles, original.TotalFiles)
	}
	if loaded.Root.Path != original.Root.Path {
		t.Errorf("Root.Path = %q, want %q", loaded.Root.Path, original.Root.Path)
	}
}

func TestLoadMissInvalidatesOnMtimeChange(t *testing.T) {
	dir := t.TempDir()
	rootDir := filepath.Join(dir, "scanroot")
	if err := os.Mkdir(rootDir, 0o755); err != nil {
		t.Fatal(err)
	}

	c := New(filepath.Join(dir, "cache"))
	root := sampleResult()
	root.Path = rootDir
	original := model.NewScanResult(root, nil, 0, time.Now())
	if err := c.Store(rootDir, original); err != nil {
		t.Fatalf("Store: %v", err)
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(rootDir, future, future); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Load(rootDir); ok {
		t.Errorf("Load: expected miss after mtime change")
	}
}

func TestLoadMissWithoutMeta(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	if _, ok := c.Load("/does/not/matter"); ok {
		t.Errorf("Load: expected miss with no meta present")
	}
}
