package model

import (
	"testing"
	"time"
)

func zeroTime() time.Time { return time.Time{} }

func TestFromDirectoryAggregates(t *testing.T) {
	a := FromFile("/tmp/b/a.txt", File, 100, 100, zeroTime(), 0, false)
	bDir := FromDirectory("/tmp/b/d", []*Node{
		FromFile("/tmp/b/d/b.txt", File, 200, 200, zeroTime(), 0, false),
	}, zeroTime(), 0, false)
	root := FromDirectory("/tmp/b", []*Node{a, bDir}, zeroTime(), 0, false)

	if root.Size != 300 {
		t.Errorf("expected size 300, got %d", root.Size)
	}
	if root.FileCount != 2 {
		t.Errorf("expected file_count 2, got %d", root.FileCount)
	}
	if root.DirCount != 2 {
		t.Errorf("expected dir_count 2, got %d", root.DirCount)
	}
	if got := root.Percentage(300); got != 100 {
		t.Errorf("root.Percentage(300) = %v, want 100", got)
	}
	if got := bDir.Percentage(300); got < 66.6 || got > 66.7 {
		t.Errorf("d.Percentage(300) = %v, want ~66.66", got)
	}
}

func TestFromDirectoryEmpty(t *testing.T) {
	root := FromDirectory("/tmp/e", nil, zeroTime(), 0, false)
	if root.Size != 0 || root.FileCount != 0 || root.DirCount != 1 {
		t.Errorf("empty dir: size=%d files=%d dirs=%d", root.Size, root.FileCount, root.DirCount)
	}
}

func TestPercentageZeroTotal(t *testing.T) {
	n := FromFile("/tmp/x", File, 10, 10, zeroTime(), 0, false)
	if got := n.Percentage(0); got != 0 {
		t.Errorf("Percentage(0) = %v, want 0", got)
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1073741824, "1.0 GB"},
	}
	for _, c := range cases {
		if got := HumanSize(c.bytes); got != c.want {
			t.Errorf("HumanSize(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestSortChildrenCycle(t *testing.T) {
	x := FromFile("/x", File, 10, 10, zeroTime(), 0, false)
	y := FromFile("/y", File, 30, 30, zeroTime(), 0, false)
	z := FromFile("/z", File, 20, 20, zeroTime(), 0, false)
	original := []*Node{x, y, z}

	bySize := SortChildren(original, SizeDesc)
	wantOrder(t, bySize, "/y", "/z", "/x")

	byName := SortChildren(original, NameAsc)
	wantOrder(t, byName, "/x", "/y", "/z")

	backToSize := SortChildren(original, SizeDesc)
	wantOrder(t, backToSize, "/y", "/z", "/x")

	// Source slice order untouched.
	wantOrder(t, original, "/x", "/y", "/z")
}

func wantOrder(t *testing.T, nodes []*Node, paths ...string) {
	t.Helper()
	if len(nodes) != len(paths) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(paths))
	}
	for i, p := range paths {
		if nodes[i].Path != p {
			t.Errorf("position %d: got %s, want %s", i, nodes[i].Path, p)
		}
	}
}
