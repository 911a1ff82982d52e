package model

import "testing"

func buildTestTree() *Node {
	a := FromFile("/root/a.txt", File, 100, 100, zeroTime(), 0, false)
	b := FromFile("/root/sub/b.txt", File, 200, 200, zeroTime(), 0, false)
	sub := FromDirectory("/root/sub", []*Node{b}, zeroTime(), 0, false)
	return FromDirectory("/root", []*Node{a, sub}, zeroTime(), 0, false)
}

func TestPathIndexSearch(t *testing.T) {
	root := buildTestTree()
	idx := BuildPathIndex(root)

	matches := idx.Search("sub")
	if len(matches) != 2 { // /root/sub and /root/sub/b.txt
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if len(idx.Search("nope")) != 0 {
		t.Errorf("expected no matches for 'nope'")
	}
}

func TestSizeIndexTopN(t *testing.T) {
	root := buildTestTree()
	idx := BuildSizeIndex(root)

	top := idx.TopN(1)
	if len(top) != 1 || top[0].Path != "/root" {
		t.Fatalf("expected root as single largest node, got %+v", top)
	}

	all := idx.TopN(100)
	if len(all) != 4 { // root, a.txt, sub, b.txt
		t.Fatalf("expected 4 nodes total, got %d", len(all))
	}
}
