package model

import (
	"sort"
	"strings"
)

// PathIndex maps an absolute path to its Node, used for substring search.
// NewScanResult always populates it. Search consults only this map: on a
// nil index it returns no matches and does not walk the tree.
type PathIndex map[string]*Node

// BuildPathIndex walks the tree once and returns a populated PathIndex.
func BuildPathIndex(root *Node) PathIndex {
	idx := make(PathIndex)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		idx[n.Path] = n
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return idx
}

// Search returns every Node whose path contains pattern as a (case
// sensitive) substring. Result order is unspecified.
func (idx PathIndex) Search(pattern string) []*Node {
	var matches []*Node
	for path, n := range idx {
		if strings.Contains(path, pattern) {
			matches = append(matches, n)
		}
	}
	return matches
}

// SizeIndex is a size-descending sequence of Nodes, used for top-N queries.
type SizeIndex []*Node

// BuildSizeIndex walks the tree once and returns every Node ordered by
// size, descending, ties broken by path ascending.
func BuildSizeIndex(root *Node) SizeIndex {
	var all []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		all = append(all, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Size == all[j].Size {
			return all[i].Path < all[j].Path
		}
		return all[i].Size > all[j].Size
	})
	return all
}

// TopN returns up to n of the largest nodes, size-descending.
func (idx SizeIndex) TopN(n int) []*Node {
	if n > len(idx) {
		n = len(idx)
	}
	if n < 0 {
		n = 0
	}
	out := make([]*Node, n)
	copy(out, idx[:n])
	return out
}
