package model

import "sort"

// SortMode controls the visible ordering imposed on a directory's children
// at render time. Construction order is unspecified (spec: "a Node's
// children list is unordered at construction").
type SortMode int

const (
	SizeDesc SortMode = iota
	NameAsc
	ModifiedDesc
)

// String returns a human-readable label for the sort mode.
func (m SortMode) String() string {
	switch m {
	case SizeDesc:
		return "size"
	case NameAsc:
		return "name"
	case ModifiedDesc:
		return "modified"
	default:
		return "unknown"
	}
}

// Next cycles to the following sort mode, wrapping back to SizeDesc.
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

// SortChildren returns a new, sorted slice of nodes; the source slice (and
// the tree itself) is left untouched.
func SortChildren(nodes []*Node, mode SortMode) []*Node {
	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)

	switch mode {
	case NameAsc:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case ModifiedDesc:
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Modified.Equal(sorted[j].Modified) {
				return sorted[i].Path < sorted[j].Path
			}
			return sorted[i].Modified.After(sorted[j].Modified)
		})
	default: // SizeDesc
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Size == sorted[j].Size {
				return sorted[i].Path < sorted[j].Path
			}
			return sorted[i].Size > sorted[j].Size
		})
	}
	return sorted
}
