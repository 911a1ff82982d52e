package ui

import (
	"math"

	"github.com/jeffwilliams/squarify"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// treemapItem adapts a Node slice to squarify.TreeSizer. Folding
// below-threshold siblings into "Others" already happened in
// core.AppState.SortedChildren, so this layer only lays out whatever
// list it's given — it consumes the same sorted, folded child list the
// file-list view renders, per spec.md §1's ring-chart contract.
type treemapItem struct {
	node     *model.Node
	size     float64
	children []*treemapItem
}

func (t *treemapItem) Size() float64     { return t.size }
func (t *treemapItem) NumChildren() int   { return len(t.children) }
func (t *treemapItem) Child(i int) squarify.TreeSizer { return t.children[i] }

// treemapBlock is one laid-out rectangle, paired back with its Node.
type treemapBlock struct {
	node          *model.Node
	x, y          int
	width, height int
}

// layoutTreemap squarifies nodes into integer-celled blocks filling a
// width x height rectangle. Zero-size nodes are given a floor of 1 so
// squarify never divides by zero.
func layoutTreemap(nodes []*model.Node, width, height int) []treemapBlock {
	if len(nodes) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	children := make([]*treemapItem, len(nodes))
	var total float64
	for i, n := range nodes {
		size := float64(n.Size)
		if size < 1 {
			size = 1
		}
		children[i] = &treemapItem{node: n, size: size}
		total += size
	}
	root := &treemapItem{size: total, children: children}

	rect := squarify.Rect{X: 0, Y: 0, W: float64(width), H: float64(height)}
	blocks, metas := squarify.Squarify(root, rect, squarify.Options{MaxDepth: 1, Sort: true})

	out := make([]treemapBlock, 0, len(blocks))
	for i, b := range blocks {
		if i >= len(metas) || metas[i].Depth != 0 {
			continue
		}
		item, ok := b.TreeSizer.(*treemapItem)
		if !ok || item.node == nil {
			continue
		}
		x := int(math.Round(b.X))
		y := int(math.Round(b.Y))
		out = append(out, treemapBlock{
			node:   item.node,
			x:      x,
			y:      y,
			width:  int(math.Round(b.X+b.W)) - x,
			height: int(math.Round(b.Y+b.H)) - y,
		})
	}
	return out
}
