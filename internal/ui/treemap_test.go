package ui

import (
	"testing"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func TestLayoutTreemapCoversArea(t *testing.T) {
	a := model.FromFile("/r/a", model.File, 700, 700, time.Now(), 1, true)
	b := model.FromFile("/r/b", model.File, 300, 300, time.Now(), 2, true)

	blocks := layoutTreemap([]*model.Node{a, b}, 40, 20)
	if len(blocks) != 2 {
		t.Fatalf("layoutTreemap returned %d blocks, want 2", len(blocks))
	}

	var totalArea int
	names := map[string]bool{}
	for _, blk := range blocks {
		totalArea += blk.width * blk.height
		names[blk.node.Name] = true
	}
	if !names["a"] || !names["b"] {
		t.Fatalf("blocks = %v, want both a and b represented", names)
	}
	// Squarify should fill close to the full area; some rounding loss is
	// expected from integer truncation of float rectangles.
	if totalArea < (40*20)-40 {
		t.Errorf("totalArea = %d, want close to %d", totalArea, 40*20)
	}
}

func TestLayoutTreemapEmptyInputs(t *testing.T) {
	if blocks := layoutTreemap(nil, 40, 20); blocks != nil {
		t.Errorf("layoutTreemap(nil) = %v, want nil", blocks)
	}
	a := model.FromFile("/r/a", model.File, 10, 10, time.Now(), 1, true)
	if blocks := layoutTreemap([]*model.Node{a}, 0, 20); blocks != nil {
		t.Errorf("layoutTreemap with zero width = %v, want nil", blocks)
	}
}
