package core

import (
	"testing"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func buildState() AppState {
	x := model.FromFile("/root/x", model.File, 10, 10, time.Now(), 1, true)
	y := model.FromFile("/root/y", model.File, 30, 30, time.Now(), 2, true)
	z := model.FromFile("/root/z", model.File, 20, 20, time.Now(), 3, true)
	root := model.FromDirectory("/root", []*model.Node{x, y, z}, time.Now(), 4, true)

	s := NewAppState()
	s.Result = model.NewScanResult(root, nil, 0, time.Now())
	s.CurrentPath = root.Path
	s.ViewMode = ViewNormal
	s.ThresholdIdx = 0 // lowest threshold: nothing folds for this scenario
	return s
}

func TestSortedChildrenSortCycle(t *testing.T) {
	s := buildState()

	names := func(nodes []*model.Node) []string {
		out := make([]string, len(nodes))
		for i, n := range nodes {
			out[i] = n.Name
		}
		return out
	}

	sizeDesc := names(s.SortedChildren())
	want := []string{"y", "z", "x"}
	for i := range want {
		if sizeDesc[i] != want[i] {
			t.Fatalf("SizeDesc = %v, want %v", sizeDesc, want)
		}
	}

	s.CycleSort()
	nameAsc := names(s.SortedChildren())
	want = []string{"x", "y", "z"}
	for i := range want {
		if nameAsc[i] != want[i] {
			t.Fatalf("NameAsc = %v, want %v", nameAsc, want)
		}
	}

	s.CycleSort()
	s.CycleSort() // ModifiedDesc, then back to SizeDesc
	if s.SortMode != model.SizeDesc {
		t.Fatalf("SortMode after 3 cycles = %v, want SizeDesc", s.SortMode)
	}
	restored := names(s.SortedChildren())
	for i := range want {
		if restored[i] != sizeDesc[i] {
			t.Fatalf("restored SizeDesc order = %v, want %v", restored, sizeDesc)
		}
	}
}

func TestSortedChildrenFoldsOthers(t *testing.T) {
	big := model.FromFile("/root/big", model.File, 995, 995, time.Now(), 1, true)
	tiny := model.FromFile("/root/tiny", model.File, 5, 5, time.Now(), 2, true)
	root := model.FromDirectory("/root", []*model.Node{big, tiny}, time.Now(), 3, true)

	s := NewAppState()
	s.Result = model.NewScanResult(root, nil, 0, time.Now())
	s.CurrentPath = root.Path
	s.ThresholdIdx = 1 // 0.01: tiny is 0.5% of 1000, below threshold

	children := s.SortedChildren()
	var sawOthers bool
	var totalFromVisible int64
	for _, c := range children {
		if IsOthers(c) {
			sawOthers = true
		}
		totalFromVisible += c.Size
	}
	if !sawOthers {
		t.Fatalf("expected an Others entry when small siblings fall below threshold")
	}
	if totalFromVisible != s.Result.Root.Size {
		t.Errorf("visible total = %d, want %d (Others must preserve total size)", totalFromVisible, s.Result.Root.Size)
	}
}

func TestEnterAndBackNavigation(t *testing.T) {
	a := model.FromFile("/root/d/a.txt", model.File, 5, 5, time.Now(), 1, true)
	d := model.FromDirectory("/root/d", []*model.Node{a}, time.Now(), 2, true)
	root := model.FromDirectory("/root", []*model.Node{d}, time.Now(), 3, true)

	s := NewAppState()
	s.Result = model.NewScanResult(root, nil, 0, time.Now())
	s.CurrentPath = root.Path

	s.Enter(d)
	if s.CurrentPath != d.Path {
		t.Fatalf("CurrentPath after Enter = %q, want %q", s.CurrentPath, d.Path)
	}
	if len(s.PathStack) != 1 || s.PathStack[0] != root.Path {
		t.Fatalf("PathStack after Enter = %v", s.PathStack)
	}

	s.Back()
	if s.CurrentPath != root.Path {
		t.Fatalf("CurrentPath after Back = %q, want %q", s.CurrentPath, root.Path)
	}
	if len(s.PathStack) != 0 {
		t.Fatalf("PathStack after Back = %v, want empty", s.PathStack)
	}
}

func TestEnterOnOthersIsNoop(t *testing.T) {
	s := buildState()
	others := &model.Node{Name: "(Others)", Path: "/root/(Others)", Kind: model.Other}
	s.Enter(others)
	if s.CurrentPath != s.Result.Root.Path {
		t.Fatalf("Enter on Others entry must not navigate")
	}
}
