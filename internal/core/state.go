package core

import (
	"path/filepath"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/progress"
)

// ViewMode selects which modal (if any) the UI overlays on the main view.
type ViewMode int

const (
	ViewScanning ViewMode = iota
	ViewNormal
	ViewHelp
	ViewErrorList
	ViewExportMenu
)

// Focus selects which pane (file list or ring/treemap) receives
// navigation input in Normal mode.
type Focus int

const (
	FocusList Focus = iota
	FocusRing
)

// thresholds is the fixed cycle spec.md §4.6 names for the visual fold
// threshold.
var thresholds = []float64{0.005, 0.01, 0.02, 0.05}

// AppState is the UI's own state, single-task-owned by the event loop and
// never shared concurrently; Controller publishes Events that the owning
// loop folds into a new AppState.
type AppState struct {
	Result            *model.ScanResult
	CurrentPath       string
	PathStack         []string
	SelectedIndex     int
	SortMode          model.SortMode
	ThresholdIdx      int
	Focus             Focus
	ViewMode          ViewMode
	PendingG          bool
	ErrorCount        int
	ProgressSnapshot progress.Snapshot
}

// NewAppState returns the initial state: Scanning, with no result yet.
func NewAppState() AppState {
	return AppState{
		ViewMode:     ViewScanning,
		ThresholdIdx: 1, // 0.01, spec.md §4.4's merge_threshold default
	}
}

// Threshold returns the currently selected fold threshold.
func (s AppState) Threshold() float64 {
	return thresholds[s.ThresholdIdx]
}

// CycleThreshold advances to the next threshold, wrapping.
func (s *AppState) CycleThreshold() {
	s.ThresholdIdx = (s.ThresholdIdx + 1) % len(thresholds)
}

// CycleSort advances to the next sort mode, wrapping back to SizeDesc.
func (s *AppState) CycleSort() {
	s.SortMode = s.SortMode.Next()
}

// ToggleFocus swaps between the file-list and ring/treemap panes.
func (s *AppState) ToggleFocus() {
	if s.Focus == FocusList {
		s.Focus = FocusRing
	} else {
		s.Focus = FocusList
	}
}

// othersLabel is the synthetic, non-navigable entry sorted_children folds
// below-threshold siblings into.
const othersLabel = "(Others)"

// IsOthers reports whether n is the synthetic fold entry; Enter on it is
// a no-op per spec.md §4.6.
func IsOthers(n *model.Node) bool {
	return n != nil && n.Name == othersLabel
}

// currentNode resolves CurrentPath against the result's path index,
// falling back to a tree walk when the index is absent (spec.md §3:
// PathIndex population is optional).
func (s AppState) currentNode() *model.Node {
	if s.Result == nil {
		return nil
	}
	if s.Result.PathIndex != nil {
		if n, ok := s.Result.PathIndex[s.CurrentPath]; ok {
			return n
		}
	}
	return findByPath(s.Result.Root, s.CurrentPath)
}

func findByPath(n *model.Node, path string) *model.Node {
	if n == nil {
		return nil
	}
	if n.Path == path {
		return n
	}
	for _, c := range n.Children {
		if found := findByPath(c, path); found != nil {
			return found
		}
	}
	return nil
}

// SortedChildren returns the current directory's children ordered by
// SortMode, with siblings below Threshold folded into a single synthetic
// "Others" entry whose size is their sum. The underlying tree is never
// mutated.
func (s AppState) SortedChildren() []*model.Node {
	node := s.currentNode()
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	sorted := model.SortChildren(node.Children, s.SortMode)

	total := node.Size
	threshold := s.Threshold()
	var visible []*model.Node
	var othersSize, othersOnDisk int64
	var othersFiles, othersDirs int64

	for _, c := range sorted {
		if total > 0 && c.Percentage(total)/100 < threshold {
			othersSize += c.Size
			othersOnDisk += c.SizeOnDisk
			othersFiles += c.FileCount
			othersDirs += c.DirCount
			continue
		}
		visible = append(visible, c)
	}

	if othersSize > 0 || othersFiles > 0 || othersDirs > 0 {
		visible = append(visible, &model.Node{
			Name:       othersLabel,
			Path:       filepath.Join(node.Path, othersLabel),
			Kind:       model.Other,
			Size:       othersSize,
			SizeOnDisk: othersOnDisk,
			FileCount:  othersFiles,
			DirCount:   othersDirs,
		})
	}
	return visible
}

// MoveSelection clamps SelectedIndex to [0, len(children)-1].
func (s *AppState) MoveSelection(delta int, childCount int) {
	if childCount == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= childCount {
		s.SelectedIndex = childCount - 1
	}
}

// JumpFirst/JumpLast implement the gg/G bindings.
func (s *AppState) JumpFirst() { s.SelectedIndex = 0; s.PendingG = false }
func (s *AppState) JumpLast(childCount int) {
	if childCount > 0 {
		s.SelectedIndex = childCount - 1
	}
	s.PendingG = false
}

// Enter descends into the selected child if it is a directory; the
// synthetic Others entry is non-navigable.
func (s *AppState) Enter(selected *model.Node) {
	if selected == nil || selected.Kind != model.Directory || IsOthers(selected) {
		return
	}
	s.PathStack = append(s.PathStack, s.CurrentPath)
	s.CurrentPath = selected.Path
	s.SelectedIndex = 0
}

// Back pops the navigation stack, restoring the previous CurrentPath.
func (s *AppState) Back() {
	if len(s.PathStack) == 0 {
		return
	}
	last := len(s.PathStack) - 1
	s.CurrentPath = s.PathStack[last]
	s.PathStack = s.PathStack[:last]
	s.SelectedIndex = 0
}
