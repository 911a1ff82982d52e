package scanner

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/ZingerLittleBee/DiskLens/internal/logging"
	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/progress"
)

// ProgressEvent is published whenever the tracker's throttle gate opens.
type ProgressEvent struct {
	Snapshot progress.Snapshot
}

// Walker implements Scanner using fastwalk's own bounded-concurrency
// directory traversal. fastwalk's NumWorkers is the permit pool spec.md
// §4.4 describes: it bounds concurrently in-flight directory reads, not
// the total number of Nodes produced.
type Walker struct {
	tracker   *progress.Tracker
	progressC chan ProgressEvent
	errorC    chan model.ScanError
}

// NewWalker creates a Walker. Construct a new one per scan so its
// channels start fresh.
func NewWalker() *Walker {
	return &Walker{
		tracker:   progress.New(),
		progressC: make(chan ProgressEvent, 64),
		errorC:    make(chan model.ScanError, 256),
	}
}

// Progress returns the tracker backing this scan's counters.
func (w *Walker) Progress() *progress.Tracker { return w.tracker }

// ProgressEvents exposes the streamed, throttle-gated snapshots. Closed
// when Scan returns.
func (w *Walker) ProgressEvents() <-chan ProgressEvent { return w.progressC }

// Errors exposes scan errors as they are recorded, in addition to the
// final aggregated list on the returned ScanResult. The send never
// blocks: an error is left off this channel (but kept in the final list)
// when its buffer is full. Closed when Scan returns.
func (w *Walker) Errors() <-chan model.ScanError { return w.errorC }

// dirMeta is the metadata captured for a directory at visit time, needed
// later by assemble to build its aggregated Node.
type dirMeta struct {
	modified time.Time
	inode    uint64
	hasInode bool
}

// treeBuilder accumulates the flat stream of visited entries into a
// parent-path -> children map, which assemble folds into an aggregated
// tree after the walk completes.
type treeBuilder struct {
	mu       sync.Mutex
	children map[string][]*model.Node
	depth    map[string]int
	dirs     map[string]dirMeta
	visited  sync.Map // canonical path -> struct{}, cycle/dup defense
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		children: make(map[string][]*model.Node),
		depth:    make(map[string]int),
		dirs:     make(map[string]dirMeta),
	}
}

func (b *treeBuilder) addChild(parent string, n *model.Node) {
	b.mu.Lock()
	b.children[parent] = append(b.children[parent], n)
	b.mu.Unlock()
}

func (b *treeBuilder) enterDir(path string, depth int, meta dirMeta) {
	b.mu.Lock()
	b.depth[path] = depth
	b.dirs[path] = meta
	b.mu.Unlock()
}

func (b *treeBuilder) depthOf(path string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.depth[path]
	return d, ok
}

// Scan walks root and returns the aggregated tree. Only a failure to
// stat the root itself is returned as an error; every other failure is
// recorded in the result's error log and does not stop the scan.
func (w *Walker) Scan(ctx context.Context, root string, cfg ScanConfig) (*model.ScanResult, error) {
	start := time.Now()
	defer close(w.progressC)
	defer close(w.errorC)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	rootInfo, err := osLstat(absRoot)
	if err != nil {
		return nil, err
	}

	if !rootInfo.IsDir() {
		n := fileNode(absRoot, rootInfo)
		return model.NewScanResult(n, nil, time.Since(start), time.Now()), nil
	}

	builder := newTreeBuilder()
	rootInode, rootHasInode := fileInode(rootInfo)
	builder.enterDir(absRoot, 0, dirMeta{modified: rootInfo.ModTime(), inode: rootInode, hasInode: rootHasInode})
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		realRoot = absRoot
	}
	builder.visited.Store(realRoot, struct{}{})

	var errsMu sync.Mutex
	var errs []model.ScanError
	recordErr := func(e model.ScanError) {
		errsMu.Lock()
		errs = append(errs, e)
		errsMu.Unlock()
		select {
		case w.errorC <- e:
		default:
		}
	}

	conf := fastwalk.Config{
		Follow:     cfg.FollowSymlinks,
		NumWorkers: cfg.resolvedConcurrency(),
	}
	logging.Scanner.Printf("scan start: %s (follow=%v, workers=%d)", absRoot, conf.Follow, conf.NumWorkers)

	walkErr := fastwalk.Walk(&conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return fastwalk.ErrSkipFiles
		default:
		}

		if err != nil {
			recordErr(classifyErr(path, err))
			if d != nil && d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if path == absRoot {
			return nil // root's own Node is synthesized after the walk
		}

		if matchesIgnore(path, cfg.IgnorePatterns) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		parent := filepath.Dir(path)
		parentDepth, _ := builder.depthOf(parent)
		depth := parentDepth + 1

		info, infoErr := d.Info()
		if infoErr != nil {
			recordErr(classifyErr(path, infoErr))
			return nil
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0 && !cfg.FollowSymlinks:
			n := &model.Node{
				Path:     path,
				Name:     filepath.Base(path),
				Kind:     model.Symlink,
				Modified: info.ModTime(),
			}
			builder.addChild(parent, n)
			w.tracker.Record(model.Other, 0, path)
			w.emitProgress()
			return nil

		case d.IsDir():
			// Cycle detection keys on the directory's resolved real path,
			// not the logical path fastwalk hands us: when following
			// symlinks, a loop is walked under ever-deeper rebased
			// logical paths (root/self, root/self/self, …) that never
			// repeat as strings, so only target identity catches it.
			real, realErr := filepath.EvalSymlinks(path)
			if realErr != nil {
				recordErr(classifyErr(path, realErr))
				return fastwalk.SkipDir
			}
			if _, dup := builder.visited.LoadOrStore(real, struct{}{}); dup {
				logging.Scanner.Printf("symlink cycle: %s resolves to already-seen %s", path, real)
				recordErr(model.ScanError{Path: path, Kind: model.SymlinkCycle})
				return fastwalk.SkipDir
			}
			if logging.Enabled {
				logging.Scanner.Printf("dir: %s depth=%d", path, depth)
			}
			inode, hasInode := fileInode(info)
			builder.enterDir(path, depth, dirMeta{modified: info.ModTime(), inode: inode, hasInode: hasInode})
			// Register as its parent's child now; assemble resolves its
			// own children recursively once the walk is complete.
			builder.addChild(parent, &model.Node{Path: path, Kind: model.Directory})
			w.tracker.Record(model.Directory, 0, path)
			w.emitProgress()

			// Depth cut-off: a directory at the configured max depth is
			// kept (with its own size contribution 0, since its contents
			// are unobserved) but not descended into. This is a
			// deliberate truncation, not an error.
			if cfg.MaxDepth != nil && depth >= *cfg.MaxDepth {
				return fastwalk.SkipDir
			}
			return nil

		default:
			n := fileNode(path, info)
			builder.addChild(parent, n)
			w.tracker.Record(model.File, n.Size, path)
			w.emitProgress()
			return nil
		}
	})

	if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
		recordErr(classifyErr(absRoot, walkErr))
	}
	logging.Scanner.Printf("scan done: %d errors in %s", len(errs), time.Since(start))

	root2 := assemble(absRoot, builder)
	return model.NewScanResult(root2, errs, time.Since(start), time.Now()), nil
}

func (w *Walker) emitProgress() {
	if !w.tracker.ShouldEmit() {
		return
	}
	select {
	case w.progressC <- ProgressEvent{Snapshot: w.tracker.Snapshot()}:
	default:
	}
}

// assemble folds the flat parent->children map into an aggregated Node
// tree, bottom-up, starting at path. A directory with no recorded meta
// (never visited, e.g. due to cancellation) still produces a valid,
// empty Node so the tree stays well-formed.
func assemble(path string, b *treeBuilder) *model.Node {
	b.mu.Lock()
	kids := b.children[path]
	meta := b.dirs[path]
	b.mu.Unlock()

	children := make([]*model.Node, 0, len(kids))
	for _, k := range kids {
		if k.Kind == model.Directory {
			children = append(children, assemble(k.Path, b))
		} else {
			children = append(children, k)
		}
	}

	return model.FromDirectory(path, children, meta.modified, meta.inode, meta.hasInode)
}

func matchesIgnore(path string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func classifyErr(path string, err error) model.ScanError {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return model.ScanError{Path: path, Kind: model.PermissionDenied, Detail: err.Error()}
	case errors.Is(err, fs.ErrNotExist):
		return model.ScanError{Path: path, Kind: model.NotFound, Detail: err.Error()}
	default:
		return model.ScanError{Path: path, Kind: model.Io, Detail: err.Error()}
	}
}

var _ Scanner = (*Walker)(nil)
