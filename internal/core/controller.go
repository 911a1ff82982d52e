package core

import (
	"context"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/cache"
	"github.com/ZingerLittleBee/DiskLens/internal/logging"
	"github.com/ZingerLittleBee/DiskLens/internal/scanner"
)

// Controller orchestrates one scan: it consults the cache, runs the
// scanner when needed, and republishes both scanner and cache activity as
// a single ordered Event stream. It holds no UI state of its own — that
// is AppState, owned and mutated by the UI event loop that consumes the
// channel Run returns.
type Controller struct {
	cache *cache.Cache
}

// NewController creates a Controller backed by c. A nil cache disables
// the load-or-scan short circuit entirely (every Run performs a fresh
// scan and skips persistence).
func NewController(c *cache.Cache) *Controller {
	return &Controller{cache: c}
}

// Run starts (or short-circuits) a scan of root and returns the event
// channel the UI should drain. The channel is closed once ScanComplete
// has been sent, which is always the last event (spec.md §5).
func (c *Controller) Run(ctx context.Context, root string, cfg scanner.ScanConfig) <-chan Event {
	events := make(chan Event, 256)
	go c.run(ctx, root, cfg, events)
	return events
}

func (c *Controller) run(ctx context.Context, root string, cfg scanner.ScanConfig, events chan Event) {
	defer close(events)

	if c.cache != nil {
		c.cache.Evict()
		if result, ok := c.cache.Load(root); ok {
			logging.Debug.Printf("controller: cache hit for %s", root)
			events <- ScanCompleteEvent{Result: result}
			return
		}
	}

	w := scanner.NewWalker()
	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		c.forwardProgress(w, events)
	}()

	result, err := w.Scan(ctx, root, cfg)
	<-progressDone // drain every Progress/ScanError before ScanComplete

	if err != nil {
		events <- ScanCompleteEvent{Err: err}
		return
	}

	if c.cache != nil {
		if storeErr := c.cache.Store(root, result); storeErr != nil {
			logging.Debug.Printf("controller: cache store failed: %v", storeErr)
		}
	}

	events <- ScanCompleteEvent{Result: result}
}

// forwardProgress relays the walker's throttle-gated progress snapshots
// and per-entry errors onto the Event channel until both of the walker's
// channels close, which happens once the walk itself finishes.
func (c *Controller) forwardProgress(w *scanner.Walker, events chan Event) {
	progressC := w.ProgressEvents()
	errorC := w.Errors()
	for progressC != nil || errorC != nil {
		select {
		case snap, ok := <-progressC:
			if !ok {
				progressC = nil
				continue
			}
			events <- ProgressEvent{Snapshot: snap.Snapshot}
		case e, ok := <-errorC:
			if !ok {
				errorC = nil
				continue
			}
			events <- ScanErrorEvent{Err: e}
		}
	}
}

// Tick builds a periodic re-render trigger. The UI's own timer, not the
// scanner, is the source (spec.md §4.3).
func Tick(interval time.Duration) <-chan time.Time {
	return time.Tick(interval)
}
