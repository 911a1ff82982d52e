// Package progress implements the scanner's lock-free progress counters
// and the throttle gate that coalesces them into periodic UI events.
package progress

import (
	"sync/atomic"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// emitInterval is the minimum gap between two emitted Progress events.
const emitInterval = 100 * time.Millisecond

// Snapshot is a read-only view of the tracker's counters at one instant.
type Snapshot struct {
	FilesScanned int64
	DirsScanned  int64
	BytesScanned int64
	CurrentPath  string
	Elapsed      time.Duration
}

// Rate returns files scanned per second of elapsed wall time.
func (s Snapshot) Rate() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.FilesScanned) / secs
}

// Tracker holds the scan's monotonically increasing counters. All methods
// are safe for concurrent use by many scanning goroutines; Snapshot may be
// called concurrently by a single reader (the UI event loop).
type Tracker struct {
	filesScanned atomic.Int64
	dirsScanned  atomic.Int64
	bytesScanned atomic.Int64
	lastPath     atomic.Pointer[string]
	lastEmit     atomic.Int64 // unix nanos of last emitted Progress
	start        time.Time
}

// New creates a Tracker whose elapsed-time clock starts now.
func New() *Tracker {
	t := &Tracker{start: time.Now()}
	empty := ""
	t.lastPath.Store(&empty)
	return t
}

// Record registers one scanned entry. last_path is last-writer-wins;
// readers tolerate a torn read because it is purely cosmetic.
func (t *Tracker) Record(kind model.Kind, size int64, path string) {
	switch kind {
	case model.Directory:
		t.dirsScanned.Add(1)
	default:
		t.filesScanned.Add(1)
		t.bytesScanned.Add(size)
	}
	t.lastPath.Store(&path)
}

// ShouldEmit reports whether at least emitInterval has elapsed since the
// last time it returned true, and if so marks "now" as the new baseline.
// The scanner calls Record eagerly on every entry but only publishes a
// Progress event when ShouldEmit returns true, coalescing bursts.
func (t *Tracker) ShouldEmit() bool {
	now := time.Now().UnixNano()
	last := t.lastEmit.Load()
	if now-last < emitInterval.Nanoseconds() {
		return false
	}
	return t.lastEmit.CompareAndSwap(last, now)
}

// Snapshot returns the current counter values.
func (t *Tracker) Snapshot() Snapshot {
	path := t.lastPath.Load()
	var p string
	if path != nil {
		p = *path
	}
	return Snapshot{
		FilesScanned: t.filesScanned.Load(),
		DirsScanned:  t.dirsScanned.Load(),
		BytesScanned: t.bytesScanned.Load(),
		CurrentPath:  p,
		Elapsed:      time.Since(t.start),
	}
}
