package core

import (
	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/progress"
)

// Event is the typed message carried scanner -> UI over a single buffered
// channel. Implementations are unexported-marker types, matching the
// teacher's isEvent() idiom.
type Event interface {
	isEvent()
}

// ProgressEvent reports the throttle-gated snapshot of the scan counters.
type ProgressEvent struct {
	Snapshot progress.Snapshot
}

func (ProgressEvent) isEvent() {}

// ScanErrorEvent reports one per-entry failure as it is recorded. The full
// list is also available on the final ScanResult; this lets the UI show a
// live error count during a long scan.
type ScanErrorEvent struct {
	Err model.ScanError
}

func (ScanErrorEvent) isEvent() {}

// ScanCompleteEvent is always the last event a scan publishes.
type ScanCompleteEvent struct {
	Result *model.ScanResult
	Err    error
}

func (ScanCompleteEvent) isEvent() {}

// TickEvent is injected by the UI's own timer, not the scanner; it drives
// periodic re-renders (e.g. a toast's expiry) with no scan data attached.
type TickEvent struct{}

func (TickEvent) isEvent() {}

// InputEvent is injected by the input pump (bubbletea's own terminal
// reader in this implementation).
type InputEvent struct {
	Key string
}

func (InputEvent) isEvent() {}
