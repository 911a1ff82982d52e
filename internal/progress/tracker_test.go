package progress

import (
	"testing"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

func TestRecordCounters(t *testing.T) {
	tr := New()
	tr.Record(model.File, 100, "/a")
	tr.Record(model.File, 200, "/b")
	tr.Record(model.Directory, 0, "/dir")

	snap := tr.Snapshot()
	if snap.FilesScanned != 2 {
		t.Errorf("files_scanned = %d, want 2", snap.FilesScanned)
	}
	if snap.DirsScanned != 1 {
		t.Errorf("dirs_scanned = %d, want 1", snap.DirsScanned)
	}
	if snap.BytesScanned != 300 {
		t.Errorf("bytes_scanned = %d, want 300", snap.BytesScanned)
	}
	if snap.CurrentPath != "/dir" {
		t.Errorf("last_path = %q, want /dir", snap.CurrentPath)
	}
}

func TestShouldEmitThrottles(t *testing.T) {
	tr := New()

	if !tr.ShouldEmit() {
		t.Fatal("first call should always emit")
	}
	if tr.ShouldEmit() {
		t.Fatal("immediate second call should be throttled")
	}

	time.Sleep(110 * time.Millisecond)
	if !tr.ShouldEmit() {
		t.Fatal("call after throttle window should emit")
	}
}

func TestMonotonicUnderConcurrency(t *testing.T) {
	tr := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				tr.Record(model.File, 1, "/x")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if got := tr.Snapshot().FilesScanned; got != 8000 {
		t.Errorf("files_scanned = %d, want 8000", got)
	}
}
