// Package scanner implements the bounded-concurrency directory walk that
// builds a model.Node tree, tolerating per-entry failures and defeating
// symlink cycles.
package scanner

import (
	"context"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/progress"
	"github.com/ZingerLittleBee/DiskLens/internal/storage"
)

// ScanConfig drives one scan.
type ScanConfig struct {
	// MaxDepth caps recursion when non-nil; nil means unlimited.
	MaxDepth *int
	// MaxConcurrentIO caps in-flight directory reads. Zero means "derive
	// from StorageType".
	MaxConcurrentIO int
	// FollowSymlinks, when false (the default), records symlinks as
	// Symlink nodes instead of traversing them.
	FollowSymlinks bool
	// MergeThreshold is the UI-layer fold threshold; the scanner only
	// stores it for downstream use.
	MergeThreshold float64
	// IgnorePatterns are substrings; matching paths are skipped silently.
	IgnorePatterns []string
	// StorageType drives auto concurrency when MaxConcurrentIO is zero.
	StorageType storage.Kind
}

// DefaultScanConfig returns the spec's documented defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		MergeThreshold: 0.01,
		StorageType:    storage.Unknown,
	}
}

// resolvedConcurrency returns the effective semaphore size for this
// config: an explicit override, or the storage-type default.
func (c ScanConfig) resolvedConcurrency() int {
	if c.MaxConcurrentIO > 0 {
		return c.MaxConcurrentIO
	}
	return c.StorageType.MaxConcurrentIO()
}

// Scanner walks a root path and produces a ScanResult.
type Scanner interface {
	Scan(ctx context.Context, root string, cfg ScanConfig) (*model.ScanResult, error)
	Progress() *progress.Tracker
}
