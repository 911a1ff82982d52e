package cache

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/logging"
)

// entry pairs a cache body file with its last-modified time and size, used
// by Evict to decide eviction order.
type entry struct {
	bodyPath string
	metaPath string
	modTime  time.Time
	size     int64
}

// Evict removes entries older than the TTL and, if the directory still
// exceeds the quota afterward, removes additional entries oldest-first
// until it fits. It runs opportunistically at scan start; any failure to
// list or remove a file is logged and otherwise ignored, matching
// spec.md §7's "cache I/O errors are logged but never fatal."
func (c *Cache) Evict() {
	entries, err := c.listEntries()
	if err != nil {
		logging.Debug.Printf("cache: evict: list entries: %v", err)
		return
	}

	now := time.Now()
	var kept []entry
	var total int64
	for _, e := range entries {
		if now.Sub(e.modTime) > c.ttl {
			c.remove(e)
			continue
		}
		kept = append(kept, e)
		total += e.size
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].modTime.Before(kept[j].modTime) })
	for _, e := range kept {
		if total <= c.quota {
			break
		}
		c.remove(e)
		total -= e.size
	}
}

func (c *Cache) listEntries() ([]entry, error) {
	files, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []entry
	for _, f := range files {
		name := f.Name()
		if filepath.Ext(name) != ".cache" {
			continue
		}
		key := name[:len(name)-len(".cache")]
		info, err := f.Info()
		if err != nil {
			continue
		}
		metaInfo, _ := os.Stat(c.metaPath(key))
		size := info.Size()
		if metaInfo != nil {
			size += metaInfo.Size()
		}
		entries = append(entries, entry{
			bodyPath: c.bodyPath(key),
			metaPath: c.metaPath(key),
			modTime:  info.ModTime(),
			size:     size,
		})
	}
	return entries, nil
}

func (c *Cache) remove(e entry) {
	if err := os.Remove(e.bodyPath); err != nil && !os.IsNotExist(err) {
		logging.Debug.Printf("cache: evict: remove body %s: %v", e.bodyPath, err)
	}
	if err := os.Remove(e.metaPath); err != nil && !os.IsNotExist(err) {
		logging.Debug.Printf("cache: evict: remove meta %s: %v", e.metaPath, err)
	}
}
