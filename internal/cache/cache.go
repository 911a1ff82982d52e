// Package cache persists a ScanResult under the platform cache directory
// and short-circuits a re-scan when the root is unchanged, following the
// gob+gzip body the teacher's cache.go uses, generalized to the
// magic+version header and tmp-then-rename atomic write spec.md §4.5
// requires.
package cache

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZingerLittleBee/DiskLens/internal/logging"
	"github.com/ZingerLittleBee/DiskLens/internal/model"
	"github.com/ZingerLittleBee/DiskLens/internal/watcher"
)

// magic identifies a DiskLens cache body; schemaVersion invalidates the
// entry wholesale when the on-disk shape of model.ScanResult changes.
const (
	magic         = "DLNS"
	schemaVersion = uint32(1)
)

const (
	defaultTTL   = 30 * 24 * time.Hour
	defaultQuota = 500 * 1024 * 1024

	// watchBurstWindow bounds the extra check Load runs on platforms with
	// a working watcher backend; it is not a daemon, just a short dispatch
	// window to catch a change the mtime comparison could miss.
	watchBurstWindow = 50 * time.Millisecond
)

// Meta is the human-readable sidecar written next to each cache body.
type Meta struct {
	OriginalPath  string    `json:"original_path"`
	ScanTimestamp time.Time `json:"scan_timestamp"`
	TotalSize     int64     `json:"total_size"`
	FileCount     int64     `json:"file_count"`
	DirCount      int64     `json:"dir_count"`
	RootMtime     time.Time `json:"root_mtime"`
	RootInode     uint64    `json:"root_inode"`
	HasRootInode  bool      `json:"has_root_inode"`
}

// Cache stores scan results keyed by the hash of their root path.
type Cache struct {
	dir   string
	ttl   time.Duration
	quota int64
}

// New creates a Cache rooted at dir. The directory itself is created by
// the first Store.
func New(dir string) *Cache {
	return &Cache{dir: dir, ttl: defaultTTL, quota: defaultQuota}
}

// DefaultDir returns the platform cache directory for DiskLens, falling
// back to a dotdir under the home directory if os.UserCacheDir fails.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".disklens-cache"
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "disklens")
}

func keyFor(rootPath string) string {
	sum := sha256.Sum256([]byte(rootPath))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) bodyPath(key string) string { return filepath.Join(c.dir, key+".cache") }
func (c *Cache) metaPath(key string) string { return filepath.Join(c.dir, key+".meta.json") }

// Load implements spec.md §4.5's load-or-scan protocol: it returns a
// cached ScanResult only if the sidecar metadata exists and the root's
// current mtime (and inode, where available) still match what was
// recorded at scan time. Any read failure is treated as a cache miss,
// never as an error the caller must handle.
func (c *Cache) Load(rootPath string) (*model.ScanResult, bool) {
	key := keyFor(rootPath)

	meta, err := c.readMeta(key)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		logging.Debug.Printf("cache: stat root for invalidation check: %v", err)
		return nil, false
	}
	if !info.ModTime().Equal(meta.RootMtime) {
		return nil, false
	}
	if meta.HasRootInode {
		inode, ok := rootInode(info)
		if !ok || inode != meta.RootInode {
			return nil, false
		}
	}

	if watcher.Burst(rootPath, watchBurstWindow) {
		return nil, false
	}

	result, err := c.readBody(key)
	if err != nil {
		logging.Debug.Printf("cache: read body: %v", err)
		return nil, false
	}
	return result, true
}

// Store serializes result and writes it atomically: the body is renamed
// into place before the metadata, so a process death between the two
// renames leaves the metadata absent (or stale), which invalidates the
// body on the next Load rather than serving a half-written one.
func (c *Cache) Store(rootPath string, result *model.ScanResult) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	key := keyFor(rootPath)

	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("stat root: %w", err)
	}
	inode, hasInode := rootInode(info)

	meta := Meta{
		OriginalPath:  rootPath,
		ScanTimestamp: result.Timestamp,
		TotalSize:     result.TotalSize,
		FileCount:     result.TotalFiles,
		DirCount:      result.TotalDirs,
		RootMtime:     info.ModTime(),
		RootInode:     inode,
		HasRootInode:  hasInode,
	}

	if err := c.writeBody(key, result); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := c.writeMeta(key, meta); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	return nil
}

func (c *Cache) writeBody(key string, result *model.ScanResult) error {
	var buf bytes.Buffer
	buf.WriteString(magic)
	if err := gob.NewEncoder(&buf).Encode(schemaVersion); err != nil {
		return err
	}
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(result); err != nil {
		gz.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return atomicWrite(c.bodyPath(key), buf.Bytes())
}

func (c *Cache) readBody(key string) (*model.ScanResult, error) {
	raw, err := os.ReadFile(c.bodyPath(key))
	if err != nil {
		return nil, err
	}
	if len(raw) < len(magic) || string(raw[:len(magic)]) != magic {
		return nil, fmt.Errorf("cache: bad magic")
	}
	r := bytes.NewReader(raw[len(magic):])
	var version uint32
	if err := gob.NewDecoder(r).Decode(&version); err != nil {
		return nil, err
	}
	if version != schemaVersion {
		return nil, fmt.Errorf("cache: schema version %d, want %d", version, schemaVersion)
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var result model.ScanResult
	if err := gob.NewDecoder(gz).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Cache) writeMeta(key string, meta Meta) error {
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(c.metaPath(key), raw)
}

func (c *Cache) readMeta(key string) (Meta, error) {
	var meta Meta
	raw, err := os.ReadFile(c.metaPath(key))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(raw, &meta)
	return meta, err
}

// atomicWrite writes data to a *.tmp sibling of target then renames it
// into place; rename is atomic on the same filesystem, so target never
// observes a partial write.
func atomicWrite(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
