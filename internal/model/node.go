// Package model defines the scan tree data model: Node, ScanResult, and
// the indices built over a completed scan.
package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// Kind classifies a Node.
type Kind int

const (
	File Kind = iota
	Directory
	Symlink
	Other
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "other"
	}
}

// Node is a single filesystem entry as observed during a scan. Directory
// nodes are immutable once handed up to their parent: FromDirectory is the
// only place Size/FileCount/DirCount are computed for a directory.
type Node struct {
	Path       string
	Name       string
	Kind       Kind
	Size       int64
	SizeOnDisk int64
	Children   []*Node
	FileCount  int64
	DirCount   int64
	Modified   time.Time
	Inode      uint64
	HasInode   bool
}

// FromFile builds a leaf Node for a regular file (or Other/Symlink entry)
// from its path and already-fetched metadata.
func FromFile(path string, kind Kind, size, sizeOnDisk int64, modified time.Time, inode uint64, hasInode bool) *Node {
	n := &Node{
		Path:       path,
		Name:       filepath.Base(path),
		Kind:       kind,
		Size:       size,
		SizeOnDisk: sizeOnDisk,
		Modified:   modified,
		Inode:      inode,
		HasInode:   hasInode,
	}
	if kind == File {
		n.FileCount = 1
	}
	return n
}

// FromDirectory builds a directory Node, aggregating size and counts from
// its successfully-scanned children. Failed entries are never passed in:
// the scanner records them as ScanErrors instead.
func FromDirectory(path string, children []*Node, modified time.Time, inode uint64, hasInode bool) *Node {
	n := &Node{
		Path:     path,
		Name:     filepath.Base(path),
		Kind:     Directory,
		Children: children,
		Modified: modified,
		Inode:    inode,
		HasInode: hasInode,
		DirCount: 1,
	}
	for _, c := range children {
		n.Size += c.Size
		n.SizeOnDisk += c.SizeOnDisk
		n.FileCount += c.FileCount
		n.DirCount += c.DirCount
	}
	return n
}

// Percentage returns 100*n.Size/total, or 0 when total is 0.
func (n *Node) Percentage(total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n.Size) / float64(total)
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanSize formats bytes using binary (1024-based) prefixes, with one
// decimal place once the value reaches at least one full unit.
func HumanSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
