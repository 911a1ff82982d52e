//go:build !windows

package scanner

import (
	"os"
	"syscall"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// osLstat stats a path without following a trailing symlink.
func osLstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// fileInode extracts the inode number from a FileInfo's platform-specific
// Sys value, when available.
func fileInode(info os.FileInfo) (uint64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return stat.Ino, true
}

// fileNode builds a leaf Node for a file, symlink, or other entry, using
// the block-allocation count (not the logical size) for SizeOnDisk so
// sparse files are reported accurately.
func fileNode(path string, info os.FileInfo) *model.Node {
	kind := model.File
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		kind = model.Symlink
	case !info.Mode().IsRegular():
		kind = model.Other
	}

	size := info.Size()
	sizeOnDisk := size
	inode, hasInode := uint64(0), false
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		inode, hasInode = stat.Ino, true
		sizeOnDisk = stat.Blocks * 512
	}

	return model.FromFile(path, kind, size, sizeOnDisk, info.ModTime(), inode, hasInode)
}
