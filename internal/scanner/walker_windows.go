//go:build windows

package scanner

import (
	"os"

	"github.com/ZingerLittleBee/DiskLens/internal/model"
)

// osLstat stats a path without following a trailing symlink.
func osLstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// fileInode is unavailable on windows; Nodes built there carry no inode.
func fileInode(info os.FileInfo) (uint64, bool) {
	return 0, false
}

// fileNode builds a leaf Node for a file, symlink, or other entry. Windows
// has no block-allocation count exposed through os.FileInfo, so SizeOnDisk
// falls back to the logical size.
func fileNode(path string, info os.FileInfo) *model.Node {
	kind := model.File
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		kind = model.Symlink
	case !info.Mode().IsRegular():
		kind = model.Other
	}

	size := info.Size()
	return model.FromFile(path, kind, size, size, info.ModTime(), 0, false)
}
