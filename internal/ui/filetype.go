package ui

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// fileType sniffs path's magic bytes and returns its extension in upper
// case (e.g. "PDF", "PNG"), or "" when detection fails or yields none.
// Detection reads only the file's leading bytes, not its full content.
func fileType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	ext := mtype.Extension()
	if ext == "" {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}
