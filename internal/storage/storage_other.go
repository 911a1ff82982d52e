//go:build !linux

package storage

// probePlatform has no portable non-privileged rotational-media probe on
// these platforms (darwin's IOKit path and windows' IOCTL_STORAGE_QUERY_
// PROPERTY both require cgo or heavier syscall surfaces than golang.org/
// x/sys exposes); Unknown is the documented, accepted fallback and still
// yields a sane auto-concurrency ceiling.
func probePlatform(path string) Kind {
	return Unknown
}
