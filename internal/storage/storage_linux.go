//go:build linux

package storage

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// probePlatform classifies the block device backing path by reading its
// major:minor device number via stat(2) and consulting the kernel's
// per-device rotational flag under /sys/dev/block.
func probePlatform(path string) Kind {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return Unknown
	}

	major := unix.Major(stat.Dev)
	minor := unix.Minor(stat.Dev)

	rotational, err := readRotational(major, minor)
	if err != nil {
		return Unknown
	}
	if rotational {
		return HDD
	}
	return SSD
}

// readRotational follows /sys/dev/block/<major>:<minor> to the whole-disk
// queue's rotational flag, walking up to the parent device for partitions.
func readRotational(major, minor uint32) (bool, error) {
	sysPath := fmt.Sprintf("/sys/dev/block/%d:%d", major, minor)

	flag, err := os.ReadFile(sysPath + "/queue/rotational")
	if err == nil {
		return strings.TrimSpace(string(flag)) == "1", nil
	}

	// Partitions don't carry their own queue/; resolve to the parent
	// device via the "../<parent>" entry the kernel always provides.
	target, linkErr := os.Readlink(sysPath)
	if linkErr != nil {
		return false, err
	}
	parent := parentDeviceName(target)
	if parent == "" {
		return false, err
	}

	flag, err = os.ReadFile("/sys/block/" + parent + "/queue/rotational")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(flag)) == "1", nil
}

// parentDeviceName extracts the whole-disk name ("sda") from a
// /sys/dev/block symlink target such as "../../devices/.../sda/sda1".
func parentDeviceName(target string) string {
	parts := strings.Split(target, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" {
			continue
		}
		// Walk back to the first component that isn't the leaf itself.
		if i > 0 && strings.HasPrefix(parts[i], parts[i-1]) && parts[i] != parts[i-1] {
			return parts[i-1]
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}
