//go:build linux || freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// flush forces written data to disk.
//
// fdatasync skips the metadata-only update of the file times, which is all
// a rewrite of an existing configuration file usually changes.
func flush(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
