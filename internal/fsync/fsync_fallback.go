//go:build !linux && !freebsd && !darwin && !windows

package fsync

import "os"

// flush forces written data to disk using the portable Sync.
func flush(f *os.File) error {
	return f.Sync()
}
