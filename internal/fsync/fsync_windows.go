//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// flush forces written data and metadata to disk.
func flush(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
