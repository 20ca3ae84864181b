// Package fsync writes serialized configuration text to disk durably, so a
// saved document survives power loss once WriteFile returns.
package fsync

import "os"

// WriteFile writes data to path, creating or truncating it, and forces the
// bytes to stable storage before returning.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := flush(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
