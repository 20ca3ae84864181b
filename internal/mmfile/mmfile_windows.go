//go:build windows

package mmfile

import "os"

// Read loads the configuration file at path. Windows keeps mapped files
// locked against rename and delete, which breaks the common edit cycle of
// configuration text, so the file is read outright instead.
func Read(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
