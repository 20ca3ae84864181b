//go:build !unix && !windows

// Package mmfile reads configuration files through a memory mapping where
// the platform supports one, avoiding a copy for large documents.
package mmfile

import "os"

// Read loads the configuration file at path without mapping.
func Read(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
