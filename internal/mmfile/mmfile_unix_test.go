//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMapsFileContents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	path := filepath.Join(t.TempDir(), "app.ini")
	want := "[server]\r\nhost=example.com\r\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, release, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != want {
		t.Fatalf("Read = %q, want %q", data, want)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	// A second release must be harmless.
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ini")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, release, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("Read returned %d bytes, want 0", len(data))
	}
	if release == nil {
		t.Fatal("Read returned nil release")
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "no-such.ini"))
	if !os.IsNotExist(err) {
		t.Fatalf("Read error = %v, want not-exist", err)
	}
}
