package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestBOM_String(t *testing.T) {
	tests := []struct {
		name     string
		bom      BOM
		expected string
	}{
		{"none", BOMNone, "none"},
		{"utf8", BOMUTF8, "UTF-8"},
		{"utf16le", BOMUTF16LE, "UTF-16LE"},
		{"utf16be", BOMUTF16BE, "UTF-16BE"},
		{"utf32le", BOMUTF32LE, "UTF-32LE"},
		{"utf32be", BOMUTF32BE, "UTF-32BE"},
		{"out of range", BOM(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bom.String(); got != tt.expected {
				t.Errorf("BOM(%d).String() = %q, expected %q", int(tt.bom), got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := &Error{Kind: ErrKindIO, Msg: "read config", Err: cause}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, expected true")
	}
	if got, want := err.Error(), "read config: disk gone"; got != want {
		t.Errorf("Error() = %q, expected %q", got, want)
	}
}

func TestError_SentinelsMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("line 7: %w", ErrMissingDelimiter)

	if !errors.Is(wrapped, ErrMissingDelimiter) {
		t.Errorf("errors.Is(wrapped, ErrMissingDelimiter) = false, expected true")
	}
	var typed *Error
	if !errors.As(wrapped, &typed) {
		t.Fatalf("errors.As(wrapped, *Error) = false, expected true")
	}
	if typed.Kind != ErrKindParse {
		t.Errorf("Kind = %d, expected ErrKindParse", typed.Kind)
	}
}
