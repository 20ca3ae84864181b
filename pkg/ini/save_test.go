package ini_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/inikit/pkg/ini"
)

// sampleInput covers all entry kinds, quoting, arrays, inline comments, and
// a header-only trailing section.
var sampleInput = strings.Join([]string{
	"; app config",
	"timeout=30",
	"",
	"[server] ; main tier",
	"host = example.com",
	"ports[]=80",
	"ports[]=443",
	"motto=\"hello world\" ; greeting",
	"[backup]",
}, "\r\n")

// TestSaveLoadSaveIdentical checks the round-trip property across the style
// matrix: once text has been produced by Save, loading and saving it again
// with the same style must reproduce it byte for byte.
func TestSaveLoadSaveIdentical(t *testing.T) {
	tests := []struct {
		name  string
		style ini.Style
	}{
		{"default", ini.DefaultStyle()},
		{"lf hash colon single", ini.Style{Newline: "\n", Marker: '#', Quote: '\'', Delimiter: ':'}},
		{"cr formatted", ini.Style{Newline: "\r", Marker: ';', Quote: '"', Delimiter: '=', Formatted: true}},
		{"crlf formatted hash", ini.Style{Newline: "\r\n", Marker: '#', Quote: '"', Delimiter: '=', Formatted: true}},
		{"utf8 mark", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF8}},
		{"utf16le mark", ini.Style{Newline: "\r\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF16LE}},
		{"utf16be formatted", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', Formatted: true, BOM: ini.BOMUTF16BE}},
		{"utf32le mark", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF32LE}},
		{"utf32be mark", ini.Style{Newline: "\r\n", Marker: '#', Quote: '\'', Delimiter: ':', BOM: ini.BOMUTF32BE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ini.Load([]byte(sampleInput), ini.Options{})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			first, err := ini.Save(doc, tt.style)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			reloaded, err := ini.Load(first, ini.Options{})
			if err != nil {
				t.Fatalf("Load of saved output failed: %v", err)
			}

			second, err := ini.Save(reloaded, tt.style)
			if err != nil {
				t.Fatalf("second Save failed: %v", err)
			}

			if !bytes.Equal(first, second) {
				t.Errorf("round trip diverged:\nfirst:  %q\nsecond: %q", first, second)
			}
		})
	}
}

// TestSaveBOMPrefix checks that each mark comes out as its canonical byte
// prefix and that DetectBOM reads it back.
func TestSaveBOMPrefix(t *testing.T) {
	tests := []struct {
		bom    ini.BOM
		prefix []byte
	}{
		{ini.BOMUTF8, []byte{0xEF, 0xBB, 0xBF}},
		{ini.BOMUTF16LE, []byte{0xFF, 0xFE}},
		{ini.BOMUTF16BE, []byte{0xFE, 0xFF}},
		{ini.BOMUTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
		{ini.BOMUTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	}

	doc := ini.New(ini.Options{})
	doc.SetValue("server", "host", "example.com", false)

	for _, tt := range tests {
		t.Run(tt.bom.String(), func(t *testing.T) {
			style := ini.DefaultStyle()
			style.BOM = tt.bom

			data, err := ini.Save(doc, style)
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if !bytes.HasPrefix(data, tt.prefix) {
				t.Errorf("output prefix = % x, want % x", data[:6], tt.prefix)
			}

			got, err := ini.DetectBOM(data)
			if err != nil {
				t.Fatalf("DetectBOM failed: %v", err)
			}
			if got != tt.bom {
				t.Errorf("DetectBOM = %v, want %v", got, tt.bom)
			}
		})
	}
}

// TestSaveStringIsTextOnly checks that SaveString renders the same text that
// Save encodes, without mark bytes.
func TestSaveStringIsTextOnly(t *testing.T) {
	doc := ini.New(ini.Options{})
	doc.SetValue("s", "k", "v", false)

	style := ini.DefaultStyle()
	style.BOM = ini.BOMUTF16LE

	text, err := ini.SaveString(doc, style)
	if err != nil {
		t.Fatalf("SaveString failed: %v", err)
	}
	if want := "[s]\r\nk=v"; text != want {
		t.Errorf("SaveString = %q, want %q", text, want)
	}
}

func TestSaveRejectsBadStyle(t *testing.T) {
	doc := ini.New(ini.Options{})

	style := ini.DefaultStyle()
	style.Delimiter = ' '
	if _, err := ini.Save(doc, style); !errors.Is(err, ini.ErrInvalidConfigurationCharacter) {
		t.Errorf("Save error = %v, want ErrInvalidConfigurationCharacter", err)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	doc, err := ini.Load([]byte(sampleInput), ini.Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	style := ini.DefaultStyle()
	style.BOM = ini.BOMUTF16LE
	path := filepath.Join(t.TempDir(), "out.ini")

	if err := ini.SaveFile(doc, path, style); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	want, err := ini.Save(doc, style)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("file bytes differ from Save output")
	}

	reloaded, err := ini.LoadFile(path, ini.Options{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got := reloaded.GetValue("server", "host", ""); got != "example.com" {
		t.Errorf("reloaded host = %q, want example.com", got)
	}
}

func TestSaveFileBadPath(t *testing.T) {
	doc := ini.New(ini.Options{})
	err := ini.SaveFile(doc, filepath.Join(t.TempDir(), "no", "such", "dir", "x.ini"), ini.DefaultStyle())
	if err == nil {
		t.Fatalf("SaveFile into a missing directory succeeded")
	}

	var ierr *ini.Error
	if !errors.As(err, &ierr) || ierr.Kind != ini.ErrKindIO {
		t.Errorf("SaveFile error = %v, want ErrKindIO", err)
	}
}
