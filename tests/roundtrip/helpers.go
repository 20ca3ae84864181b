package roundtrip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/inikit/pkg/ini"
)

// mustLoad parses input and fails the test on any error.
func mustLoad(t *testing.T, input string) *ini.Document {
	t.Helper()

	doc, err := ini.Load([]byte(input), ini.Options{})
	require.NoError(t, err, "Load failed for input %q", input)
	return doc
}

// mustSave renders doc and fails the test on any error.
func mustSave(t *testing.T, doc *ini.Document, style ini.Style) []byte {
	t.Helper()

	data, err := ini.Save(doc, style)
	require.NoError(t, err, "Save failed")
	return data
}

// resave runs one Load+Save generation over Save output with the same style.
func resave(t *testing.T, data []byte, style ini.Style) []byte {
	t.Helper()

	doc, err := ini.Load(data, ini.Options{})
	require.NoError(t, err, "Load of generated output failed")
	return mustSave(t, doc, style)
}

// styleMatrix enumerates a representative slice of the style space: every
// newline, both markers, both quotes, both delimiters, compact and formatted,
// and each byte-order mark, combined so each axis varies against the others.
func styleMatrix() []struct {
	name  string
	style ini.Style
} {
	return []struct {
		name  string
		style ini.Style
	}{
		{"crlf semi dquote eq", ini.DefaultStyle()},
		{"lf hash squote colon", ini.Style{Newline: "\n", Marker: '#', Quote: '\'', Delimiter: ':'}},
		{"cr semi dquote eq", ini.Style{Newline: "\r", Marker: ';', Quote: '"', Delimiter: '='}},
		{"lf semi dquote eq formatted", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', Formatted: true}},
		{"crlf hash dquote colon formatted", ini.Style{Newline: "\r\n", Marker: '#', Quote: '"', Delimiter: ':', Formatted: true}},
		{"lf utf8 mark", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF8}},
		{"crlf utf16le mark", ini.Style{Newline: "\r\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF16LE}},
		{"lf utf16be mark formatted", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', Formatted: true, BOM: ini.BOMUTF16BE}},
		{"lf utf32le mark", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOMUTF32LE}},
		{"crlf utf32be mark", ini.Style{Newline: "\r\n", Marker: '#', Quote: '\'', Delimiter: ':', BOM: ini.BOMUTF32BE}},
	}
}

// allBOMs lists every supported mark, including none.
var allBOMs = []ini.BOM{
	ini.BOMNone,
	ini.BOMUTF8,
	ini.BOMUTF16LE,
	ini.BOMUTF16BE,
	ini.BOMUTF32LE,
	ini.BOMUTF32BE,
}
