package roundtrip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/inikit/pkg/ini"
)

// TestPartialDocumentOnParseError checks that a structural error surfaces the
// failing line while everything parsed before it stays queryable.
func TestPartialDocumentOnParseError(t *testing.T) {
	input := "[ok]\nk=1\n\n[broken\nafter=1"

	doc, err := ini.Load([]byte(input), ini.Options{})
	require.Error(t, err)
	require.NotNil(t, doc, "parse errors still return the partial document")

	assert.True(t, errors.Is(err, ini.ErrUnterminatedSection))
	var typed *ini.Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ini.ErrKindParse, typed.Kind)
	assert.Equal(t, "line 4", typed.Msg)

	assert.Equal(t, "1", doc.GetValue("ok", "k", ""))
	assert.Len(t, doc.BlankKeys("ok"), 1)
	assert.False(t, doc.HasSection("broken"))
	assert.False(t, doc.HasKey("", "after"), "nothing after the failure is applied")
}

// TestErrorTaxonomy maps each malformed input to its sentinel and category.
func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		sentinel error
		kind     ini.ErrKind
		wantDoc  bool
	}{
		{"empty buffer", "", ini.ErrEmptyFile, ini.ErrKindEncoding, false},
		{"short buffer", "a=1\n", ini.ErrFileTooSmall, ini.ErrKindEncoding, false},
		{"unterminated section", "[broken\n", ini.ErrUnterminatedSection, ini.ErrKindParse, true},
		{"marker inside tag", "[ab;cd]\n", ini.ErrCommentInsideSectionTag, ini.ErrKindParse, true},
		{"bracket in key", "we[ird=1\n", ini.ErrBracketInsideKeyOrValue, ini.ErrKindParse, true},
		{"bracket in value", "k=[one]\n", ini.ErrBracketInsideKeyOrValue, ini.ErrKindParse, true},
		{"missing delimiter", "justtext\n", ini.ErrMissingDelimiter, ini.ErrKindParse, true},
		{"unterminated quote", "q=\"abc\n", ini.ErrUnterminatedQuotedValue, ini.ErrKindParse, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ini.Load([]byte(tc.input), ini.Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.sentinel), "got %v", err)

			var typed *ini.Error
			require.True(t, errors.As(err, &typed))
			assert.Equal(t, tc.kind, typed.Kind)

			if tc.wantDoc {
				assert.NotNil(t, doc)
			} else {
				assert.Nil(t, doc)
			}
		})
	}
}

// TestStyleValidation exercises every rejected style field.
func TestStyleValidation(t *testing.T) {
	doc := mustLoad(t, "k=1\n[s]\nv=2")

	cases := []struct {
		name  string
		style ini.Style
	}{
		{"newline", ini.Style{Newline: "x", Marker: ';', Quote: '"', Delimiter: '='}},
		{"marker", ini.Style{Newline: "\n", Marker: '!', Quote: '"', Delimiter: '='}},
		{"quote", ini.Style{Newline: "\n", Marker: ';', Quote: '`', Delimiter: '='}},
		{"delimiter", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: ','}},
		{"mark", ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '=', BOM: ini.BOM(42)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ini.Save(doc, tc.style)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ini.ErrInvalidConfigurationCharacter), "got %v", err)

			var typed *ini.Error
			require.True(t, errors.As(err, &typed))
			assert.Equal(t, ini.ErrKindStyle, typed.Kind)
		})
	}

	zero := ini.Style{}
	_, err := ini.Save(doc, zero)
	require.Error(t, err, "the zero style is not usable; start from DefaultStyle")
}

// TestLookupMissesReturnDefaults confirms reads never produce errors: misses
// come back as the caller's default or a false flag.
func TestLookupMissesReturnDefaults(t *testing.T) {
	doc := mustLoad(t, "k=1\n[s]\nv=2")

	assert.Equal(t, "fallback", doc.GetValue("nope", "x", "fallback"))
	assert.Equal(t, "d", doc.GetValue("s", "missing", "d"))
	assert.Equal(t, "d", doc.GetArrayValue("s", "v", "0", "d"),
		"array lookup on a plain value misses")
	assert.False(t, doc.HasSection("nope"))
	assert.False(t, doc.HasKey("s", "missing"))
	assert.Equal(t, 0, doc.NumKeys("nope"))
	assert.Empty(t, doc.KeyNames("nope"))

	_, ok := doc.InlineComment("s", "missing")
	assert.False(t, ok)
	_, ok = doc.SectionInlineComment("nope")
	assert.False(t, ok)

	assert.False(t, doc.RemoveKey("s", "missing"))
	assert.False(t, doc.RenameKey("s", "missing", "x"))
	assert.False(t, doc.RenameSection("nope", "x"))
	assert.False(t, doc.RemoveSection("nope"))
	assert.False(t, doc.SetInlineComment("s", "missing", "c"))
	assert.False(t, doc.ClearSection("nope"))
}
