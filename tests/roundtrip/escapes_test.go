package roundtrip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/inikit/pkg/ini"
)

// TestEscapedTextSurvivesSave sets values across the interesting rune ranges,
// saves, checks the serialized form stays ASCII, and reloads to the same text.
func TestEscapedTextSurvivesSave(t *testing.T) {
	style := ini.Style{Newline: "\n", Marker: ';', Quote: '"', Delimiter: '='}

	values := map[string]string{
		"ascii":   "plainA",
		"latin":   "caf\u00e9",
		"bmp":     "price:\u20ac42",
		"astral":  "mood=\U0001F600",
		"control": "a\tb\nc",
	}

	doc := ini.New(ini.Options{})
	for key, val := range values {
		require.True(t, doc.SetValue("text", key, val, false))
	}

	data, err := ini.Save(doc, style)
	require.NoError(t, err)
	text := string(data)

	for _, b := range data {
		assert.Less(t, b, byte(0x80), "serialized output must be pure ASCII")
	}
	assert.Contains(t, text, `caf\x00e9`)
	assert.Contains(t, text, `\x20ac`)
	assert.Contains(t, text, `\xd83d\xde00`, "astral runes serialize as a surrogate pair")
	assert.Contains(t, text, `a\tb\nc`)

	reloaded, err := ini.Load(data, ini.Options{})
	require.NoError(t, err)
	for key, val := range values {
		assert.Equal(t, val, reloaded.GetValue("text", key, ""), "key %s", key)
	}
}

// TestEscapeFormsAcceptedOnInput parses hand-written escape sequences in
// values, keys, section names, and comments.
func TestEscapeFormsAcceptedOnInput(t *testing.T) {
	input := "[caf\\x00e9]\n" +
		"upper=\\x0041\n" +
		"tabbed=x\\ty\n" +
		"snowman=\\x2603\n" +
		"grin=\\xd83d\\xde00\n" +
		"k\\x005a=zed\n" +
		"; note \\x2603"

	doc := mustLoad(t, input)

	section := "caf\u00e9"
	assert.True(t, doc.HasSection(section))
	assert.Equal(t, "A", doc.GetValue(section, "upper", ""))
	assert.Equal(t, "x\ty", doc.GetValue(section, "tabbed", ""))
	assert.Equal(t, "\u2603", doc.GetValue(section, "snowman", ""))
	assert.Equal(t, "\U0001F600", doc.GetValue(section, "grin", ""))
	assert.Equal(t, "zed", doc.GetValue(section, "kZ", ""))
}

// TestQuotedValuesKeepSpaces contrasts quoted and unquoted whitespace
// handling through a full generation.
func TestQuotedValuesKeepSpaces(t *testing.T) {
	doc := ini.New(ini.Options{})
	require.True(t, doc.SetValue("s", "quoted", "two words", true))
	require.True(t, doc.SetValue("s", "bare", "two words", false))

	data, err := ini.Save(doc, ini.DefaultStyle())
	require.NoError(t, err)

	reloaded, err := ini.Load(data, ini.Options{})
	require.NoError(t, err)
	assert.Equal(t, "two words", reloaded.GetValue("s", "quoted", ""))
	assert.Equal(t, "twowords", reloaded.GetValue("s", "bare", ""),
		"unquoted spaces do not survive a parse")
}

// TestSaveRejectsInvalidUtf8 puts a raw invalid byte in a value via the
// mutator API; serialization must refuse it.
func TestSaveRejectsInvalidUtf8(t *testing.T) {
	doc := ini.New(ini.Options{})
	require.True(t, doc.SetValue("s", "k", "bad\xffbyte", false))

	_, err := ini.Save(doc, ini.DefaultStyle())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ini.ErrInvalidUtf8Sequence))

	var typed *ini.Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ini.ErrKindEncoding, typed.Kind)
}
