// Package escape implements the escape-sequence codec for INI text: named
// single-character escapes (\n, \t, \", \\, ...) and \xHHHH Unicode forms,
// including surrogate pairs for codepoints above the BMP.
package escape

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/joshuapare/inikit/pkg/types"
)

const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

// Decode resolves all escape sequences in s: named escapes, \xHHHH forms, and
// high/low surrogate pairs. Sequences that do not parse (an \x without four
// hex digits, an unpaired surrogate, an unknown \c) pass through as literal
// text. Decode never fails.
func Decode(s string) string {
	// Fast path: no backslash means no escapes (zero allocation).
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		switch s[i+1] {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case 'x':
			i += writeHexEscape(&b, s[i:])
		default:
			// Unknown escape: keep the backslash and the character.
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i += 2
		}
	}
	return b.String()
}

// DecodeHexRuns resolves only the \xHHHH forms (and surrogate pairs) in s,
// leaving named and unknown escapes untouched. The line segmenter applies it
// while scanning so that structural characters produced by \x escapes take
// part in quote/comment tracking, while \" and friends stay escaped until
// field extraction.
func DecodeHexRuns(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		if s[i+1] == 'x' {
			i += writeHexEscape(&b, s[i:])
			continue
		}
		// Any other escape pair is preserved verbatim. Consuming both bytes
		// matters: the second byte of \\ must not start a new sequence.
		b.WriteByte(c)
		b.WriteByte(s[i+1])
		i += 2
	}
	return b.String()
}

// writeHexEscape decodes the \xHHHH sequence at the start of s, combining a
// high surrogate with an immediately following low surrogate. It writes either
// the decoded rune or, when the sequence does not parse, the literal text.
// Returns the number of input bytes consumed.
func writeHexEscape(b *strings.Builder, s string) int {
	r, ok := hex4(s, 2)
	if !ok {
		// Literal \x: emit both bytes and let the rest rescan.
		b.WriteString(s[:2])
		return 2
	}
	switch {
	case r >= surrHighMin && r <= surrHighMax:
		// High surrogate: valid only as the first half of a pair.
		if len(s) >= 12 && s[6] == '\\' && s[7] == 'x' {
			if lo, ok2 := hex4(s, 8); ok2 && lo >= surrLowMin && lo <= surrLowMax {
				b.WriteRune(utf16.DecodeRune(r, lo))
				return 12
			}
		}
		b.WriteString(s[:6])
		return 6
	case r >= surrLowMin && r <= surrLowMax:
		// Unpaired low surrogate: literal text.
		b.WriteString(s[:6])
		return 6
	default:
		b.WriteRune(r)
		return 6
	}
}

// Encode converts s into its escaped representation: named escapes first,
// remaining control characters and all non-ASCII codepoints as \xHHHH, with
// codepoints above the BMP split into a surrogate pair. Malformed UTF-8 in s
// is a fatal encoding error.
func Encode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
			i++
		case c == '\\':
			b.WriteString(`\\`)
			i++
		case c == '\b':
			b.WriteString(`\b`)
			i++
		case c == '\f':
			b.WriteString(`\f`)
			i++
		case c == '\n':
			b.WriteString(`\n`)
			i++
		case c == '\r':
			b.WriteString(`\r`)
			i++
		case c == '\t':
			b.WriteString(`\t`)
			i++
		case c == '\v':
			b.WriteString(`\v`)
			i++
		case c < 0x20:
			appendHex4(&b, rune(c))
			i++
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				return "", types.ErrInvalidUtf8Sequence
			}
			if r > 0xFFFF {
				hi, lo := utf16.EncodeRune(r)
				appendHex4(&b, hi)
				appendHex4(&b, lo)
			} else {
				appendHex4(&b, r)
			}
			i += size
		}
	}
	return b.String(), nil
}

const hexDigits = "0123456789abcdef"

// appendHex4 writes r as \xHHHH using lowercase hex, zero padded to 4 digits.
func appendHex4(b *strings.Builder, r rune) {
	b.WriteString(`\x`)
	b.WriteByte(hexDigits[(r>>12)&0xF])
	b.WriteByte(hexDigits[(r>>8)&0xF])
	b.WriteByte(hexDigits[(r>>4)&0xF])
	b.WriteByte(hexDigits[r&0xF])
}

// hex4 parses exactly four hex digits of s starting at i.
func hex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var r rune
	for j := 0; j < 4; j++ {
		n := hexCharToNibble(s[i+j])
		if n == 0xFF {
			return 0, false
		}
		r = r<<4 | rune(n)
	}
	return r, true
}

// hexCharToNibble converts a hex character to its 4-bit value.
// Returns 0xFF for invalid characters.
func hexCharToNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}
