// Package parse classifies segmented lines and produces the flat operation
// stream a document is rebuilt from.
//
// The scanner works on segmenter output: hex escape runs are already literal
// characters, named escapes are still two-byte sequences. Structural
// characters (quotes, markers, delimiters) only count when un-escaped, so
// named escapes survive scanning and are decoded once a fragment's boundaries
// are known.
package parse

import (
	"fmt"
	"strings"

	"github.com/joshuapare/inikit/internal/escape"
	"github.com/joshuapare/inikit/pkg/types"
)

// Lines classifies each segmented line and returns the resulting operation
// stream. A structural error stops the scan; the ops built so far are still
// returned so the document keeps everything up to the failing line.
func Lines(lines []string) ([]types.ParseOp, error) {
	ops := make([]types.ParseOp, 0, len(lines))
	section := types.GlobalSection

	for n, line := range lines {
		stripped := stripLine(line)

		switch {
		case stripped == "\n":
			ops = append(ops, types.OpBlank{Section: section})

		case stripped[0] == ';' || stripped[0] == '#':
			ops = append(ops, types.OpComment{Section: section, Text: commentText(stripped)})

		case stripped[0] == '[':
			op, err := scanSectionTag(stripped)
			if err != nil {
				return ops, atLine(n+1, err)
			}
			section = op.Name
			ops = append(ops, op)

		default:
			op, err := scanKeyValue(stripped, section)
			if err != nil {
				return ops, atLine(n+1, err)
			}
			ops = append(ops, op)
		}
	}

	return ops, nil
}

func atLine(n int, err error) error {
	return &types.Error{Kind: types.ErrKindParse, Msg: fmt.Sprintf("line %d", n), Err: err}
}

// stripLine removes whitespace that sits outside quotes and outside a
// trailing comment. The comment latch holds to end of line; quote state
// toggles on each un-escaped quote character seen outside a comment. The
// result always ends in exactly one newline.
func stripLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	inComment := false
	inQuote := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		if !inComment {
			if (c == ';' || c == '#') && !escapedAt(line, i) {
				inComment = true
			} else if (c == '"' || c == '\'') && !escapedAt(line, i) {
				inQuote = !inQuote
			}
		}
		if inComment || inQuote || !isSpace(c) {
			b.WriteByte(c)
		}
	}

	s := b.String()
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// escapedAt reports whether the byte at i sits behind an odd run of
// backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// commentText drops the marker, at most one following space, and the line
// terminator, then decodes the remainder.
func commentText(stripped string) string {
	text := stripped[1 : len(stripped)-1]
	if len(text) > 0 && text[0] == ' ' {
		text = text[1:]
	}
	return escape.Decode(text)
}

// scanSectionTag reads a "[name]" header. Spaces inside the tag are skipped,
// a second opening bracket is an error, and characters after the closing
// bracket join the name unless a marker starts the section's inline comment.
func scanSectionTag(stripped string) (types.OpSection, error) {
	var name strings.Builder
	closed := false

	for i := 0; i < len(stripped); i++ {
		c := stripped[i]
		if c == '\n' {
			break
		}

		switch c {
		case '[':
			if i > 0 {
				return types.OpSection{}, types.ErrUnterminatedSection
			}
		case ']':
			closed = true
		case ' ':
			// skipped anywhere inside the tag
		case ';', '#':
			if !closed {
				return types.OpSection{}, types.ErrCommentInsideSectionTag
			}
			return types.OpSection{
				Name:          escape.Decode(name.String()),
				InlineComment: escape.Decode(trailingComment(stripped, i)),
			}, nil
		default:
			name.WriteByte(c)
		}
	}

	if !closed {
		return types.OpSection{}, types.ErrUnterminatedSection
	}
	return types.OpSection{Name: escape.Decode(name.String())}, nil
}

// trailingComment extracts the text after the marker at i, minus the line
// terminator and at most one leading space. Not yet decoded.
func trailingComment(stripped string, i int) string {
	text := stripped[i+1 : len(stripped)-1]
	if len(text) > 0 && text[0] == ' ' {
		text = text[1:]
	}
	return text
}

// scanKeyValue reads a data line: key text up to the first un-escaped
// delimiter, an optional array suffix on the key, then the value region.
func scanKeyValue(stripped, section string) (types.ParseOp, error) {
	delim := delimiterIndex(stripped)
	if delim < 0 {
		return nil, types.ErrMissingDelimiter
	}

	key, index, isArray, err := scanKey(stripped[:delim])
	if err != nil {
		return nil, err
	}

	value, quoted, comment, err := scanValue(stripped[delim+1:])
	if err != nil {
		return nil, err
	}

	if isArray {
		return types.OpArrayItem{
			Section:       section,
			Key:           key,
			Index:         index,
			Value:         value,
			Quoted:        quoted,
			InlineComment: comment,
		}, nil
	}
	return types.OpValue{
		Section:       section,
		Key:           key,
		Value:         value,
		Quoted:        quoted,
		InlineComment: comment,
	}, nil
}

// delimiterIndex returns the position of the first un-escaped '=' or ':',
// whichever comes first, or -1 when the line has neither.
func delimiterIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if (s[i] == '=' || s[i] == ':') && !escapedAt(s, i) {
			return i
		}
	}
	return -1
}

// scanKey reads the key region. A "[]" suffix marks an auto-indexed array
// element, "[idx]" an explicit one; for arrays the key is the text before
// the first bracket. Brackets anywhere in a plain key are an error, and a
// marker in the key region means the data line had no real delimiter.
func scanKey(fullKey string) (key, index string, isArray bool, err error) {
	if strings.HasSuffix(fullKey, "[]") {
		isArray = true
	} else if strings.HasSuffix(fullKey, "]") && strings.Contains(fullKey, "[") {
		isArray = true
		open := strings.IndexByte(fullKey, '[')
		index = fullKey[open+1 : len(fullKey)-1]
	}

	var b strings.Builder
scan:
	for i := 0; i < len(fullKey); i++ {
		c := fullKey[i]
		switch c {
		case ' ':
			// skipped
		case '[', ']':
			if !isArray {
				return "", "", false, types.ErrBracketInsideKeyOrValue
			}
			break scan
		case ';', '#':
			return "", "", false, types.ErrMissingDelimiter
		default:
			b.WriteByte(c)
		}
	}

	if b.Len() == 0 {
		return "", "", false, types.ErrMissingDelimiter
	}
	return escape.Decode(b.String()), escape.Decode(index), isArray, nil
}

// scanValue reads the value region after the delimiter. Spaces outside a
// quoted run are dropped, a quoted run is closed only by its own un-escaped
// quote character, brackets outside quotes are an error, and an un-escaped
// marker outside quotes starts the inline comment. A newline with the quote
// still open is an unterminated value.
func scanValue(rest string) (value string, quoted bool, comment string, err error) {
	var b strings.Builder
	inString := false
	var quoteChar byte

	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '\n' {
			if inString {
				return "", false, "", types.ErrUnterminatedQuotedValue
			}
			break
		}

		switch {
		case (c == '"' || c == '\'') && !escapedAt(rest, i):
			switch {
			case !inString:
				inString = true
				quoteChar = c
			case c == quoteChar:
				inString = false
				quoted = true
			default:
				b.WriteByte(c)
			}

		case c == ' ':
			if inString {
				b.WriteByte(c)
			}

		case c == '[' || c == ']':
			if !inString {
				return "", false, "", types.ErrBracketInsideKeyOrValue
			}
			b.WriteByte(c)

		case (c == ';' || c == '#') && !inString && !escapedAt(rest, i):
			return escape.Decode(b.String()), quoted, escape.Decode(trailingComment(rest, i)), nil

		default:
			b.WriteByte(c)
		}
	}

	return escape.Decode(b.String()), quoted, "", nil
}
