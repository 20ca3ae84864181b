// Package segment splits decoded INI text into logical lines and resolves
// \xHHHH escape runs in each line's content.
package segment

import (
	"strings"

	"github.com/joshuapare/inikit/internal/escape"
)

// Lines splits text on LF, CR, or CRLF and returns the logical lines, each
// terminated with exactly one LF regardless of the source newline style. A
// final line without a terminator still yields a terminated line.
//
// Hex escape runs are resolved per line AFTER splitting, so an \x000a in the
// source embeds a literal newline in the line content instead of starting a
// new line. Named escapes pass through untouched; the parser needs them
// intact to tell escaped quotes and markers from structural ones.
func Lines(text string) []string {
	if len(text) == 0 {
		return nil
	}
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			lines = append(lines, terminated(text[start:i]))
			i++
			start = i
		case '\r':
			lines = append(lines, terminated(text[start:i]))
			if i+1 < len(text) && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			start = i
		default:
			i++
		}
	}
	if start < len(text) {
		lines = append(lines, terminated(text[start:]))
	}
	return lines
}

func terminated(content string) string {
	return escape.DecodeHexRuns(content) + "\n"
}
