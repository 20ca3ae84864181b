// Package emit renders a document back into INI text.
//
// Newlines are prefixes: every physical line after the first is preceded by
// the style's newline string, so compact output never ends with a dangling
// terminator. Formatted mode adds spaces around delimiters and markers, a
// blank line after each section's last entry, and one after the header of an
// empty section.
package emit

import (
	"fmt"
	"strings"

	"github.com/joshuapare/inikit/internal/escape"
	"github.com/joshuapare/inikit/pkg/doc"
	"github.com/joshuapare/inikit/pkg/types"
)

// Render serializes the whole document in the given style. Every name, key,
// value, and comment passes through the escape codec, so control characters
// and non-ASCII text come out as \xHHHH sequences that parse back to the
// same document.
func Render(d *doc.Document, style types.Style) (string, error) {
	if err := validate(style); err != nil {
		return "", err
	}

	w := writer{newline: style.Newline}
	globalName := types.GlobalSection
	if !d.CaseSensitive() {
		globalName = strings.ToLower(globalName)
	}

	for _, s := range d.Sections() {
		if s.Name() != globalName {
			if err := writeHeader(&w, s, style); err != nil {
				return "", err
			}
		}
		for _, e := range s.Entries() {
			if err := writeEntry(&w, e, style); err != nil {
				return "", err
			}
		}
		if style.Formatted && len(s.Entries()) > 0 &&
			s.Entries()[len(s.Entries())-1].Kind() != types.KindBlank {
			w.start()
		}
	}

	return w.b.String(), nil
}

func validate(style types.Style) error {
	bad := func(what, got string) error {
		return &types.Error{
			Kind: types.ErrKindStyle,
			Msg:  fmt.Sprintf("%s %q", what, got),
			Err:  types.ErrInvalidConfigurationCharacter,
		}
	}
	switch style.Newline {
	case "\n", "\r", "\r\n":
	default:
		return bad("newline", style.Newline)
	}
	switch style.Marker {
	case ';', '#':
	default:
		return bad("comment marker", string(style.Marker))
	}
	switch style.Quote {
	case '"', '\'':
	default:
		return bad("quote character", string(style.Quote))
	}
	switch style.Delimiter {
	case '=', ':':
	default:
		return bad("delimiter", string(style.Delimiter))
	}
	return nil
}

type writer struct {
	b        strings.Builder
	newline  string
	wroteAny bool
}

// start opens a new physical line.
func (w *writer) start() {
	if w.wroteAny {
		w.b.WriteString(w.newline)
	}
	w.wroteAny = true
}

func writeHeader(w *writer, s *doc.Section, style types.Style) error {
	name, err := escape.Encode(s.Name())
	if err != nil {
		return err
	}
	w.start()
	w.b.WriteByte('[')
	w.b.WriteString(name)
	w.b.WriteByte(']')
	if err := writeInlineComment(w, s.InlineComment(), style); err != nil {
		return err
	}
	if style.Formatted && len(s.Entries()) == 0 {
		w.start()
	}
	return nil
}

func writeEntry(w *writer, e *doc.Entry, style types.Style) error {
	switch e.Kind() {
	case types.KindBlank:
		w.start()
		return nil

	case types.KindComment:
		text, err := escape.Encode(e.Value())
		if err != nil {
			return err
		}
		w.start()
		w.b.WriteByte(style.Marker)
		w.b.WriteByte(' ')
		w.b.WriteString(text)
		return nil

	case types.KindArray:
		key, err := escape.Encode(e.Key())
		if err != nil {
			return err
		}
		for _, it := range e.Items() {
			w.start()
			w.b.WriteString(key)
			w.b.WriteByte('[')
			if it.Indexed() {
				idx, err := escape.Encode(it.Key())
				if err != nil {
					return err
				}
				w.b.WriteString(idx)
			}
			w.b.WriteByte(']')
			if err := writeValue(w, it.Value(), it.Quoted(), style); err != nil {
				return err
			}
			if err := writeInlineComment(w, it.InlineComment(), style); err != nil {
				return err
			}
		}
		return nil

	default: // KindValue
		key, err := escape.Encode(e.Key())
		if err != nil {
			return err
		}
		w.start()
		w.b.WriteString(key)
		if err := writeValue(w, e.Value(), e.Quoted(), style); err != nil {
			return err
		}
		return writeInlineComment(w, e.InlineComment(), style)
	}
}

// writeValue emits the delimiter and the (possibly quoted) escaped value.
func writeValue(w *writer, value string, quoted bool, style types.Style) error {
	escaped, err := escape.Encode(value)
	if err != nil {
		return err
	}
	if style.Formatted {
		w.b.WriteByte(' ')
	}
	w.b.WriteByte(style.Delimiter)
	if style.Formatted {
		w.b.WriteByte(' ')
	}
	if quoted {
		w.b.WriteByte(style.Quote)
		w.b.WriteString(escaped)
		w.b.WriteByte(style.Quote)
	} else {
		w.b.WriteString(escaped)
	}
	return nil
}

// writeInlineComment emits nothing for an empty comment. The marker is always
// followed by one space; formatted mode also puts one before it.
func writeInlineComment(w *writer, text string, style types.Style) error {
	if text == "" {
		return nil
	}
	escaped, err := escape.Encode(text)
	if err != nil {
		return err
	}
	if style.Formatted {
		w.b.WriteByte(' ')
	}
	w.b.WriteByte(style.Marker)
	w.b.WriteByte(' ')
	w.b.WriteString(escaped)
	return nil
}
