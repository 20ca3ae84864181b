package doc

import (
	"strconv"

	"github.com/joshuapare/inikit/pkg/types"
)

// Entry is one line-equivalent unit inside a section: a key/value pair, an
// array key with its elements, a full-line comment, or a blank line.
// Comments carry their text in the value field and, like blanks, are
// addressed by synthetic keys.
type Entry struct {
	kind          types.EntryKind
	key           string
	value         string
	quoted        bool
	inlineComment string
	items         []*ArrayItem
}

func (e *Entry) Kind() types.EntryKind { return e.kind }
func (e *Entry) Key() string           { return e.key }

// Value returns the entry's scalar payload. For comments this is the comment
// text; for blanks and array parents it is normally empty.
func (e *Entry) Value() string { return e.value }

func (e *Entry) Quoted() bool          { return e.quoted }
func (e *Entry) InlineComment() string { return e.inlineComment }

// Items returns the elements of an array entry in file order, nil for other
// kinds. The slice is owned by the entry.
func (e *Entry) Items() []*ArrayItem { return e.items }

// item returns the element stored under the given sub-key, or nil.
func (e *Entry) item(key string) *ArrayItem {
	for _, it := range e.items {
		if it.key == key {
			return it
		}
	}
	return nil
}

// nextAutoIndex returns one past the highest numeric sub-key. Textual
// sub-keys from explicit indices are ignored.
func (e *Entry) nextAutoIndex() int {
	next := 0
	for _, it := range e.items {
		if n, err := strconv.Atoi(it.key); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return next
}

// ArrayItem is one element of an array entry. Indexed elements render with
// their sub-key between the brackets; auto elements render as "[]".
type ArrayItem struct {
	key           string
	indexed       bool
	value         string
	quoted        bool
	inlineComment string
}

func (a *ArrayItem) Key() string           { return a.key }
func (a *ArrayItem) Indexed() bool         { return a.indexed }
func (a *ArrayItem) Value() string         { return a.value }
func (a *ArrayItem) Quoted() bool          { return a.quoted }
func (a *ArrayItem) InlineComment() string { return a.inlineComment }
