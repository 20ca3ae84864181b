package doc

import (
	"strconv"
	"strings"

	"github.com/joshuapare/inikit/pkg/types"
)

// Section is an ordered run of entries under one name. Each section carries
// the document's case policy so key lookups fold the same way section names
// do.
type Section struct {
	name          string
	inlineComment string
	entries       []*Entry
	caseSensitive bool

	// Synthetic key counters. They only count up, so removed comments and
	// blanks never free their numbers.
	commentCount int
	blankCount   int
}

func (s *Section) Name() string { return s.name }

// InlineComment returns the comment on the section's header line, empty when
// there is none.
func (s *Section) InlineComment() string { return s.inlineComment }

// Entries returns the section's entries in file order. The slice is owned by
// the section; callers must treat it as read-only.
func (s *Section) Entries() []*Entry { return s.entries }

func (s *Section) fold(v string) string {
	if s.caseSensitive {
		return v
	}
	return strings.ToLower(v)
}

// Entry returns the entry of any kind stored under key, or nil.
func (s *Section) Entry(key string) *Entry {
	if i := s.indexOf(key); i >= 0 {
		return s.entries[i]
	}
	return nil
}

// Has reports whether any entry, of any kind, is stored under key.
func (s *Section) Has(key string) bool { return s.indexOf(key) >= 0 }

func (s *Section) indexOf(key string) int {
	key = s.fold(key)
	for i, e := range s.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

// insertAt places e per pos. Above and Below anchor on relKey, resolving the
// anchor's index at call time, and fail when it is absent.
func (s *Section) insertAt(pos types.Position, relKey string, e *Entry) bool {
	switch pos {
	case types.PositionStart:
		s.entries = append([]*Entry{e}, s.entries...)
	case types.PositionAbove, types.PositionBelow:
		i := s.indexOf(relKey)
		if i < 0 {
			return false
		}
		if pos == types.PositionBelow {
			i++
		}
		s.entries = append(s.entries, nil)
		copy(s.entries[i+1:], s.entries[i:])
		s.entries[i] = e
	default:
		s.entries = append(s.entries, e)
	}
	return true
}

func (s *Section) removeAt(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// nextCommentKey mints the next synthetic comment key, e.g. "ik_c_3".
func (s *Section) nextCommentKey() string {
	s.commentCount++
	return s.fold(types.CommentKeyPrefix) + strconv.Itoa(s.commentCount)
}

// nextBlankKey mints the next synthetic blank-line key, e.g. "ik_el_1".
func (s *Section) nextBlankKey() string {
	s.blankCount++
	return s.fold(types.BlankKeyPrefix) + strconv.Itoa(s.blankCount)
}

// clear drops the entries, the header comment, and the synthetic counters.
func (s *Section) clear() {
	s.inlineComment = ""
	s.entries = nil
	s.commentCount = 0
	s.blankCount = 0
}
