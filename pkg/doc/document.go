// Package doc holds the mutable in-memory model of an INI file: ordered
// sections of ordered entries, with enough metadata (quoting, inline
// comments, array layout, synthetic comment and blank keys) to regenerate
// the file byte for byte.
//
// A Document is not safe for concurrent use; callers serialize access.
package doc

import (
	"strings"

	"github.com/joshuapare/inikit/pkg/types"
)

// Document is an ordered collection of sections. The reserved global section
// (types.GlobalSection) is created on construction, is always section zero,
// and survives every mutation including Clear. An empty section name
// anywhere in the API addresses the global section.
//
// Lookup is a linear scan. INI documents stay small enough that an index
// would cost more than it saves.
type Document struct {
	caseSensitive bool
	sections      []*Section
}

// New returns a document holding only the empty global section. When
// caseSensitive is false, section names, keys, and array sub-keys fold to
// lower case on every operation.
func New(caseSensitive bool) *Document {
	d := &Document{caseSensitive: caseSensitive}
	d.Clear()
	return d
}

func (d *Document) CaseSensitive() bool { return d.caseSensitive }

func (d *Document) fold(v string) string {
	if d.caseSensitive {
		return v
	}
	return strings.ToLower(v)
}

// resolve maps the empty section name onto the reserved global section and
// folds per policy.
func (d *Document) resolve(section string) string {
	if section == "" {
		section = types.GlobalSection
	}
	return d.fold(section)
}

func (d *Document) globalName() string { return d.fold(types.GlobalSection) }

// Sections returns all sections, global first, in insertion order. The slice
// is owned by the document; callers must treat it as read-only.
func (d *Document) Sections() []*Section { return d.sections }

// Section returns the named section, or nil. The empty name addresses the
// global section.
func (d *Document) Section(name string) *Section {
	resolved := d.resolve(name)
	for _, s := range d.sections {
		if s.name == resolved {
			return s
		}
	}
	return nil
}

// ensure returns the named section, appending an empty one when absent.
func (d *Document) ensure(name string) *Section {
	if s := d.Section(name); s != nil {
		return s
	}
	s := &Section{name: d.resolve(name), caseSensitive: d.caseSensitive}
	d.sections = append(d.sections, s)
	return s
}

// GetValue returns the value stored under section/key, or def when either is
// missing. Misses are not errors; def stands in.
func (d *Document) GetValue(section, key, def string) string {
	s := d.Section(section)
	if s == nil {
		return def
	}
	e := s.Entry(key)
	if e == nil {
		return def
	}
	return e.value
}

// GetArrayValue returns the value of the array element stored under the
// given sub-key, or def when the section, key, or element is missing.
func (d *Document) GetArrayValue(section, key, index, def string) string {
	s := d.Section(section)
	if s == nil {
		return def
	}
	e := s.Entry(key)
	if e == nil || e.kind != types.KindArray {
		return def
	}
	it := e.item(s.fold(index))
	if it == nil {
		return def
	}
	return it.value
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool { return d.Section(name) != nil }

// HasKey reports whether any entry, of any kind, lives under section/key.
func (d *Document) HasKey(section, key string) bool {
	s := d.Section(section)
	return s != nil && s.Has(key)
}

// NumSections counts all sections including the global one.
func (d *Document) NumSections() int { return len(d.sections) }

// NumKeys counts the addressable data entries (values and arrays) in a
// section. Comments and blank lines are not counted.
func (d *Document) NumKeys(section string) int {
	s := d.Section(section)
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range s.entries {
		if e.kind == types.KindValue || e.kind == types.KindArray {
			n++
		}
	}
	return n
}

// SectionNames lists all section names in insertion order, global first.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.sections))
	for i, s := range d.sections {
		names[i] = s.name
	}
	return names
}

// KeyNames lists the keys of value and array entries in file order. Synthetic
// comment and blank keys are listed by CommentKeys and BlankKeys instead.
func (d *Document) KeyNames(section string) []string {
	s := d.Section(section)
	if s == nil {
		return nil
	}
	var names []string
	for _, e := range s.entries {
		if e.kind == types.KindValue || e.kind == types.KindArray {
			names = append(names, e.key)
		}
	}
	return names
}

// CommentKeys lists the synthetic keys of full-line comments in file order.
func (d *Document) CommentKeys(section string) []string {
	return d.kindKeys(section, types.KindComment)
}

// BlankKeys lists the synthetic keys of blank lines in file order.
func (d *Document) BlankKeys(section string) []string {
	return d.kindKeys(section, types.KindBlank)
}

func (d *Document) kindKeys(section string, kind types.EntryKind) []string {
	s := d.Section(section)
	if s == nil {
		return nil
	}
	var names []string
	for _, e := range s.entries {
		if e.kind == kind {
			names = append(names, e.key)
		}
	}
	return names
}

// InlineComment returns the inline comment of the entry under section/key
// and whether that entry exists. An entry with no comment yields ("", true).
func (d *Document) InlineComment(section, key string) (string, bool) {
	s := d.Section(section)
	if s == nil {
		return "", false
	}
	e := s.Entry(key)
	if e == nil {
		return "", false
	}
	return e.inlineComment, true
}

// SectionInlineComment returns the comment on the section's header line and
// whether the section exists.
func (d *Document) SectionInlineComment(section string) (string, bool) {
	s := d.Section(section)
	if s == nil {
		return "", false
	}
	return s.inlineComment, true
}
