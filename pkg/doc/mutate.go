package doc

import (
	"strconv"

	"github.com/joshuapare/inikit/pkg/types"
)

// SetValue stores value under section/key, creating the section and the
// entry as needed. An existing entry of any kind gets its value and quoted
// flag replaced; its inline comment stays.
func (d *Document) SetValue(section, key, value string, quoted bool) bool {
	s := d.ensure(section)
	if e := s.Entry(key); e != nil {
		e.value = value
		e.quoted = quoted
		return true
	}
	s.entries = append(s.entries, &Entry{
		kind:   types.KindValue,
		key:    s.fold(key),
		value:  value,
		quoted: quoted,
	})
	return true
}

// SetArrayValue stores one array element under section/key. An empty index
// appends with the next numeric sub-key; a non-empty index updates the
// matching element or appends an indexed one. It fails only when the key
// already holds a non-array entry.
func (d *Document) SetArrayValue(section, key, index, value string, quoted bool) bool {
	s := d.ensure(section)
	e := s.Entry(key)
	if e == nil {
		e = &Entry{kind: types.KindArray, key: s.fold(key)}
		s.entries = append(s.entries, e)
	} else if e.kind != types.KindArray {
		return false
	}

	itemKey := s.fold(index)
	indexed := itemKey != ""
	if !indexed {
		itemKey = strconv.Itoa(e.nextAutoIndex())
	}

	if it := e.item(itemKey); it != nil {
		it.value = value
		it.quoted = quoted
		return true
	}
	e.items = append(e.items, &ArrayItem{
		key:     itemKey,
		indexed: indexed,
		value:   value,
		quoted:  quoted,
	})
	return true
}

// AddSection appends an empty section. False when the name is already taken.
func (d *Document) AddSection(name string) bool {
	if d.Section(name) != nil {
		return false
	}
	d.sections = append(d.sections, &Section{name: d.resolve(name), caseSensitive: d.caseSensitive})
	return true
}

// RemoveSection deletes a section with its entries. The global section
// cannot be removed, only cleared.
func (d *Document) RemoveSection(name string) bool {
	resolved := d.resolve(name)
	if resolved == d.globalName() {
		return false
	}
	for i, s := range d.sections {
		if s.name == resolved {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveKey deletes the entry of any kind stored under section/key.
func (d *Document) RemoveKey(section, key string) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	i := s.indexOf(key)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

// RenameKey renames an entry in place, keeping its position and payload.
// False when old is missing or new is already taken.
func (d *Document) RenameKey(section, oldKey, newKey string) bool {
	s := d.Section(section)
	if s == nil || s.Has(newKey) {
		return false
	}
	e := s.Entry(oldKey)
	if e == nil {
		return false
	}
	e.key = s.fold(newKey)
	return true
}

// RenameSection renames a section in place. The global section keeps its
// reserved name, and renaming onto an existing name is refused.
func (d *Document) RenameSection(oldName, newName string) bool {
	resolved := d.resolve(oldName)
	if resolved == d.globalName() || d.Section(newName) != nil {
		return false
	}
	for _, s := range d.sections {
		if s.name == resolved {
			s.name = d.fold(newName)
			return true
		}
	}
	return false
}

// SetComment inserts a full-line comment under a fresh synthetic key. pos
// places it at the section's start or end, or above/below the entry named by
// relKey. False when the section or the anchor is missing.
func (d *Document) SetComment(section, text string, pos types.Position, relKey string) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	key := s.nextCommentKey()
	if s.Has(key) {
		return false
	}
	return s.insertAt(pos, relKey, &Entry{kind: types.KindComment, key: key, value: text})
}

// SetBlank inserts a blank line under a fresh synthetic key, placed like
// SetComment.
func (d *Document) SetBlank(section string, pos types.Position, relKey string) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	key := s.nextBlankKey()
	if s.Has(key) {
		return false
	}
	return s.insertAt(pos, relKey, &Entry{kind: types.KindBlank, key: key})
}

// RemoveComment deletes the comment entry stored under its synthetic key.
func (d *Document) RemoveComment(section, key string) bool {
	return d.removeKind(section, key, types.KindComment)
}

// RemoveBlank deletes the blank-line entry stored under its synthetic key.
func (d *Document) RemoveBlank(section, key string) bool {
	return d.removeKind(section, key, types.KindBlank)
}

func (d *Document) removeKind(section, key string, kind types.EntryKind) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	key = s.fold(key)
	for i, e := range s.entries {
		if e.key == key && e.kind == kind {
			s.removeAt(i)
			return true
		}
	}
	return false
}

// SetInlineComment replaces the inline comment on an existing entry. Empty
// text clears it. False when the entry is missing.
func (d *Document) SetInlineComment(section, key, text string) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	e := s.Entry(key)
	if e == nil {
		return false
	}
	e.inlineComment = text
	return true
}

// SetSectionInlineComment replaces the comment on the section's header line.
// Empty text clears it.
func (d *Document) SetSectionInlineComment(section, text string) bool {
	s := d.Section(section)
	if s == nil {
		return false
	}
	s.inlineComment = text
	return true
}

// ClearSection drops a section's entries, header comment, and synthetic
// counters; the section itself stays.
func (d *Document) ClearSection(name string) bool {
	s := d.Section(name)
	if s == nil {
		return false
	}
	s.clear()
	return true
}

// Clear resets the document to a single empty global section.
func (d *Document) Clear() {
	d.sections = []*Section{{name: d.globalName(), caseSensitive: d.caseSensitive}}
}
