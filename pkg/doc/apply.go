package doc

import (
	"strconv"

	"github.com/joshuapare/inikit/pkg/types"
)

// Apply replays a parse op stream onto the document in order. Section ops
// create their section eagerly, so a header with no entries still survives a
// round trip. Duplicate keys update the existing entry's value and keep its
// quoted flag and inline comment. A partial stream from a failed parse
// applies cleanly; everything before the failing line is kept.
func (d *Document) Apply(ops []types.ParseOp) {
	for _, op := range ops {
		switch op := op.(type) {
		case types.OpSection:
			s := d.ensure(op.Name)
			if op.InlineComment != "" {
				s.inlineComment = op.InlineComment
			}

		case types.OpValue:
			d.applyValue(op)

		case types.OpArrayItem:
			d.applyArrayItem(op)

		case types.OpComment:
			s := d.ensure(op.Section)
			key := s.nextCommentKey()
			if !s.Has(key) {
				s.entries = append(s.entries, &Entry{kind: types.KindComment, key: key, value: op.Text})
			}

		case types.OpBlank:
			s := d.ensure(op.Section)
			key := s.nextBlankKey()
			if !s.Has(key) {
				s.entries = append(s.entries, &Entry{kind: types.KindBlank, key: key})
			}
		}
	}
}

func (d *Document) applyValue(op types.OpValue) {
	s := d.ensure(op.Section)
	if e := s.Entry(op.Key); e != nil {
		e.value = op.Value
		return
	}
	s.entries = append(s.entries, &Entry{
		kind:          types.KindValue,
		key:           s.fold(op.Key),
		value:         op.Value,
		quoted:        op.Quoted,
		inlineComment: op.InlineComment,
	})
}

func (d *Document) applyArrayItem(op types.OpArrayItem) {
	s := d.ensure(op.Section)
	e := s.Entry(op.Key)
	if e == nil {
		e = &Entry{kind: types.KindArray, key: s.fold(op.Key)}
		s.entries = append(s.entries, e)
	} else if e.kind != types.KindArray {
		// A non-array entry owns this key; the line is dropped.
		return
	}

	itemKey := s.fold(op.Index)
	indexed := itemKey != ""
	if !indexed {
		itemKey = strconv.Itoa(e.nextAutoIndex())
	}

	if it := e.item(itemKey); it != nil {
		it.value = op.Value
		return
	}
	e.items = append(e.items, &ArrayItem{
		key:           itemKey,
		indexed:       indexed,
		value:         op.Value,
		quoted:        op.Quoted,
		inlineComment: op.InlineComment,
	})
}
