package ini

import (
	"github.com/joshuapare/inikit/internal/emit"
	"github.com/joshuapare/inikit/internal/encoding"
	"github.com/joshuapare/inikit/internal/fsync"
	"github.com/joshuapare/inikit/pkg/types"
)

// Save renders the document to bytes in the given style. Style fields
// outside their allowed sets fail with ErrInvalidConfigurationCharacter
// before any text is produced. When style.BOM names an encoding, the mark
// bytes are emitted first and the text re-encoded to match; BOMNone writes
// plain UTF-8.
//
// Example:
//
//	style := ini.DefaultStyle()
//	style.Formatted = true
//	data, err := ini.Save(doc, style)
func Save(d *Document, style Style) ([]byte, error) {
	text, err := emit.Render(d, style)
	if err != nil {
		return nil, err
	}
	return encoding.Encode(text, style.BOM)
}

// SaveString renders the document to its textual form. Byte-order marks and
// wide encodings exist only at the byte level, so style.BOM is ignored here;
// use Save for encoded output.
func SaveString(d *Document, style Style) (string, error) {
	return emit.Render(d, style)
}

// SaveFile renders the document and writes it to path, creating or replacing
// the file and forcing the bytes to stable storage before returning. Write
// failures come back with ErrKindIO.
//
// Example:
//
//	err := ini.SaveFile(doc, "app.ini", ini.DefaultStyle())
func SaveFile(d *Document, path string, style Style) error {
	data, err := Save(d, style)
	if err != nil {
		return err
	}
	if err := fsync.WriteFile(path, data, 0o644); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "write " + path, Err: err}
	}
	return nil
}
