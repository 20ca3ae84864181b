package ini

import (
	"github.com/joshuapare/inikit/internal/encoding"
	"github.com/joshuapare/inikit/internal/mmfile"
	"github.com/joshuapare/inikit/internal/parse"
	"github.com/joshuapare/inikit/internal/segment"
	"github.com/joshuapare/inikit/pkg/doc"
	"github.com/joshuapare/inikit/pkg/types"
)

// New returns an empty document holding only the reserved global section.
//
// Example:
//
//	doc := ini.New(ini.Options{CaseSensitive: true})
//	doc.SetValue("server", "host", "example.com", false)
func New(opts Options) *Document {
	return doc.New(opts.CaseSensitive)
}

// DetectBOM reports the encoding of a buffer: the one its byte-order mark
// announces, or the one guessed from the zero-byte layout of the first four
// bytes when no mark is present. The markless guess is best-effort; content
// that legitimately begins with NUL bytes can be misread. Buffers shorter
// than six bytes fail with ErrFileTooSmall, empty ones with ErrEmptyFile.
func DetectBOM(data []byte) (BOM, error) {
	info, err := encoding.Detect(data)
	if err != nil {
		return BOMNone, err
	}
	return info.Encoding, nil
}

// Load parses an INI buffer into a document. The buffer's encoding is
// detected first (see DetectBOM) and the content transcoded, so UTF-16 and
// UTF-32 input parses the same as UTF-8.
//
// A structural error stops parsing at the failing line, and Load returns the
// document built so far together with the error, so earlier sections and
// entries stay accessible. Encoding failures return a nil document.
//
// Example:
//
//	doc, err := ini.Load(data, ini.Options{})
//	if err != nil {
//	    log.Printf("parse stopped: %v", err)
//	}
//	if doc != nil {
//	    fmt.Println(doc.GetValue("server", "host", "localhost"))
//	}
func Load(data []byte, opts Options) (*Document, error) {
	text, _, err := encoding.Decode(data)
	if err != nil {
		return nil, err
	}
	d := New(opts)
	ops, perr := parse.Lines(segment.Lines(text))
	d.Apply(ops)
	return d, perr
}

// LoadString parses INI content held in a string. The content passes through
// the same encoding detection as Load, so it must be at least six bytes long.
func LoadString(s string, opts Options) (*Document, error) {
	return Load([]byte(s), opts)
}

// LoadFile parses the INI file at path. The file is memory-mapped where the
// platform supports it and read outright elsewhere; either way the document
// owns plain copies of its text once LoadFile returns. Open and read
// failures come back with ErrKindIO.
//
// Example:
//
//	doc, err := ini.LoadFile("/etc/app/app.ini", ini.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadFile(path string, opts Options) (*Document, error) {
	data, release, err := mmfile.Read(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "read " + path, Err: err}
	}
	defer release()

	return Load(data, opts)
}
