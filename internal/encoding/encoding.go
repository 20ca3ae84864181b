// Package encoding classifies the byte-order mark (or likely markless
// encoding) of an INI buffer and transcodes between that encoding and the
// engine's internal UTF-8 representation.
package encoding

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/joshuapare/inikit/pkg/types"
)

// Canonical mark prefixes. UTF-32 forms are checked before UTF-16 forms
// because the UTF-16LE mark is a byte prefix of the UTF-32LE mark.
var (
	markUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	markUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	markUTF16LE = []byte{0xFF, 0xFE}
	markUTF16BE = []byte{0xFE, 0xFF}
	markUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// MinDetectSize is the smallest buffer Detect will classify. Anything shorter
// cannot hold a mark plus one code unit in the widest supported encoding.
const MinDetectSize = 6

// Info describes the detected encoding of a buffer.
type Info struct {
	Encoding types.BOM // encoding family; BOMNone means plain 8-bit/UTF-8
	HasBOM   bool      // whether the mark bytes are physically present
}

// SkipLen returns how many leading bytes the mark occupies. Content detected
// through the zero-byte heuristic carries no mark, so nothing is skipped.
func (i Info) SkipLen() int {
	if !i.HasBOM {
		return 0
	}
	switch i.Encoding {
	case types.BOMUTF32LE, types.BOMUTF32BE:
		return 4
	case types.BOMUTF16LE, types.BOMUTF16BE:
		return 2
	case types.BOMUTF8:
		return 3
	default:
		return 0
	}
}

// Mark returns the canonical mark bytes for b, or nil for BOMNone.
func Mark(b types.BOM) []byte {
	switch b {
	case types.BOMUTF8:
		return markUTF8
	case types.BOMUTF16LE:
		return markUTF16LE
	case types.BOMUTF16BE:
		return markUTF16BE
	case types.BOMUTF32LE:
		return markUTF32LE
	case types.BOMUTF32BE:
		return markUTF32BE
	default:
		return nil
	}
}

// Detect classifies data by its first four bytes. A zero-length buffer and a
// buffer shorter than MinDetectSize are errors. When no mark matches, a
// zero-byte heuristic guesses markless UTF-16/UTF-32; plain ASCII shorter
// than one heuristic stride stays BOMNone. The heuristic is best-effort and
// can misread content that legitimately starts with NUL bytes.
func Detect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, types.ErrEmptyFile
	}
	if len(data) < MinDetectSize {
		return Info{}, types.ErrFileTooSmall
	}
	switch {
	case bytes.HasPrefix(data, markUTF32LE):
		return Info{Encoding: types.BOMUTF32LE, HasBOM: true}, nil
	case bytes.HasPrefix(data, markUTF32BE):
		return Info{Encoding: types.BOMUTF32BE, HasBOM: true}, nil
	case bytes.HasPrefix(data, markUTF16LE):
		return Info{Encoding: types.BOMUTF16LE, HasBOM: true}, nil
	case bytes.HasPrefix(data, markUTF16BE):
		return Info{Encoding: types.BOMUTF16BE, HasBOM: true}, nil
	case bytes.HasPrefix(data, markUTF8):
		return Info{Encoding: types.BOMUTF8, HasBOM: true}, nil
	}
	return Info{Encoding: guessMarkless(data)}, nil
}

// guessMarkless inspects the zero-byte pattern of the first four bytes. One
// ASCII code unit in UTF-32LE reads XX 00 00 00, in UTF-32BE 00 00 00 XX, in
// UTF-16LE XX 00 XX 00, and in UTF-16BE 00 XX 00 XX.
func guessMarkless(data []byte) types.BOM {
	z0, z1, z2, z3 := data[0] == 0, data[1] == 0, data[2] == 0, data[3] == 0
	switch {
	case !z0 && z1 && z2 && z3:
		return types.BOMUTF32LE
	case z0 && z1 && z2 && !z3:
		return types.BOMUTF32BE
	case !z0 && z1 && !z2 && z3:
		return types.BOMUTF16LE
	case z0 && !z1 && z2 && !z3:
		return types.BOMUTF16BE
	default:
		return types.BOMNone
	}
}

// Decode detects the encoding of data, strips any mark, and transcodes the
// remainder to UTF-8. Undecodable code units are replaced, not rejected;
// strict validation happens on the encode side.
func Decode(data []byte) (string, Info, error) {
	info, err := Detect(data)
	if err != nil {
		return "", info, err
	}
	content := data[info.SkipLen():]

	switch info.Encoding {
	case types.BOMNone, types.BOMUTF8:
		return string(content), info, nil
	default:
		decoded, _, terr := transform.Bytes(decoder(info.Encoding), content)
		if terr != nil {
			return "", info, &types.Error{Kind: types.ErrKindEncoding, Msg: "transcode to utf-8", Err: terr}
		}
		return string(decoded), info, nil
	}
}

// Encode renders text in the encoding b announces, prefixing the mark bytes.
// BOMNone writes plain UTF-8 with no mark.
func Encode(text string, b types.BOM) ([]byte, error) {
	switch b {
	case types.BOMNone:
		return []byte(text), nil
	case types.BOMUTF8:
		out := make([]byte, 0, len(markUTF8)+len(text))
		out = append(out, markUTF8...)
		return append(out, text...), nil
	case types.BOMUTF16LE, types.BOMUTF16BE, types.BOMUTF32LE, types.BOMUTF32BE:
		encoded, _, err := transform.Bytes(encoder(b), []byte(text))
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindEncoding, Msg: "transcode from utf-8", Err: err}
		}
		mark := Mark(b)
		out := make([]byte, 0, len(mark)+len(encoded))
		out = append(out, mark...)
		return append(out, encoded...), nil
	default:
		return nil, types.ErrInvalidConfigurationCharacter
	}
}

func decoder(b types.BOM) transform.Transformer {
	switch b {
	case types.BOMUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case types.BOMUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case types.BOMUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()
	default:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
	}
}

func encoder(b types.BOM) transform.Transformer {
	switch b {
	case types.BOMUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case types.BOMUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case types.BOMUTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder()
	default:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder()
	}
}
