package ini

import (
	"github.com/joshuapare/inikit/pkg/doc"
	"github.com/joshuapare/inikit/pkg/types"
)

// Options controls document construction and name comparison.
type Options struct {
	// CaseSensitive keeps section names, keys, and array sub-keys exactly
	// as written. When false (the default), names fold to lower case on
	// every operation, so [Server] and [SERVER] address the same section.
	// The policy is fixed for the document's lifetime.
	CaseSensitive bool
}

// Re-export commonly used types from pkg/doc and pkg/types so users only
// need to import pkg/ini.

// Document model types.
type (
	Document  = doc.Document
	Section   = doc.Section
	Entry     = doc.Entry
	ArrayItem = doc.ArrayItem
)

// Style and vocabulary types.
type (
	Style     = types.Style
	Position  = types.Position
	BOM       = types.BOM
	EntryKind = types.EntryKind
	Error     = types.Error
	ErrKind   = types.ErrKind
)

// Insert positions for SetComment and SetBlank.
const (
	PositionStart = types.PositionStart
	PositionEnd   = types.PositionEnd
	PositionAbove = types.PositionAbove
	PositionBelow = types.PositionBelow
)

// Byte-order marks for Style.BOM and DetectBOM.
const (
	BOMNone    = types.BOMNone
	BOMUTF8    = types.BOMUTF8
	BOMUTF16LE = types.BOMUTF16LE
	BOMUTF16BE = types.BOMUTF16BE
	BOMUTF32LE = types.BOMUTF32LE
	BOMUTF32BE = types.BOMUTF32BE
)

// Entry kinds reported by Entry.Kind.
const (
	KindValue   = types.KindValue
	KindArray   = types.KindArray
	KindComment = types.KindComment
	KindBlank   = types.KindBlank
)

// Error categories carried by Error.Kind.
const (
	ErrKindIO       = types.ErrKindIO
	ErrKindEncoding = types.ErrKindEncoding
	ErrKindParse    = types.ErrKindParse
	ErrKindStyle    = types.ErrKindStyle
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrEmptyFile                     = types.ErrEmptyFile
	ErrFileTooSmall                  = types.ErrFileTooSmall
	ErrInvalidUtf8Sequence           = types.ErrInvalidUtf8Sequence
	ErrUnterminatedSection           = types.ErrUnterminatedSection
	ErrCommentInsideSectionTag       = types.ErrCommentInsideSectionTag
	ErrBracketInsideKeyOrValue       = types.ErrBracketInsideKeyOrValue
	ErrMissingDelimiter              = types.ErrMissingDelimiter
	ErrUnterminatedQuotedValue       = types.ErrUnterminatedQuotedValue
	ErrInvalidConfigurationCharacter = types.ErrInvalidConfigurationCharacter
)

// GlobalSection is the reserved name of the section that holds entries
// preceding any header. The empty string addresses it too.
const GlobalSection = types.GlobalSection

// DefaultStyle returns the most common INI conventions: CRLF newlines,
// semicolon comments, double quotes, '=' delimiters, compact layout, and
// no byte-order mark.
func DefaultStyle() Style {
	return types.DefaultStyle()
}
