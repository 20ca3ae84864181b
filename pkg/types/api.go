package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO       ErrKind = iota // host file open/read/write failure
	ErrKindEncoding                // undecodable input (empty, truncated, bad UTF-8)
	ErrKindParse                   // structural syntax error in the INI text
	ErrKindStyle                   // serializer style outside the allowed sets
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the engine.
var (
	// ErrEmptyFile indicates a zero-length input buffer.
	ErrEmptyFile = &Error{Kind: ErrKindEncoding, Msg: "empty file"}
	// ErrFileTooSmall indicates a buffer too short to classify its encoding.
	ErrFileTooSmall = &Error{Kind: ErrKindEncoding, Msg: "file too small to detect encoding"}
	// ErrInvalidUtf8Sequence indicates malformed UTF-8 met while encoding output.
	ErrInvalidUtf8Sequence = &Error{Kind: ErrKindEncoding, Msg: "invalid utf-8 sequence"}
	// ErrUnterminatedSection indicates a section tag with no closing bracket,
	// or a second opening bracket before the close.
	ErrUnterminatedSection = &Error{Kind: ErrKindParse, Msg: "unterminated section tag"}
	// ErrCommentInsideSectionTag indicates a comment marker between [ and ].
	ErrCommentInsideSectionTag = &Error{Kind: ErrKindParse, Msg: "comment marker inside section tag"}
	// ErrBracketInsideKeyOrValue indicates a stray bracket in a key or an
	// unquoted value.
	ErrBracketInsideKeyOrValue = &Error{Kind: ErrKindParse, Msg: "bracket inside key or value"}
	// ErrMissingDelimiter indicates a data line with no key/value delimiter.
	ErrMissingDelimiter = &Error{Kind: ErrKindParse, Msg: "missing key/value delimiter"}
	// ErrUnterminatedQuotedValue indicates a quote still open at end of line.
	ErrUnterminatedQuotedValue = &Error{Kind: ErrKindParse, Msg: "unterminated quoted value"}
	// ErrInvalidConfigurationCharacter indicates a style option outside its
	// allowed set (newline, marker, quote, or delimiter).
	ErrInvalidConfigurationCharacter = &Error{Kind: ErrKindStyle, Msg: "invalid configuration character"}
)

// -----------------------------------------------------------------------------
// Encoding Identifiers
// -----------------------------------------------------------------------------

// BOM identifies the byte-order mark, and thus the encoding, of a buffer.
type BOM int

const (
	BOMNone BOM = iota // no mark; content is treated as UTF-8
	BOMUTF8
	BOMUTF16LE
	BOMUTF16BE
	BOMUTF32LE
	BOMUTF32BE
)

// String returns the conventional name of the encoding the mark announces.
func (b BOM) String() string {
	switch b {
	case BOMNone:
		return "none"
	case BOMUTF8:
		return "UTF-8"
	case BOMUTF16LE:
		return "UTF-16LE"
	case BOMUTF16BE:
		return "UTF-16BE"
	case BOMUTF32LE:
		return "UTF-32LE"
	case BOMUTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Serializer Style
// -----------------------------------------------------------------------------

// Style selects how a document renders back to text. Each field is restricted
// to a small allowed set; anything else fails with
// ErrInvalidConfigurationCharacter before any text is produced.
type Style struct {
	Newline   string // "\n", "\r", or "\r\n"
	Marker    byte   // ';' or '#'
	Quote     byte   // '"' or '\''
	Delimiter byte   // '=' or ':'
	Formatted bool   // spaces around delimiters/markers, blank line after sections
	BOM       BOM    // byte-order mark to emit, BOMNone for none
}

// DefaultStyle mirrors the most common INI conventions: CRLF, semicolon
// comments, double quotes, '=' pairs, compact layout, no mark.
func DefaultStyle() Style {
	return Style{Newline: "\r\n", Marker: ';', Quote: '"', Delimiter: '='}
}

// -----------------------------------------------------------------------------
// Document Vocabulary
// -----------------------------------------------------------------------------

// GlobalSection is the reserved name under which entries that precede any
// section header live. An empty section name in lookups and mutators
// resolves here. The name is case-folded like any other section name.
const GlobalSection = "IK_Global"

// Synthetic key prefixes for entries with no natural key. The document
// layer forms keys such as "IK_C_1" or "IK_EL_2" from a per-section
// counter that only ever counts up.
const (
	CommentKeyPrefix = "IK_C_"
	BlankKeyPrefix   = "IK_EL_"
)

// EntryKind discriminates the payload a section entry carries.
type EntryKind int

const (
	KindValue   EntryKind = iota // key = value
	KindArray                    // key[] / key[idx] elements under one key
	KindComment                  // full-line comment, synthetic key
	KindBlank                    // blank line, synthetic key
)

// Position selects where a comment or blank line lands within a section.
type Position int

const (
	PositionStart Position = iota // before the first entry
	PositionEnd                   // after the last entry
	PositionAbove                 // immediately before a named key
	PositionBelow                 // immediately after a named key
)

// -----------------------------------------------------------------------------
// Parse Operations
// -----------------------------------------------------------------------------

// ParseOp represents one structural line recognized by the parser. The parser
// emits a flat op stream; the document layer replays it in order. Each op is
// self-contained (it names its section) so a partial stream still applies
// cleanly when parsing stops at an error.
type ParseOp interface{ isParseOp() }

// OpSection registers a section, switching subsequent ops onto it. Emitted
// when the header line is read, so a section with no entries still exists.
type OpSection struct {
	Name          string
	InlineComment string
}

func (OpSection) isParseOp() {}

// OpValue sets a plain key/value pair.
type OpValue struct {
	Section       string
	Key           string
	Value         string
	Quoted        bool
	InlineComment string
}

func (OpValue) isParseOp() {}

// OpArrayItem appends or updates one element of an array key. Index is the
// literal text between the brackets; empty means auto-assign.
type OpArrayItem struct {
	Section       string
	Key           string
	Index         string
	Value         string
	Quoted        bool
	InlineComment string
}

func (OpArrayItem) isParseOp() {}

// OpComment appends a full-line comment to a section.
type OpComment struct {
	Section string
	Text    string
}

func (OpComment) isParseOp() {}

// OpBlank appends a blank line to a section.
type OpBlank struct {
	Section string
}

func (OpBlank) isParseOp() {}
