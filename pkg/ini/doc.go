/*
Package ini provides a high-level API for parsing, querying, editing, and
serializing INI documents without losing formatting detail.

# Quick Start

Parse a buffer and read a value:

	doc, err := ini.Load(data, ini.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	host := doc.GetValue("server", "host", "localhost")

# Features

  - Byte-faithful round trips: comment text, blank lines, key order,
    quoting, and array layout all survive Load followed by Save
  - Multi-encoding input: UTF-8, UTF-16LE/BE, and UTF-32LE/BE, detected
    from the byte-order mark or a zero-byte heuristic
  - Escape codec for control characters and any Unicode codepoint
    (named escapes, \xHHHH, surrogate pairs above the BMP)
  - Array keys (items[]=a, items[3]=b) with auto or explicit indices
  - Positional comment and blank-line editing (start, end, above or
    below a named key)
  - Partial results: a structural error stops parsing, but every entry
    before the failing line stays usable

# Basic Usage

Load a file, change a value, save it back:

	doc, err := ini.LoadFile("app.ini", ini.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	doc.SetValue("server", "port", "9090", false)
	err = ini.SaveFile(doc, "app.ini", ini.DefaultStyle())

Build a document from scratch:

	doc := ini.New(ini.Options{})
	doc.AddSection("db")
	doc.SetValue("db", "dsn", "postgres://localhost", true)
	doc.SetComment("db", "primary connection", ini.PositionAbove, "dsn")
	text, _ := ini.SaveString(doc, ini.DefaultStyle())

# Style

Save renders through a Style: newline sequence, comment marker, quote
character, key/value delimiter, compact or formatted spacing, and an
optional byte-order mark. Each character field accepts a small fixed
set; anything else fails with ErrInvalidConfigurationCharacter:

	style := ini.Style{
	    Newline:   "\n",
	    Marker:    '#',
	    Quote:     '\'',
	    Delimiter: ':',
	    Formatted: true,
	    BOM:       ini.BOMUTF8,
	}
	data, err := ini.Save(doc, style)

# Error Handling

Errors carry a Kind (ErrKindIO, ErrKindEncoding, ErrKindParse,
ErrKindStyle) and unwrap to sentinel values:

	doc, err := ini.Load(data, ini.Options{})
	if errors.Is(err, ini.ErrUnterminatedQuotedValue) {
	    // doc still holds everything parsed before the bad line
	}

Lookup misses are not errors: queries return defaults or booleans, and
mutators report success as a boolean, so reading a missing key never
aborts the caller.

# Concurrency

A Document is a plain mutable tree with no internal locking. Parse and
serialize are synchronous and operate on fully materialized buffers.
Callers that share a document across goroutines must serialize access
themselves.
*/
package ini
