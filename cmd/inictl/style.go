package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

// Style flags shared by the commands that write INI text.
var (
	styleNewline   string
	styleMarker    string
	styleQuote     string
	styleDelimiter string
	styleFormatted bool
	styleBOM       string
)

// registerStyleFlags attaches the serialization flags to a writing command.
func registerStyleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&styleNewline, "newline", "crlf", "Line terminator (lf, cr, crlf)")
	cmd.Flags().StringVar(&styleMarker, "marker", ";", "Comment marker (; or #)")
	cmd.Flags().StringVar(&styleQuote, "quote", "\"", "Quote character (\" or ')")
	cmd.Flags().StringVar(&styleDelimiter, "delimiter", "=", "Key/value delimiter (= or :)")
	cmd.Flags().BoolVar(&styleFormatted, "formatted", false, "Pad delimiters and markers with spaces")
	cmd.Flags().
		StringVar(&styleBOM, "bom", "none", "Byte-order mark (none, utf8, utf16le, utf16be, utf32le, utf32be)")
}

// buildStyle resolves the style flags into serializer options.
func buildStyle() (ini.Style, error) {
	style := ini.Style{Formatted: styleFormatted}

	switch styleNewline {
	case "lf":
		style.Newline = "\n"
	case "cr":
		style.Newline = "\r"
	case "crlf":
		style.Newline = "\r\n"
	default:
		return style, fmt.Errorf("invalid newline %q (use lf, cr, or crlf)", styleNewline)
	}

	if len(styleMarker) != 1 {
		return style, fmt.Errorf("invalid comment marker %q (use ; or #)", styleMarker)
	}
	style.Marker = styleMarker[0]

	if len(styleQuote) != 1 {
		return style, fmt.Errorf("invalid quote character %q (use \" or ')", styleQuote)
	}
	style.Quote = styleQuote[0]

	if len(styleDelimiter) != 1 {
		return style, fmt.Errorf("invalid delimiter %q (use = or :)", styleDelimiter)
	}
	style.Delimiter = styleDelimiter[0]

	switch styleBOM {
	case "none":
		style.BOM = ini.BOMNone
	case "utf8":
		style.BOM = ini.BOMUTF8
	case "utf16le":
		style.BOM = ini.BOMUTF16LE
	case "utf16be":
		style.BOM = ini.BOMUTF16BE
	case "utf32le":
		style.BOM = ini.BOMUTF32LE
	case "utf32be":
		style.BOM = ini.BOMUTF32BE
	default:
		return style, fmt.Errorf(
			"invalid byte-order mark %q (use none, utf8, utf16le, utf16be, utf32le, or utf32be)",
			styleBOM,
		)
	}

	return style, nil
}
