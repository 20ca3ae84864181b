package main

import (
	"errors"
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var (
	setIndex   string
	setAppend  bool
	setQuoted  bool
	setComment string
	setCreate  bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setIndex, "index", "", "Write an array element at this explicit index")
	cmd.Flags().BoolVar(&setAppend, "append", false, "Append an auto-indexed array element")
	cmd.Flags().BoolVar(&setQuoted, "quoted", false, "Store the value quoted, preserving spaces")
	cmd.Flags().StringVar(&setComment, "comment", "", "Inline comment to attach to the entry")
	cmd.Flags().BoolVar(&setCreate, "create", false, "Create the file if it doesn't exist")
	registerStyleFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <key> <value>",
		Short: "Set a value and write the file back",
		Long: `The set command updates or inserts one value and saves the document.
Sections are created on demand; everything else in the file is preserved.

Example:
  inictl set app.ini server host example.com
  inictl set app.ini server motto "hello world" --quoted
  inictl set app.ini server ports 8080 --append
  inictl set app.ini server ports 9090 --index 5
  inictl set app.ini server host example.com --comment "public name"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	section := args[1]
	key := args[2]
	value := args[3]

	style, err := buildStyle()
	if err != nil {
		return err
	}

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		var typed *ini.Error
		missing := errors.As(err, &typed) && typed.Kind == ini.ErrKindIO
		if !(missing && setCreate) {
			return fmt.Errorf("failed to load document: %w", err)
		}
		printVerbose("Creating new document\n")
		doc = ini.New(docOptions())
	}

	switch {
	case setAppend:
		doc.SetArrayValue(section, key, "", value, setQuoted)
	case setIndex != "":
		doc.SetArrayValue(section, key, setIndex, value, setQuoted)
	default:
		doc.SetValue(section, key, value, setQuoted)
	}
	if setComment != "" {
		doc.SetInlineComment(section, key, setComment)
	}

	if err := ini.SaveFile(doc, path, style); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"value":   value,
			"success": true,
		}
		return printJSON(result)
	}

	printInfo("Set %s.%s in %s\n", section, key, path)
	return nil
}
