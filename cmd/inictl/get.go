package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var (
	getDefault string
	getIndex   string
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getDefault, "default", "", "Value to print when the key is missing")
	cmd.Flags().StringVar(&getIndex, "index", "", "Array index to read instead of a plain value")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Get a single value",
		Long: `The get command prints one value from a document. Use an empty section
name for entries above the first section header.

Example:
  inictl get app.ini server host
  inictl get app.ini "" timeout --default 30
  inictl get app.ini server ports --index 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	section := args[1]
	key := args[2]

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	var value string
	if getIndex != "" {
		value = doc.GetArrayValue(section, key, getIndex, getDefault)
	} else {
		value = doc.GetValue(section, key, getDefault)
	}

	if getDefault == "" && !doc.HasKey(section, key) {
		return fmt.Errorf("key %q not found in section %q", key, section)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":    path,
			"section": section,
			"key":     key,
			"value":   value,
		}
		if getIndex != "" {
			result["index"] = getIndex
		}
		return printJSON(result)
	}

	fmt.Println(value)
	return nil
}
