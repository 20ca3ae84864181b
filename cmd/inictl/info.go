package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show document statistics",
		Long: `The info command reports the detected encoding and the shape of a
document: section, key, comment, and blank-line counts.

Example:
  inictl info app.ini
  inictl info app.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	bom, err := ini.DetectBOM(data)
	if err != nil {
		return fmt.Errorf("failed to detect encoding: %w", err)
	}

	doc, err := ini.Load(data, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	var keys, comments, blanks int
	for _, name := range doc.SectionNames() {
		keys += doc.NumKeys(name)
		comments += len(doc.CommentKeys(name))
		blanks += len(doc.BlankKeys(name))
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":     path,
			"size":     len(data),
			"encoding": bom.String(),
			"sections": doc.NumSections(),
			"keys":     keys,
			"comments": comments,
			"blanks":   blanks,
		}
		return printJSON(result)
	}

	printInfo("File: %s\n", path)
	printInfo("Size: %d bytes\n", len(data))
	printInfo("Encoding: %s\n", bom)
	printInfo("Sections: %d\n", doc.NumSections())
	printInfo("Keys: %d\n", keys)
	printInfo("Comments: %d\n", comments)
	printInfo("Blank lines: %d\n", blanks)
	return nil
}
