package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var sectionsCounts bool

func init() {
	cmd := newSectionsCmd()
	cmd.Flags().BoolVar(&sectionsCounts, "counts", false, "Show the number of keys per section")
	rootCmd.AddCommand(cmd)
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the sections of a document",
		Long: `The sections command lists every section in document order. The reserved
global section appears first when entries precede the first header.

Example:
  inictl sections app.ini
  inictl sections app.ini --counts
  inictl sections app.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

func runSections(args []string) error {
	path := args[0]

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	names := doc.SectionNames()

	if jsonOut {
		if sectionsCounts {
			result := make(map[string]interface{}, len(names))
			for _, name := range names {
				result[name] = doc.NumKeys(name)
			}
			return printJSON(result)
		}
		return printJSON(names)
	}

	for _, name := range names {
		if sectionsCounts {
			fmt.Printf("%s\t%d\n", name, doc.NumKeys(name))
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
