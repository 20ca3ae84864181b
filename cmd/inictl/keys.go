package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the keys of a section",
		Long: `The keys command lists the value and array keys of one section in
document order. Comments and blank lines are not listed.

Example:
  inictl keys app.ini server
  inictl keys app.ini "" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	path := args[0]
	section := args[1]

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if section != "" && !doc.HasSection(section) {
		return fmt.Errorf("section %q not found", section)
	}

	keys := doc.KeyNames(section)

	if jsonOut {
		if keys == nil {
			keys = []string{}
		}
		return printJSON(keys)
	}

	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
