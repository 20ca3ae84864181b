package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <file> <section>",
		Short: "List all values of a section",
		Long: `The values command prints every key/value pair of one section, with
array elements expanded as key[index]=value lines.

Example:
  inictl values app.ini server
  inictl values app.ini server --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	path := args[0]
	section := args[1]

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	sec := doc.Section(section)
	if sec == nil {
		return fmt.Errorf("section %q not found", section)
	}

	if jsonOut {
		return outputValuesJSON(sec)
	}
	return outputValuesText(sec)
}

func outputValuesText(sec *ini.Section) error {
	for _, e := range sec.Entries() {
		switch e.Kind() {
		case ini.KindValue:
			fmt.Printf("%s=%s\n", e.Key(), e.Value())
		case ini.KindArray:
			for _, item := range e.Items() {
				fmt.Printf("%s[%s]=%s\n", e.Key(), item.Key(), item.Value())
			}
		}
	}
	return nil
}

func outputValuesJSON(sec *ini.Section) error {
	result := make(map[string]interface{})
	for _, e := range sec.Entries() {
		switch e.Kind() {
		case ini.KindValue:
			result[e.Key()] = e.Value()
		case ini.KindArray:
			elems := make(map[string]string, len(e.Items()))
			for _, item := range e.Items() {
				elems[item.Key()] = item.Value()
			}
			result[e.Key()] = elems
		}
	}
	return printJSON(result)
}
