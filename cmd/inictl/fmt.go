package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var fmtWrite bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file instead of printing")
	registerStyleFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Pretty-print a document",
		Long: `The fmt command renders a document in formatted layout: spaces around
delimiters and markers, and a blank line closing each section. Output goes
to stdout unless --write rewrites the file in place.

Example:
  inictl fmt app.ini
  inictl fmt app.ini --write
  inictl fmt app.ini --write --newline lf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	path := args[0]

	style, err := buildStyle()
	if err != nil {
		return err
	}
	style.Formatted = true

	printVerbose("Loading document: %s\n", path)

	doc, err := ini.LoadFile(path, docOptions())
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if fmtWrite {
		if err := ini.SaveFile(doc, path, style); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		printInfo("Formatted %s\n", path)
		return nil
	}

	data, err := ini.Save(doc, style)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
