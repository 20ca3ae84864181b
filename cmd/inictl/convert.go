package main

import (
	"fmt"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var convertForce bool

func init() {
	cmd := newConvertCmd()
	cmd.Flags().BoolVar(&convertForce, "force", false, "Convert what parsed even if the input has errors")
	registerStyleFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a document in a different style or encoding",
		Long: `The convert command loads a document and writes it back under the given
style flags. Content, comments, and ordering are untouched; only layout,
line endings, and encoding change.

Example:
  inictl convert app.ini app-unix.ini --newline lf
  inictl convert app.ini app-wide.ini --bom utf16le
  inictl convert app.ini app.ini --marker '#' --delimiter :`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath := args[0]
	outPath := args[1]

	style, err := buildStyle()
	if err != nil {
		return err
	}

	printVerbose("Loading document: %s\n", inPath)

	doc, err := ini.LoadFile(inPath, docOptions())
	if err != nil {
		if doc == nil || !convertForce {
			return fmt.Errorf("failed to load document: %w", err)
		}
		printError("parse stopped, converting the part that loaded: %v\n", err)
	}

	if err := ini.SaveFile(doc, outPath, style); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	printInfo("Converted %s -> %s\n", inPath, outPath)
	return nil
}
