package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	caseSensitive bool
)

var rootCmd = &cobra.Command{
	Use:   "inictl",
	Short: "Inspect and edit INI documents",
	Long: `inictl is a tool for inspecting, editing, and re-styling INI documents.
It preserves comments, blank lines, and entry order through every edit, and
reads UTF-8, UTF-16, and UTF-32 input transparently.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&caseSensitive, "case-sensitive", false, "Match section and key names exactly")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// docOptions builds the document options shared by every subcommand.
func docOptions() ini.Options {
	return ini.Options{CaseSensitive: caseSensitive}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
