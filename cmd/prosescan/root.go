// Package main provides the entry point for the prosescan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for prosescan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prosescan",
		Short: "Writing checker for mixed Chinese/English academic prose",
		Long: `Prosescan analyzes documents for writing issues in mixed
Chinese/English academic prose. It flags known misspellings, words absent
from its dictionary, redundant phrases, heading typos, repeated words and
characters, and overlong sentences.

Supported input formats: plain text, Markdown, DOCX, legacy DOC, and PDF.
Results can be printed as text, JSON, or Markdown, and every run is stored
in a local history database for later comparison.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
