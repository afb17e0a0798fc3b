package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prosescan/prosescan/internal/config"
)

//go:embed templates/prosescan.yaml
var ruleTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new prosescan rule file",
		Long: `Init creates a new .prosescan rule file in the current directory.

The generated file includes:
- Commented examples for project-specific words
- Commented examples for custom typo corrections
- Documentation for the sentence length overrides

Examples:
  # Create .prosescan in current directory
  prosescan init

  # Create rule file at a specific path
  prosescan init -o rules.yaml

  # Force overwrite existing file
  prosescan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultRuleFile,
		"Output file path for the rule file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing rule file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("rule file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := ruleTemplate.ReadFile("templates/prosescan.yaml")
	if err != nil {
		return fmt.Errorf("failed to read rule template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write rule file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write rule file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created rule file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure project-specific rules such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Domain terms to accept as correct")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Recurring typos and their corrections")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Sentence length thresholds")

	return nil
}
