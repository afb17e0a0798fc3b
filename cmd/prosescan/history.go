package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prosescan/prosescan/internal/config"
	"github.com/prosescan/prosescan/internal/database"
	"github.com/prosescan/prosescan/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [document]",
		Short: "List past analysis runs",
		Long: `History lists the analysis runs stored in the local database.

Every check is recorded with its severity counts, so you can watch a
draft's issue counts shrink across revisions.

Examples:
  # List all stored runs
  prosescan history

  # List runs for one document
  prosescan history draft.docx

  # Show the full report of a stored run
  prosescan history --id 42

  # Limit the listing to the 10 most recent runs
  prosescan history -n 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 0,
		"Maximum number of runs to list (0 = no limit)")
	cmd.Flags().Int64("id", 0,
		"Show the full stored report with this run ID")
	cmd.Flags().BoolP("json", "j", false,
		"Output the report as JSON (only with --id)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// History is read-only; a missing database just means no runs yet.
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No analysis history found.")
		return nil
	}
	defer db.Close()

	if id != 0 {
		return showStoredReport(cmd, db, id, jsonOut)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	return listRuns(cmd, db, path, limit)
}

// showStoredReport prints one stored report in full.
func showStoredReport(cmd *cobra.Command, db *database.HistoryDB, id int64, jsonOut bool) error {
	stored, err := db.GetReportByID(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}
	if stored == nil {
		return fmt.Errorf("no stored run with id %d", id)
	}

	if jsonOut {
		writer := report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
		_, err := writer.Write(stored)
		return err
	}

	writer := report.NewSimpleWriter(cmd.OutOrStdout())
	_, err = writer.Write(stored)
	return err
}

// listRuns prints a table of stored run metadata.
func listRuns(cmd *cobra.Command, db *database.HistoryDB, path string, limit int) error {
	runs, err := db.ListRuns(cmd.Context(), path, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No analysis history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDOCUMENT\tHIGH\tMEDIUM\tLOW\tINFO")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04"),
			run.DocumentPath,
			run.IssueSummary["high"],
			run.IssueSummary["medium"],
			run.IssueSummary["low"],
			run.IssueSummary["info"],
		)
	}
	return w.Flush()
}
