package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prosescan/prosescan/internal/analyzer"
	"github.com/prosescan/prosescan/internal/config"
	"github.com/prosescan/prosescan/internal/database"
	"github.com/prosescan/prosescan/internal/log"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/pipeline"
	"github.com/prosescan/prosescan/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [document...]",
		Short: "Check documents for writing issues",
		Long: `Check analyzes one or more documents for writing issues.

Each document is decoded (plain text, Markdown, DOCX, DOC, or PDF),
analyzed line by line, and reported with per-line findings:
- Known misspellings with corrections
- Words absent from the dictionary
- Redundant phrases and casual expressions
- Heading typos and casual heading phrasing
- Repeated words and duplicated Chinese characters
- Overlong sentences and punctuation problems

Examples:
  # Check a single document
  prosescan check draft.txt

  # Check several documents concurrently
  prosescan check chapter1.docx chapter2.docx chapter3.docx

  # Read from standard input
  cat draft.txt | prosescan check -

  # Output a JSON report
  prosescan check --json draft.txt

  # Use a project rule file
  prosescan check -r .prosescan draft.txt

Rule file (.prosescan) example:
  extra_words:
    - fintech
    - bioinformatics
  ignore_words:
    - vlog
  typos:
    paralel: parallel
  sentence_latin: 180`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Analysis limit flags
	cmd.Flags().Int("max-chars", analyzer.DefaultMaxTextChars,
		"Maximum characters analyzed per document")
	cmd.Flags().Int("max-line-chars", analyzer.DefaultMaxLineChars,
		"Maximum characters analyzed per line")
	cmd.Flags().Int("max-issues", analyzer.DefaultMaxIssues,
		"Maximum issues collected per document")
	cmd.Flags().Int("chunk-lines", analyzer.DefaultChunkLines,
		"Lines per progress chunk in async mode")

	// Execution flags
	cmd.Flags().BoolP("async", "a", false,
		"Use the chunked, cancellable analysis path")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent document checks")

	// Rule file
	cmd.Flags().StringP("rules", "r", "",
		"Rule file path (default: .prosescan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with attribute trimming
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.MaxTextChars, err = cmd.Flags().GetInt("max-chars")
	if err != nil {
		return nil, err
	}

	cfg.MaxLineChars, err = cmd.Flags().GetInt("max-line-chars")
	if err != nil {
		return nil, err
	}

	cfg.MaxIssues, err = cmd.Flags().GetInt("max-issues")
	if err != nil {
		return nil, err
	}

	cfg.ChunkLines, err = cmd.Flags().GetInt("chunk-lines")
	if err != nil {
		return nil, err
	}

	cfg.Async, err = cmd.Flags().GetBool("async")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.RuleFilePath, err = cmd.Flags().GetString("rules")
	if err != nil {
		return nil, err
	}

	// Load the rule file. If the user explicitly specified a path, error
	// when it is missing. Otherwise silently run with built-in rules only.
	explicitRulePath := cfg.RuleFilePath != ""
	rulePath := config.FindRuleFile(cfg.RuleFilePath)

	if rulePath != "" {
		cfg.Rules, err = config.LoadRuleFile(rulePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule file %s: %w", rulePath, err)
		}
	} else if explicitRulePath {
		return nil, fmt.Errorf("rule file not found: %s", cfg.RuleFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	if !noHistory {
		cfg.SaveToDB = true
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are document paths; "-" selects stdin.
	cfg.Targets = args
	for _, target := range args {
		if target == pipeline.StdinPath {
			cfg.Stdin = true
		}
	}

	return cfg, nil
}

// runCheck executes the document checks.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Targets) == 0 {
		return errors.New("no documents provided (specify one or more paths, or - for stdin)")
	}

	logger.Info("starting check",
		"targets", cfg.Targets,
		"batchSize", cfg.BatchSize,
		"async", cfg.Async,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if history is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	// Build the analysis engine once; it is safe for concurrent use.
	opts := cfg.AnalyzerOptions()
	opts = append(opts, analyzer.WithLogger(logger))
	engine := analyzer.New(opts...)

	// One destination for the whole run, shared by every document report.
	output, closeOutput, err := openReportOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Reports are flushed per write

	// Use batch processor for parallel checking if multiple documents
	if len(cfg.Targets) > 1 && cfg.BatchSize > 1 {
		return runBatchCheck(ctx, cfg, engine, db, output, logger)
	}

	// Single document or sequential checking
	return runSequentialCheck(ctx, cfg, engine, db, output, logger)
}

// createPipeline creates a pipeline for one document check.
func createPipeline(engine *analyzer.Analyzer, db *database.HistoryDB, cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(logger),
	}

	configOpts := []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineStdin(os.Stdin),
		pipeline.WithPipelineAsync(cfg.Async),
	}
	if db != nil {
		configOpts = append(configOpts, pipeline.WithPipelineDB(db))
	}

	return pipeline.DefaultPipeline(engine, pipelineOpts, configOpts...)
}

// runSequentialCheck checks documents one at a time.
func runSequentialCheck(ctx context.Context, cfg *config.Config, engine *analyzer.Analyzer, db *database.HistoryDB, output io.Writer, logger *slog.Logger) error {
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipeline(engine, db, cfg, logger)
		docReport := model.NewDocumentReport(target)

		startTime := time.Now()

		// Execute the pipeline
		if err := p.Execute(ctx, docReport); err != nil {
			logger.Error("check failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Check error for %s: %v\n", target, err)
			continue
		}

		logger.Debug("check completed",
			"target", target,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		// Generate and output report
		if err := outputReport(cfg, output, docReport); err != nil {
			logger.Error("report failed", "target", target, "error", err)
		}
	}

	return nil
}

// runBatchCheck checks multiple documents concurrently using BatchProcessor.
func runBatchCheck(ctx context.Context, cfg *config.Config, engine *analyzer.Analyzer, db *database.HistoryDB, output io.Writer, logger *slog.Logger) error {
	fmt.Printf("Checking %d documents (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.BatchSize)

	startTime := time.Now()

	// Create batch processor with pipeline factory
	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return createPipeline(engine, db, cfg, logger)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(docReport *model.DocumentReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] %s\n", index+1, len(cfg.Targets), docReport.Path)

		if err := outputReport(cfg, output, docReport); err != nil {
			logger.Error("report failed", "target", docReport.Path, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch check completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// openReportOutput resolves the report destination for a whole run. The
// file is opened once so multi-document checks append their reports rather
// than truncating each other; the returned closer is a no-op for stdout.
func openReportOutput(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// outputReport writes the document report in the requested format.
func outputReport(cfg *config.Config, output io.Writer, docReport *model.DocumentReport) error {
	// Ensure the summary is present
	if docReport.Summary == nil {
		docReport.Summary = model.NewSummary(docReport)
	}

	// JSON output (full report with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(docReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(docReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(docReport)
	return err
}
