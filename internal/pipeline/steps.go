package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prosescan/prosescan/internal/analyzer"
	"github.com/prosescan/prosescan/internal/database"
	"github.com/prosescan/prosescan/internal/document"
	"github.com/prosescan/prosescan/internal/model"
)

// StdinPath is the report path that tells the decode step to read from
// the configured stdin reader instead of the filesystem.
const StdinPath = "-"

// streamThresholdBytes is the file size above which plain-text documents
// are streamed through the analyzer instead of loaded whole, keeping
// memory bounded by the longest line. Files this large exceed the default
// document character cap anyway. Streamed input is assumed UTF-8: the
// multi-encoding fallback needs the full file in memory.
const streamThresholdBytes = 1 << 20

// DecodeStep loads the document and extracts its plain text.
// It sets report.Text and report.Format for the steps that follow.
//
// Design decision: Decoding is a separate step because:
// 1. It's the foundation for everything else (analysis needs text)
// 2. Format detection belongs with extraction, not with analysis
// 3. A decode failure should stop the pipeline with a clear error
type DecodeStep struct {
	// stdin is read when the report path is StdinPath.
	stdin io.Reader

	// logger for structured logging.
	logger *slog.Logger
}

// DecodeStepOption configures a DecodeStep.
type DecodeStepOption func(*DecodeStep)

// WithStdin sets the reader used when the document path is "-".
func WithStdin(r io.Reader) DecodeStepOption {
	return func(s *DecodeStep) {
		s.stdin = r
	}
}

// WithDecodeLogger sets a custom logger for the decode step.
func WithDecodeLogger(logger *slog.Logger) DecodeStepOption {
	return func(s *DecodeStep) {
		s.logger = logger
	}
}

// NewDecodeStep creates a new document decoding step.
func NewDecodeStep(opts ...DecodeStepOption) *DecodeStep {
	s := &DecodeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *DecodeStep) Name() string {
	return "decode"
}

// Do executes the decode step.
func (s *DecodeStep) Do(_ context.Context, report *model.DocumentReport) error {
	if report.Path == StdinPath {
		if s.stdin == nil {
			return fmt.Errorf("stdin input requested but no reader configured")
		}
		// Stdin is unbounded, so it is always streamed.
		report.Source = s.stdin
		report.Format = "txt"
		return nil
	}

	format := document.Format(report.Path)

	// Large plain-text documents are handed to the analyzer as a stream.
	if format == "txt" || format == "md" {
		if info, err := os.Stat(report.Path); err == nil && info.Size() > streamThresholdBytes {
			f, err := os.Open(report.Path) //nolint:gosec // User-provided document path is intentional
			if err != nil {
				return fmt.Errorf("failed to open document: %w", err)
			}
			report.Source = f
			report.Format = format

			s.logger.Debug("document will be streamed",
				"document", report.Path,
				"format", format,
				"bytes", info.Size(),
			)
			return nil
		}
	}

	text, err := document.Decode(report.Path)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	report.Text = text
	report.Format = format

	s.logger.Debug("document decoded",
		"document", report.Path,
		"format", report.Format,
		"bytes", len(text),
	)

	return nil
}

// AnalyzeStep runs the text analysis engine over the decoded document.
// It sets report.Result.
//
// Design decision: The step wraps both the synchronous and the chunked
// async analysis paths because:
// 1. Both produce identical results for identical input
// 2. The async path honors cancellation mid-document, which matters for
//    large files under a batch timeout
// 3. Callers pick one with a flag instead of wiring two step types
type AnalyzeStep struct {
	// analyzer is the configured analysis engine.
	analyzer *analyzer.Analyzer

	// async selects the chunked, cancellable analysis path.
	async bool

	// logger for structured logging.
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAsync selects the chunked async analysis path.
func WithAsync(async bool) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.async = async
	}
}

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates a new analysis step using the given engine.
func NewAnalyzeStep(a *analyzer.Analyzer, opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		analyzer: a,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do executes the analysis step.
func (s *AnalyzeStep) Do(ctx context.Context, report *model.DocumentReport) error {
	// Streamed input goes through the line-by-line reader path, which
	// checks ctx between chunks itself, so the async flag is moot here.
	if report.Source != nil {
		if c, ok := report.Source.(io.Closer); ok {
			defer c.Close() //nolint:errcheck // Read-only source
		}

		result, err := s.analyzer.AnalyzeReader(ctx, report.Source)
		if err != nil {
			if ctx.Err() != nil {
				report.TimedOut = true
			}
			return err
		}
		report.Result = result
		return nil
	}

	if !s.async {
		report.Result = s.analyzer.Analyze(report.Text)
		return nil
	}

	events := s.analyzer.AnalyzeAsync(ctx, "pipeline", report.Text)
	for ev := range events {
		switch {
		case ev.Completed:
			report.Result = ev.Result
			return nil
		case ev.Progress != nil:
			s.logger.Debug("analysis progress",
				"document", report.Path,
				"progress", ev.Progress.Progress,
				"issues", ev.Progress.IssuesFound,
			)
		case ev.Error != "":
			return fmt.Errorf("analysis failed: %s", ev.Error)
		}
	}

	// Channel closed without a completion event: the run was cancelled.
	report.TimedOut = true
	return ctx.Err()
}

// SummarizeStep derives the presentation summary from the raw result.
// It sets report.Summary.
type SummarizeStep struct{}

// NewSummarizeStep creates a new summarize step.
func NewSummarizeStep() *SummarizeStep {
	return &SummarizeStep{}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return "summarize"
}

// Do executes the summarize step.
func (s *SummarizeStep) Do(_ context.Context, report *model.DocumentReport) error {
	report.Summary = model.NewSummary(report)
	return nil
}

// PersistStep saves the completed report to the history database.
//
// Design decision: Persistence is a pipeline step rather than a CLI
// afterthought because:
// 1. It runs per document, which batch processing needs
// 2. A database failure is recorded on the report like any step failure
// 3. The step is simply omitted when history is disabled
type PersistStep struct {
	// db is the open history database.
	db *database.HistoryDB

	// logger for structured logging.
	logger *slog.Logger
}

// PersistStepOption configures a PersistStep.
type PersistStepOption func(*PersistStep)

// WithPersistLogger sets a custom logger for the persist step.
func WithPersistLogger(logger *slog.Logger) PersistStepOption {
	return func(s *PersistStep) {
		s.logger = logger
	}
}

// NewPersistStep creates a new persistence step using the given database.
func NewPersistStep(db *database.HistoryDB, opts ...PersistStepOption) *PersistStep {
	s := &PersistStep{
		db:     db,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *PersistStep) Name() string {
	return "persist"
}

// Do executes the persist step.
func (s *PersistStep) Do(ctx context.Context, report *model.DocumentReport) error {
	if err := s.db.SaveReport(ctx, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Debug("report saved", "document", report.Path)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Stdin is the reader used when a document path is "-".
	Stdin io.Reader

	// Async selects the chunked, cancellable analysis path.
	Async bool

	// DB enables the persist step when non-nil.
	DB *database.HistoryDB
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineStdin sets the reader used for "-" document paths.
func WithPipelineStdin(r io.Reader) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Stdin = r
	}
}

// WithPipelineAsync selects the chunked async analysis path.
func WithPipelineAsync(async bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Async = async
	}
}

// WithPipelineDB enables saving each report to the history database.
func WithPipelineDB(db *database.HistoryDB) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.DB = db
	}
}

// DefaultPipeline creates a pipeline with the standard steps configured:
// decode, analyze, summarize, and (when a database is provided) persist.
//
// Design decision: We provide a default pipeline because:
// 1. Most callers want the full decode-analyze-summarize sequence
// 2. Reduces boilerplate in the CLI
// 3. Ensures consistent step ordering
//
// The first variadic parameter accepts pipeline options (WithLogger, etc).
// The second accepts pipeline config options (WithPipelineAsync, etc).
func DefaultPipeline(a *analyzer.Analyzer, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{}
	for _, opt := range configOpts {
		opt(cfg)
	}

	decodeOpts := []DecodeStepOption{
		WithDecodeLogger(p.logger),
	}
	if cfg.Stdin != nil {
		decodeOpts = append(decodeOpts, WithStdin(cfg.Stdin))
	}

	p.AddSteps(
		NewDecodeStep(decodeOpts...),
		NewAnalyzeStep(a,
			WithAsync(cfg.Async),
			WithAnalyzeLogger(p.logger),
		),
		NewSummarizeStep(),
	)

	if cfg.DB != nil {
		p.AddStep(NewPersistStep(cfg.DB, WithPersistLogger(p.logger)))
	}

	return p
}
