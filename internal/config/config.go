package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/prosescan/prosescan/internal/analyzer"
	"github.com/prosescan/prosescan/internal/detect"
)

// Default configuration values. The analysis limits live in the analyzer
// package; these cover the application-level settings.
const (
	// DefaultBatchSize of 4 concurrent file checks keeps multi-file runs
	// fast without saturating the disk on laptops. Analysis is CPU-light,
	// so decoding dominates; more workers mostly add contention.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "prosescan"
)

// Config holds all configuration options for prosescan.
// This struct is populated from CLI flags and the optional rule file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Targets is the list of document paths to check.
	Targets []string

	// Stdin indicates the text to check arrives on standard input.
	// Set when no target paths are given and stdin is not a terminal.
	Stdin bool

	// MaxTextChars caps the characters analyzed per document.
	// Zero means the analyzer default.
	MaxTextChars int

	// MaxLineChars caps the characters analyzed per line.
	// Zero means the analyzer default.
	MaxLineChars int

	// MaxIssues caps the issues collected per document.
	// Zero means the analyzer default.
	MaxIssues int

	// ChunkLines is the async chunk size in lines.
	// Zero means the analyzer default.
	ChunkLines int

	// BatchSize is the number of files checked concurrently.
	BatchSize int

	// Async runs the analysis through the chunked background path and
	// prints progress. Mostly useful for very large documents.
	Async bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// RuleFilePath is the path to the rule file. If empty, the tool
	// searches for .prosescan in the current directory and then in the
	// user's home directory.
	RuleFilePath string

	// Rules holds the loaded rule file, if any.
	Rules *RuleFile

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written there instead of stdout.
	ReportFile string

	// DBDir is the directory path for the SQLite history database.
	// When empty, runs are not persisted.
	DBDir string

	// SaveToDB indicates whether to save analysis runs to the database.
	// Automatically set to true when DBDir is configured.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero and this documents
// what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxTextChars: analyzer.DefaultMaxTextChars,
		MaxLineChars: analyzer.DefaultMaxLineChars,
		MaxIssues:    analyzer.DefaultMaxIssues,
		ChunkLines:   analyzer.DefaultChunkLines,
		BatchSize:    DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for prosescan.
// On Linux: ~/.local/share/prosescan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for prosescan.
// On Linux: ~/.config/prosescan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 && !c.Stdin {
		return ErrNoInput
	}
	if c.MaxTextChars < 0 || c.MaxLineChars < 0 || c.MaxIssues < 0 || c.ChunkLines < 0 {
		return ErrInvalidLimit
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// AnalyzerOptions assembles the analyzer options implied by the config and
// rule file, including the detector registry with any extra words, ignored
// words, and typo corrections.
func (c *Config) AnalyzerOptions() []analyzer.Option {
	detOpts := detect.DefaultOptions()
	if c.Rules != nil {
		detOpts.Dictionary = c.Rules.Dictionary()
		detOpts.IgnoreWords = c.Rules.IgnoreWords
		detOpts.ExtraTypos = c.Rules.Typos
		if c.Rules.SentenceLatin > 0 {
			detOpts.MaxSentenceCharsLatin = c.Rules.SentenceLatin
		}
		if c.Rules.SentenceChinese > 0 {
			detOpts.MaxSentenceCharsChinese = c.Rules.SentenceChinese
		}
	}

	return []analyzer.Option{
		analyzer.WithRegistry(detect.NewRegistry(detOpts)),
		analyzer.WithMaxTextChars(c.MaxTextChars),
		analyzer.WithMaxLineChars(c.MaxLineChars),
		analyzer.WithMaxIssues(c.MaxIssues),
		analyzer.WithChunkLines(c.ChunkLines),
	}
}
