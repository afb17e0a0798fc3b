package analyzer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/prosescan/prosescan/internal/detect"
	"github.com/prosescan/prosescan/internal/lang"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/textutil"
	"github.com/prosescan/prosescan/internal/token"
)

// Default analysis limits. All of them mark the result as truncated when
// they fire; none of them is an error.
const (
	// DefaultMaxTextChars caps the total characters analyzed per document.
	DefaultMaxTextChars = 500000

	// DefaultMaxLineChars caps the characters analyzed per line.
	DefaultMaxLineChars = 10000

	// DefaultMaxIssues caps the issues collected per document. The cap is
	// document-wide, not per detector; statistics keep accumulating after
	// it is reached.
	DefaultMaxIssues = 500

	// DefaultChunkLines is the number of lines processed between progress
	// events and cancellation checks in async mode.
	DefaultChunkLines = 50
)

// Analyzer analyzes document text and reports writing issues.
type Analyzer struct {
	registry     *detect.Registry
	logger       *slog.Logger
	maxTextChars int
	maxLineChars int
	maxIssues    int
	chunkLines   int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for analysis progress logging.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRegistry replaces the default detector registry.
func WithRegistry(registry *detect.Registry) Option {
	return func(a *Analyzer) {
		if registry != nil {
			a.registry = registry
		}
	}
}

// WithMaxTextChars overrides the document character limit.
func WithMaxTextChars(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxTextChars = n
		}
	}
}

// WithMaxLineChars overrides the per-line character limit.
func WithMaxLineChars(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxLineChars = n
		}
	}
}

// WithMaxIssues overrides the document-wide issue cap.
func WithMaxIssues(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxIssues = n
		}
	}
}

// WithChunkLines overrides the async chunk size.
func WithChunkLines(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.chunkLines = n
		}
	}
}

// New creates an Analyzer with the default detector registry and limits.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		registry:     detect.NewRegistry(detect.DefaultOptions()),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxTextChars: DefaultMaxTextChars,
		maxLineChars: DefaultMaxLineChars,
		maxIssues:    DefaultMaxIssues,
		chunkLines:   DefaultChunkLines,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs a full synchronous analysis of text and returns the result.
// For identical input and rule data the issue sequence is exactly
// reproducible: lines in order, detectors in registry order, first
// occurrence first.
func (a *Analyzer) Analyze(text string) *model.AnalysisResult {
	r := a.newRun()

	text, lines := a.prepare(text, r)
	for i, line := range lines {
		r.processLine(line, i+1)
	}
	return r.finish(textutil.CharCount(text), len(lines))
}

// prepare applies the document-level truncation and splits text into lines.
func (a *Analyzer) prepare(text string, r *run) (string, []string) {
	if textutil.CharCount(text) > a.maxTextChars {
		text = textutil.TruncateChars(text, a.maxTextChars)
		r.truncated = true
		a.logger.Warn("document truncated for analysis",
			slog.Int("max_chars", a.maxTextChars))
	}
	return text, splitLines(text)
}

// run carries the mutable state of one analysis pass. It is owned
// exclusively by the goroutine driving the analysis.
type run struct {
	a          *Analyzer
	dedup      *detect.DedupContext
	issues     []model.Issue
	totalWords int
	truncated  bool
}

func (a *Analyzer) newRun() *run {
	return &run{a: a, dedup: detect.NewDedupContext()}
}

// processLine analyzes one line, appending issues up to the document-wide
// cap. Statistics keep accumulating after the cap is hit.
func (r *run) processLine(line string, lineNumber int) {
	if textutil.CharCount(line) > r.a.maxLineChars {
		line = textutil.TruncateChars(line, r.a.maxLineChars)
		r.truncated = true
	}

	r.dedup.ResetLine()
	tokens := token.Extract(line, lang.Classify(line))
	r.totalWords += len(tokens)

	for _, d := range r.a.registry.Detectors() {
		for _, issue := range d.Detect(line, tokens, lineNumber, r.dedup) {
			if len(r.issues) >= r.a.maxIssues {
				r.truncated = true
				return
			}
			r.issues = append(r.issues, issue)
		}
	}
}

// finish assembles the result from the accumulated run state.
func (r *run) finish(totalChars, totalLines int) *model.AnalysisResult {
	return &model.AnalysisResult{
		Issues: r.issues,
		Stats: model.AnalysisStats{
			"total_chars": totalChars,
			"total_words": r.totalWords,
			"total_lines": totalLines,
		},
		Truncated: r.truncated,
	}
}

// splitLines splits text into lines the way the analysis counts them: a
// trailing newline terminates the last line instead of opening an empty
// one, and carriage returns from CRLF input are stripped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
