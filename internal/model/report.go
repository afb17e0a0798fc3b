package model

import (
	"io"
	"time"
)

// DocumentReport accumulates everything known about one analyzed document.
// Pipeline steps fill it in sequence: decoding sets Text and Format, analysis
// sets Result, and summarization derives Summary for the report writers.
type DocumentReport struct {
	// Path is the source document path, or "-" for stdin input.
	Path string `json:"path"`

	// Format is the detected document format ("txt", "docx", "doc", "pdf",
	// "md"). Empty until the decode step has run.
	Format string `json:"format,omitempty"`

	// Text is the decoded document content. Excluded from JSON output and
	// database storage because it can be arbitrarily large.
	Text string `json:"-"`

	// Source streams the document content instead of Text. The decode
	// step sets it for inputs it chooses not to load whole (stdin, large
	// plain-text files); the analyze step consumes and closes it.
	Source io.Reader `json:"-"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Result is the analysis outcome. Nil until the analyze step has run.
	Result *AnalysisResult `json:"result,omitempty"`

	// Summary is the summarized view used by report writers.
	Summary *Summary `json:"summary,omitempty"`

	// TimedOut indicates the run was cancelled before completion.
	TimedOut bool `json:"timed_out"`

	// Error holds the failure that stopped the pipeline, if any.
	Error error `json:"-"`

	// ErrorMessage mirrors Error for serialization.
	ErrorMessage string `json:"error,omitempty"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`
}

// NewDocumentReport creates a report for the given document path.
func NewDocumentReport(path string) *DocumentReport {
	return &DocumentReport{
		Path:         path,
		DateAnalyzed: time.Now(),
	}
}
