package model

import (
	"fmt"
	"time"
)

// Summary is a summarized, human-readable view of one document analysis.
// It extracts key findings from the full report for quick review.
//
// Design decision: We create a separate summary rather than printing parts of
// DocumentReport because:
// 1. It provides a consistent, curated view of the most important findings
// 2. It can be serialized to JSON for tools that want structured but simple output
// 3. It separates presentation concerns from the analysis data
type Summary struct {
	// Path is the analyzed document path.
	Path string `json:"path"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// === Severity Summary ===

	// HighCount is the number of high severity issues.
	HighCount int `json:"high_count"`

	// MediumCount is the number of medium severity issues.
	MediumCount int `json:"medium_count"`

	// LowCount is the number of low severity issues.
	LowCount int `json:"low_count"`

	// InfoCount is the number of informational issues.
	InfoCount int `json:"info_count"`

	// === Statistics ===

	// TotalChars is the analyzed character count.
	TotalChars int `json:"total_chars"`

	// TotalWords is the extracted token count.
	TotalWords int `json:"total_words"`

	// TotalLines is the analyzed line count.
	TotalLines int `json:"total_lines"`

	// Truncated indicates the result is a partial view due to a size cap.
	Truncated bool `json:"truncated"`

	// TimedOut indicates the run was cancelled before completion.
	TimedOut bool `json:"timed_out"`

	// Error contains any error message if the analysis failed.
	Error string `json:"error,omitempty"`

	// === Findings ===

	// Findings contains all issues enriched with severity metadata.
	Findings []Finding `json:"findings,omitempty"`
}

// Finding is a single issue enriched for presentation.
type Finding struct {
	// Type is the issue type tag. This maps to issueInfoMapping in severity.go.
	Type string `json:"type"`

	// Severity is the assessed severity level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Message describes the issue.
	Message string `json:"message"`

	// Suggestion is the proposed replacement, if any.
	Suggestion string `json:"suggestion,omitempty"`

	// Impact explains why this finding matters.
	Impact string `json:"impact,omitempty"`

	// Recommendation provides guidance on how to address this finding.
	Recommendation string `json:"recommendation,omitempty"`

	// Location is the issue position formatted as "line:start-end".
	Location string `json:"location,omitempty"`

	// LineNumber is the 1-based line of the issue.
	LineNumber int `json:"line_number"`
}

// NewSummary creates a Summary from a DocumentReport.
func NewSummary(report *DocumentReport) *Summary {
	s := &Summary{
		Path:         report.Path,
		DateAnalyzed: report.DateAnalyzed,
		TimedOut:     report.TimedOut,
	}

	if report.Error != nil {
		s.Error = report.Error.Error()
	}

	if report.Result == nil {
		return s
	}

	s.Truncated = report.Result.Truncated
	s.TotalChars = report.Result.Stats["total_chars"]
	s.TotalWords = report.Result.Stats["total_words"]
	s.TotalLines = report.Result.Stats["total_lines"]

	for _, is := range report.Result.Issues {
		s.addFinding(is)
	}
	s.countBySeverity()

	return s
}

// addFinding converts an Issue into an enriched Finding.
func (s *Summary) addFinding(is Issue) {
	info := GetIssueInfo(is.Type)
	s.Findings = append(s.Findings, Finding{
		Type:           is.Type,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Message:        is.Message,
		Suggestion:     is.Suggestion,
		Impact:         info.Impact,
		Recommendation: info.Recommendation,
		Location:       formatLocation(is),
		LineNumber:     is.LineNumber,
	})
}

// countBySeverity counts findings by severity level.
func (s *Summary) countBySeverity() {
	for _, f := range s.Findings {
		switch f.Severity {
		case SeverityHigh:
			s.HighCount++
		case SeverityMedium:
			s.MediumCount++
		case SeverityLow:
			s.LowCount++
		case SeverityInfo:
			s.InfoCount++
		}
	}
}

// TotalFindings returns the total number of findings.
func (s *Summary) TotalFindings() int {
	return len(s.Findings)
}

// HasFindings returns true if there are any findings.
func (s *Summary) HasFindings() bool {
	return len(s.Findings) > 0
}

// FindingsBySeverity returns findings filtered by severity.
func (s *Summary) FindingsBySeverity(severity Severity) []Finding {
	var result []Finding
	for _, f := range s.Findings {
		if f.Severity == severity {
			result = append(result, f)
		}
	}
	return result
}

// formatLocation renders an issue position as "line:start-end".
func formatLocation(is Issue) string {
	return fmt.Sprintf("%d:%d-%d", is.LineNumber, is.Start, is.End)
}
