package model

// Issue type tags emitted by the built-in detectors.
// Detector implementations must use these constants rather than ad-hoc
// strings so that severity lookup and deduplication stay consistent.
const (
	// IssueSpelling is a known misspelling with a table-backed correction.
	IssueSpelling = "spelling"

	// IssueUnknownWord is a token absent from the known-word dictionary.
	IssueUnknownWord = "unknown-word"

	// IssuePhrase is a multi-word typo or redundant expression.
	IssuePhrase = "phrase"

	// IssueTitle is a heading-specific style or typo problem.
	IssueTitle = "title"

	// IssueRepeat is a repeated adjacent word or character run.
	IssueRepeat = "repeat"

	// IssueSentenceLength is a sentence exceeding the length threshold.
	IssueSentenceLength = "sentence-length"

	// IssuePunctuation is redundant or duplicated terminal punctuation.
	IssuePunctuation = "punctuation"
)

// Issue is a single localized writing issue.
//
// Start and End are character offsets into the line identified by LineNumber,
// not into the whole document. The invariant 0 <= Start <= End <= char count
// of the line holds for every issue the engine emits, and both offsets always
// land on character boundaries.
type Issue struct {
	// LineNumber is the 1-based line the issue was found on.
	LineNumber int `json:"line_number"`

	// Start is the character offset where the issue span begins.
	Start int `json:"start"`

	// End is the character offset one past the issue span.
	End int `json:"end"`

	// Type is the issue type tag (one of the Issue* constants).
	Type string `json:"issue_type"`

	// Message is a human-readable description of the issue.
	Message string `json:"message"`

	// Suggestion is the proposed replacement text, empty when the engine
	// has nothing concrete to offer.
	Suggestion string `json:"suggestion,omitempty"`
}

// AnalysisStats maps metric names to counts.
// The standard keys are "total_chars", "total_words", and "total_lines";
// detectors and callers must treat the map as read-only after analysis.
type AnalysisStats map[string]int

// AnalysisResult is the aggregate outcome of one analysis run.
//
// Truncated reports lossy degradation, not failure: when true, either the
// input text, an individual line, or the issue list hit a configured cap and
// the result is a valid partial view.
type AnalysisResult struct {
	// Issues is the ordered issue list, in line-then-detector-then-first-
	// occurrence order. The ordering is deterministic for identical input.
	Issues []Issue `json:"issues"`

	// Stats holds summary statistics over the (possibly truncated) text.
	Stats AnalysisStats `json:"stats"`

	// Truncated is true when any size cap was applied.
	Truncated bool `json:"truncated"`
}

// TotalIssues returns the number of issues in the result.
func (r *AnalysisResult) TotalIssues() int {
	return len(r.Issues)
}

// IssuesOfType returns the issues matching the given type tag.
func (r *AnalysisResult) IssuesOfType(issueType string) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Type == issueType {
			out = append(out, is)
		}
	}
	return out
}
