package model

// AnalysisProgress is a snapshot of an in-flight async run.
// Within one run, Progress and CurrentLine are monotonically non-decreasing
// and CurrentLine never exceeds TotalLines.
type AnalysisProgress struct {
	// Progress is the completion percentage in [0, 100].
	Progress float64 `json:"progress"`

	// CurrentLine is the number of lines processed so far.
	CurrentLine int `json:"current_line"`

	// TotalLines is the total number of lines in the run.
	TotalLines int `json:"total_lines"`

	// IssuesFound is the cumulative issue count so far.
	IssuesFound int `json:"issues_found"`

	// Message is a short human-readable status line.
	Message string `json:"message"`
}

// AsyncEvent is the payload delivered on an async run's event stream.
// Exactly one of Progress, Result, or Error is populated per event.
// Completed is true only for the final event of a run that was not cancelled.
type AsyncEvent struct {
	// RunID identifies the run this event belongs to. Callers that start a
	// new run must drop events carrying a stale RunID.
	RunID string `json:"run_id"`

	// Completed is true for the terminal event of the run.
	Completed bool `json:"completed"`

	// Progress is set on intermediate progress events.
	Progress *AnalysisProgress `json:"progress,omitempty"`

	// Result is set on the terminal event of a successful run.
	Result *AnalysisResult `json:"result,omitempty"`

	// Error is set on the terminal event of a failed run.
	Error string `json:"error,omitempty"`
}
