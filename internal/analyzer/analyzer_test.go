package analyzer

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/prosescan/prosescan/internal/model"
)

func TestAnalyzeBasics(t *testing.T) {
	t.Parallel()

	a := New()
	text := "teh cat sat teh mat\n本研究采用了严谨的方法论。\n"
	result := a.Analyze(text)

	if result.Truncated {
		t.Error("Truncated = true, want false")
	}
	if got := len(result.Issues); got != 1 {
		t.Fatalf("issues = %d, want 1: %+v", got, result.Issues)
	}
	issue := result.Issues[0]
	if issue.Type != model.IssueSpelling || issue.LineNumber != 1 {
		t.Errorf("issue = %+v, want spelling issue on line 1", issue)
	}

	wantStats := model.AnalysisStats{
		"total_chars": 34,
		"total_words": 5,
		"total_lines": 2,
	}
	if !reflect.DeepEqual(result.Stats, wantStats) {
		t.Errorf("stats = %+v, want %+v", result.Stats, wantStats)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	t.Parallel()

	result := New().Analyze("")
	if len(result.Issues) != 0 || result.Truncated {
		t.Errorf("result = %+v, want empty and not truncated", result)
	}
	if result.Stats["total_lines"] != 0 {
		t.Errorf("total_lines = %d, want 0", result.Stats["total_lines"])
	}
}

func TestAnalyzeTruncatesDocument(t *testing.T) {
	t.Parallel()

	a := New(WithMaxTextChars(10))
	result := a.Analyze("teh cat sat teh mat")

	if !result.Truncated {
		t.Error("Truncated = false, want true")
	}
	if got := result.Stats["total_chars"]; got != 10 {
		t.Errorf("total_chars = %d, want 10", got)
	}
	if len(result.Issues) != 1 || result.Issues[0].Start != 0 {
		t.Errorf("issues = %+v, want the leading typo only", result.Issues)
	}
}

func TestAnalyzeTruncatesLongLines(t *testing.T) {
	t.Parallel()

	a := New(WithMaxLineChars(7))
	result := a.Analyze("the cat recieve")

	if !result.Truncated {
		t.Error("Truncated = false, want true")
	}
	for _, issue := range result.Issues {
		if issue.End > 7 {
			t.Errorf("issue %+v extends past the line limit", issue)
		}
	}
}

func TestAnalyzeIssueCap(t *testing.T) {
	t.Parallel()

	a := New(WithMaxIssues(2))
	result := a.Analyze("teh cat\nrecieve cat\nwierd cat\nseperate cat")

	if got := len(result.Issues); got != 2 {
		t.Fatalf("issues = %d, want 2", got)
	}
	if !result.Truncated {
		t.Error("Truncated = false, want true when the cap drops issues")
	}
	// Stats still cover the whole document.
	if got := result.Stats["total_lines"]; got != 4 {
		t.Errorf("total_lines = %d, want 4", got)
	}
}

func manyLines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "line %d has teh same old problems\n", i)
	}
	return sb.String()
}

func TestAsyncMatchesSync(t *testing.T) {
	t.Parallel()

	a := New()
	text := manyLines(120)

	want := a.Analyze(text)

	var got *model.AnalysisResult
	for ev := range a.AnalyzeAsync(context.Background(), "run-1", text) {
		if ev.Completed {
			got = ev.Result
		}
	}
	if got == nil {
		t.Fatal("no completion event received")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("async result differs from sync:\nasync: %+v\nsync:  %+v", got, want)
	}
}

func TestAsyncProgressMonotonic(t *testing.T) {
	t.Parallel()

	a := New(WithChunkLines(10))
	text := manyLines(95)

	var (
		progress    []model.AnalysisProgress
		completions int
	)
	for ev := range a.AnalyzeAsync(context.Background(), "run-1", text) {
		switch {
		case ev.Completed:
			completions++
			if ev.Result == nil {
				t.Error("completion event without result")
			}
		case ev.Progress != nil:
			progress = append(progress, *ev.Progress)
		}
	}

	if completions != 1 {
		t.Fatalf("completion events = %d, want 1", completions)
	}
	if len(progress) != 10 {
		t.Fatalf("progress events = %d, want 10", len(progress))
	}
	for i, p := range progress {
		if p.CurrentLine > p.TotalLines {
			t.Errorf("progress[%d]: current_line %d > total_lines %d", i, p.CurrentLine, p.TotalLines)
		}
		if i == 0 {
			continue
		}
		prev := progress[i-1]
		if p.CurrentLine < prev.CurrentLine || p.Progress < prev.Progress {
			t.Errorf("progress[%d] = %+v regressed from %+v", i, p, prev)
		}
	}
	if last := progress[len(progress)-1]; last.Progress != 100 || last.CurrentLine != 95 {
		t.Errorf("final progress = %+v, want 100%% at line 95", last)
	}
}

func TestAsyncCancellation(t *testing.T) {
	t.Parallel()

	a := New(WithChunkLines(10))
	text := manyLines(500)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := a.AnalyzeAsync(ctx, "run-1", text)

	cancelled := false
	for ev := range events {
		if ev.Completed {
			t.Fatal("completion event received after cancellation")
		}
		if !cancelled {
			cancel()
			cancelled = true
		}
	}
	if !cancelled {
		t.Fatal("run finished without emitting any progress")
	}
}

func TestAsyncEventsCarryRunID(t *testing.T) {
	t.Parallel()

	a := New()
	for ev := range a.AnalyzeAsync(context.Background(), "run-42", "teh cat") {
		if ev.RunID != "run-42" {
			t.Errorf("event run ID = %q, want run-42", ev.RunID)
		}
	}
}

func TestSessionInvalidatesPriorRun(t *testing.T) {
	t.Parallel()

	session := NewSession(New())

	firstID, firstEvents := session.Start(context.Background(), "teh cat")
	secondID, secondEvents := session.Start(context.Background(), "teh dog")

	if !session.Stale(firstID) {
		t.Errorf("Stale(%q) = false, want true after a new run started", firstID)
	}
	if session.Stale(secondID) {
		t.Errorf("Stale(%q) = true, want false for the current run", secondID)
	}

	// Superseded runs still deliver their events; the caller drops them.
	for range firstEvents {
	}
	for range secondEvents {
	}
}

func TestAnalyzeReaderMatchesAnalyze(t *testing.T) {
	t.Parallel()

	a := New()
	text := "teh cat sat teh mat\n本研究采用了machien learning方法\nthe results results show improvement\n"

	want := a.Analyze(text)
	got, err := a.AnalyzeReader(context.Background(), strings.NewReader(text))
	if err != nil {
		t.Fatalf("AnalyzeReader() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reader result differs:\nreader: %+v\nanalyze: %+v", got, want)
	}
}

func TestAnalyzeReaderTruncates(t *testing.T) {
	t.Parallel()

	a := New(WithMaxTextChars(10))
	got, err := a.AnalyzeReader(context.Background(), strings.NewReader("teh cat sat teh mat"))
	if err != nil {
		t.Fatalf("AnalyzeReader() error = %v", err)
	}
	if !got.Truncated {
		t.Error("Truncated = false, want true")
	}
	if got.Stats["total_chars"] != 10 {
		t.Errorf("total_chars = %d, want 10", got.Stats["total_chars"])
	}
}

func TestAnalyzeReaderCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().AnalyzeReader(ctx, strings.NewReader("teh cat"))
	if err == nil {
		t.Fatal("AnalyzeReader() error = nil, want context error")
	}
}
