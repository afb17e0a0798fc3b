package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/textutil"
)

// AnalyzeAsync starts a chunked background analysis of text and returns the
// event channel. The channel delivers zero or more progress events followed
// by exactly one completion event carrying the final result, then closes.
//
// Cancellation is cooperative: ctx is checked between chunks, never
// mid-line or mid-detector. A cancelled run closes the channel without a
// completion event; the caller treats that as aborted, not failed.
//
// Design decision: We deliver events over an unbuffered channel rather than
// invoking callbacks because:
//  1. The caller controls where events are consumed (UI loop, test, CLI)
//  2. Backpressure comes for free; the run pauses while the caller is busy
//  3. Channel close is an unambiguous end-of-run signal
func (a *Analyzer) AnalyzeAsync(ctx context.Context, runID, text string) <-chan model.AsyncEvent {
	events := make(chan model.AsyncEvent)

	go func() {
		defer close(events)

		r := a.newRun()
		text, lines := a.prepare(text, r)
		totalLines := len(lines)

		for start := 0; start < totalLines; start += a.chunkLines {
			if ctx.Err() != nil {
				a.logger.Debug("analysis cancelled",
					slog.String("run_id", runID),
					slog.Int("lines_done", start))
				return
			}

			end := min(start+a.chunkLines, totalLines)
			for i := start; i < end; i++ {
				r.processLine(lines[i], i+1)
			}

			progress := &model.AnalysisProgress{
				Progress:    float64(end) / float64(totalLines) * 100,
				CurrentLine: end,
				TotalLines:  totalLines,
				IssuesFound: len(r.issues),
				Message:     fmt.Sprintf("analyzed %d/%d lines", end, totalLines),
			}
			if !send(ctx, events, model.AsyncEvent{RunID: runID, Progress: progress}) {
				return
			}
		}

		result := r.finish(textutil.CharCount(text), totalLines)
		send(ctx, events, model.AsyncEvent{RunID: runID, Completed: true, Result: result})
	}()

	return events
}

// send delivers one event unless the run was cancelled first.
func send(ctx context.Context, events chan<- model.AsyncEvent, ev model.AsyncEvent) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case events <- ev:
		return true
	}
}

// Session tracks the single "current" async run for one caller. Starting a
// new run invalidates interest in the previous run's events; the engine
// keeps delivering them, tagged with their run ID, and the caller drops the
// stale ones.
type Session struct {
	mu       sync.Mutex
	analyzer *Analyzer
	seq      int
	current  string
}

// NewSession creates a Session around an Analyzer.
func NewSession(a *Analyzer) *Session {
	return &Session{analyzer: a}
}

// Start begins a new async run and returns its ID and event channel.
func (s *Session) Start(ctx context.Context, text string) (string, <-chan model.AsyncEvent) {
	s.mu.Lock()
	s.seq++
	runID := fmt.Sprintf("run-%06d", s.seq)
	s.current = runID
	s.mu.Unlock()

	return runID, s.analyzer.AnalyzeAsync(ctx, runID, text)
}

// Stale reports whether runID belongs to a superseded run.
func (s *Session) Stale(runID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return runID != s.current
}
