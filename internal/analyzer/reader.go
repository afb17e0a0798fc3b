package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/textutil"
)

// AnalyzeReader analyzes text streamed from r line by line, so memory use
// is bounded by the longest line rather than the whole document. The
// document character limit still applies: reading stops once the budget is
// spent and the result is marked truncated, exactly as Analyze would.
//
// ctx is checked between chunks of lines, mirroring the async runner.
func (a *Analyzer) AnalyzeReader(ctx context.Context, reader io.Reader) (*model.AnalysisResult, error) {
	run := a.newRun()
	br := bufio.NewReader(reader)

	var (
		totalChars int
		totalLines int
	)

	for {
		if totalLines%a.chunkLines == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if raw == "" && err == io.EOF {
			break
		}

		budget := a.maxTextChars - totalChars
		if budget == 0 {
			// The previous line spent the whole budget exactly; more
			// input means the document is truncated.
			run.truncated = true
			break
		}

		chars := textutil.CharCount(raw)
		docTruncated := chars > budget
		if docTruncated {
			raw = textutil.TruncateChars(raw, budget)
			chars = budget
			run.truncated = true
		}
		totalChars += chars

		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		totalLines++
		run.processLine(line, totalLines)

		if docTruncated || err == io.EOF {
			break
		}
	}

	return run.finish(totalChars, totalLines), nil
}
