package detect

import (
	"fmt"

	"github.com/prosescan/prosescan/internal/lang"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/token"
)

// SentenceDetector walks sentence-terminating punctuation to bound
// sentences and flags those exceeding a per-script length threshold. It
// also flags runs of consecutive punctuation marks.
type SentenceDetector struct {
	maxLatin   int
	maxChinese int
}

// Name returns the detector name.
func (s *SentenceDetector) Name() string {
	return "sentence"
}

// Detect reports over-long sentences and doubled punctuation on one line.
// All offsets are character offsets, so thresholds compare equally for
// single-byte and multi-byte scripts.
func (s *SentenceDetector) Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue {
	limit := s.maxLatin
	if lang.Classify(line) == lang.ScriptChinese {
		limit = s.maxChinese
	}

	var issues []model.Issue
	issues = append(issues, s.detectLongSentences(line, lineNumber, limit)...)
	issues = append(issues, s.detectPunctuationRuns(line, lineNumber)...)
	issues = append(issues, s.detectMixedPunctuation(line, lineNumber)...)
	return issues
}

// detectMixedPunctuation flags lines that mix Chinese and ASCII clause
// punctuation, a common artifact of switching input methods mid-sentence.
func (s *SentenceDetector) detectMixedPunctuation(line string, lineNumber int) []model.Issue {
	var hasASCII, hasCJK bool
	charCount := 0
	for _, c := range line {
		charCount++
		switch c {
		case ',', '.', '!', '?', ';', ':':
			hasASCII = true
		case '，', '。', '！', '？', '；', '：', '、':
			hasCJK = true
		}
	}
	if !hasASCII || !hasCJK {
		return nil
	}
	return []model.Issue{{
		LineNumber: lineNumber,
		Start:      0,
		End:        charCount,
		Type:       model.IssuePunctuation,
		Message:    "mixed Chinese and English punctuation",
		Suggestion: "use one punctuation style consistently",
	}}
}

func (s *SentenceDetector) detectLongSentences(line string, lineNumber int, limit int) []model.Issue {
	var (
		issues    []model.Issue
		start     int
		charIndex int
	)
	flush := func(end int) {
		if end-start > limit {
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      start,
				End:        end,
				Type:       model.IssueSentenceLength,
				Message:    fmt.Sprintf("sentence is %d characters long", end-start),
				Suggestion: "consider splitting it into shorter sentences",
			})
		}
		start = end
	}

	for _, c := range line {
		charIndex++
		if isSentenceTerminal(c) {
			flush(charIndex)
		}
	}
	flush(charIndex)
	return issues
}

func (s *SentenceDetector) detectPunctuationRuns(line string, lineNumber int) []model.Issue {
	var (
		issues    []model.Issue
		runStart  int
		runLen    int
		charIndex int
	)
	flush := func() {
		if runLen >= 2 {
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      runStart,
				End:        runStart + runLen,
				Type:       model.IssuePunctuation,
				Message:    "consecutive punctuation marks",
				Suggestion: "use a single punctuation mark",
			})
		}
		runLen = 0
	}

	for _, c := range line {
		if isClausePunct(c) {
			if runLen == 0 {
				runStart = charIndex
			}
			runLen++
		} else {
			flush()
		}
		charIndex++
	}
	flush()
	return issues
}

// isSentenceTerminal reports whether c ends a sentence.
func isSentenceTerminal(c rune) bool {
	switch c {
	case '.', '!', '?', '。', '！', '？', '；', ';':
		return true
	}
	return false
}

// isClausePunct reports whether c is a terminal or pause mark counted by
// the doubled-punctuation check. Commas and enumeration commas are
// included; quote and bracket characters are not, since they legitimately
// sit next to other punctuation.
func isClausePunct(c rune) bool {
	switch c {
	case ',', '.', '!', '?', ';', ':', '，', '。', '！', '？', '；', '：', '、':
		return true
	}
	return false
}
