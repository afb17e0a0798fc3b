package detect

import (
	"fmt"

	"github.com/prosescan/prosescan/internal/dict"
	"github.com/prosescan/prosescan/internal/lang"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/textutil"
	"github.com/prosescan/prosescan/internal/token"
)

// PhraseDetector flags wordy, informal, or filler expressions. Latin
// phrases are matched as whole words so "in order to" does not fire inside
// "disorder"; CJK phrases are matched as plain substrings because Chinese
// prose has no word delimiters.
type PhraseDetector struct {
	phrases []dict.Phrase
}

// Name returns the detector name.
func (p *PhraseDetector) Name() string {
	return "phrase"
}

// Detect reports each listed phrase at most once per line, at its first
// occurrence.
func (p *PhraseDetector) Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue {
	var issues []model.Issue

	for _, phrase := range p.phrases {
		if dedup.SeenInLine(phrase.Text) {
			continue
		}

		var (
			span  textutil.Span
			found bool
		)
		if containsCJK(phrase.Text) {
			span, found = textutil.FindSubstring(line, phrase.Text)
		} else {
			span, found = textutil.FindWholeWord(line, phrase.Text)
		}
		if !found {
			continue
		}

		issues = append(issues, model.Issue{
			LineNumber: lineNumber,
			Start:      span.Start,
			End:        span.End,
			Type:       model.IssuePhrase,
			Message:    fmt.Sprintf("expression to avoid in formal writing: %q", phrase.Text),
			Suggestion: fmt.Sprintf("consider: %s", phrase.Suggestion),
		})
		dedup.AddLine(phrase.Text)
	}
	return issues
}

// containsCJK reports whether s contains at least one CJK ideograph.
func containsCJK(s string) bool {
	for _, r := range s {
		if lang.IsCJK(r) {
			return true
		}
	}
	return false
}
