package detect

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prosescan/prosescan/internal/dict"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/textutil"
	"github.com/prosescan/prosescan/internal/token"
)

// maxHeadingTokens is the largest token count a line may have and still be
// treated as a heading.
const maxHeadingTokens = 12

// TitleDetector applies heading-specific rules: title-case misspellings
// from a dedicated table, and phrasing too casual for a heading. It only
// fires on lines that look like headings.
type TitleDetector struct {
	typos  map[string]string
	casual []dict.Phrase
}

// Name returns the detector name.
func (t *TitleDetector) Name() string {
	return "title"
}

// Detect checks heading lines for title-case typos and casual phrasing.
// Typos are deduplicated against the document scope, so a heading word the
// spelling detector already flagged anywhere in the document is not
// reported again.
func (t *TitleDetector) Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue {
	if !isHeading(line, tokens) {
		return nil
	}

	var issues []model.Issue

	for _, tok := range tokens {
		if tok.ContainsCJK() {
			continue
		}
		if dedup.Seen(tok.Text) {
			continue
		}
		for typo, correction := range t.typos {
			if !strings.EqualFold(tok.Text, typo) {
				continue
			}
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      tok.Start,
				End:        tok.End,
				Type:       model.IssueTitle,
				Message:    fmt.Sprintf("possible misspelling in heading: %q", tok.Text),
				Suggestion: fmt.Sprintf("replace with %q", correction),
			})
			dedup.Add(tok.Text)
			break
		}
	}

	for _, phrase := range t.casual {
		if dedup.SeenInLine(phrase.Text) {
			continue
		}
		span, found := textutil.FindWholeWord(line, phrase.Text)
		if !found {
			continue
		}
		issues = append(issues, model.Issue{
			LineNumber: lineNumber,
			Start:      span.Start,
			End:        span.End,
			Type:       model.IssueTitle,
			Message:    fmt.Sprintf("casual phrasing in heading: %q", phrase.Text),
			Suggestion: fmt.Sprintf("consider: %s", phrase.Suggestion),
		})
		dedup.AddLine(phrase.Text)
	}
	return issues
}

// isHeading reports whether the line looks like a title or section heading:
// a markdown heading, a numbered section label, or a short line with no
// terminal punctuation.
func isHeading(line string, tokens []token.Token) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	if startsWithSectionNumber(trimmed) {
		return true
	}
	if len(tokens) > maxHeadingTokens {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return !strings.ContainsRune(".!?;,。！？；，", last)
}

// startsWithSectionNumber reports whether the line begins with a section
// label such as "1.", "2.3", or "1.2.1".
func startsWithSectionNumber(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return false
	}
	// "1." at line start is a label; "1.5 million" in prose is not, but a
	// heading check tolerates that ambiguity.
	return true
}
