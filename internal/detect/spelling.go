package detect

import (
	"fmt"
	"strings"

	"github.com/prosescan/prosescan/internal/dict"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/token"
)

// SpellingDetector checks each Latin token against a table of known
// misspellings and then against the known-word dictionary. Table hits carry
// a concrete correction; dictionary misses only say the word is unknown.
type SpellingDetector struct {
	dictionary *dict.Dictionary
	typos      map[string]string
	ignore     map[string]struct{}
}

// Name returns the detector name.
func (s *SpellingDetector) Name() string {
	return "spelling"
}

// Detect flags misspelled and unknown tokens on one line. A token is
// reported at its first occurrence only; repeated occurrences within the
// line are suppressed through the line scope, while the document scope
// entry keeps later detectors from reporting the same token.
func (s *SpellingDetector) Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue {
	var issues []model.Issue

	for _, tok := range tokens {
		if tok.ContainsCJK() {
			continue
		}
		if dedup.SeenInLine(tok.Text) {
			continue
		}

		lower := strings.ToLower(tok.Text)
		if _, ok := s.ignore[lower]; ok {
			continue
		}

		if correction, ok := s.typos[lower]; ok {
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      tok.Start,
				End:        tok.End,
				Type:       model.IssueSpelling,
				Message:    fmt.Sprintf("possible misspelling: %q", tok.Text),
				Suggestion: fmt.Sprintf("replace with %q", correction),
			})
			dedup.Add(tok.Text)
			continue
		}

		// Hyphenated compounds are usually domain terms; capitalized
		// words are usually proper nouns. Neither belongs in the base
		// dictionary, so flagging them would mostly produce noise.
		if strings.Contains(tok.Text, "-") {
			continue
		}
		// Contractions are the phrase detector's job: it carries the
		// formal-writing corrections ("can't" -> "cannot"). Reporting a
		// dictionary miss here would also mark the token seen and
		// suppress that better message.
		if strings.Contains(tok.Text, "'") {
			continue
		}
		if isCapitalized(tok.Text) {
			continue
		}

		if !s.dictionary.Contains(tok.Text) {
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      tok.Start,
				End:        tok.End,
				Type:       model.IssueUnknownWord,
				Message:    fmt.Sprintf("word not found in dictionary: %q", tok.Text),
				Suggestion: "check the spelling",
			})
			dedup.Add(tok.Text)
		}
	}
	return issues
}

// isCapitalized reports whether the token starts with an ASCII uppercase
// letter.
func isCapitalized(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// normalizeIgnoreWord canonicalizes an ignore-list entry for lookup.
func normalizeIgnoreWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
