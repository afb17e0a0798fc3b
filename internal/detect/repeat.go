package detect

import (
	"fmt"
	"unicode"

	"github.com/prosescan/prosescan/internal/lang"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/token"
)

// minRepeatWordChars is the smallest word length the Latin repeat check
// considers. Short function words ("the the") are caught too aggressively
// below this, and doubled short words are sometimes intentional.
const minRepeatWordChars = 4

// RepeatDetector flags accidental doubling: two identical adjacent
// whitespace-delimited words in Latin text, or a run of two or more
// identical adjacent ideographs in Chinese text. Legitimate Chinese
// reduplications (渐渐, 慢慢) are exempt.
type RepeatDetector struct{}

// Name returns the detector name.
func (r *RepeatDetector) Name() string {
	return "repeat"
}

// Detect reports each repeated span once, covering the whole repetition
// rather than a single copy.
func (r *RepeatDetector) Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue {
	issues := r.detectLatin(line, lineNumber, dedup)
	issues = append(issues, r.detectChinese(line, lineNumber)...)
	return issues
}

// field is a whitespace-delimited run of characters with its char offsets.
type field struct {
	text  string
	start int
	end   int
}

func (r *RepeatDetector) detectLatin(line string, lineNumber int, dedup *DedupContext) []model.Issue {
	fields := splitFields(line)

	var issues []model.Issue
	for i := 0; i+1 < len(fields); i++ {
		cur, next := fields[i], fields[i+1]
		if cur.text != next.text {
			continue
		}
		if cur.end-cur.start < minRepeatWordChars {
			continue
		}
		if containsCJK(cur.text) {
			continue
		}
		if dedup.SeenInLine("repeat:" + cur.text) {
			continue
		}
		issues = append(issues, model.Issue{
			LineNumber: lineNumber,
			Start:      cur.start,
			End:        next.end,
			Type:       model.IssueRepeat,
			Message:    fmt.Sprintf("repeated word: %q", cur.text),
			Suggestion: fmt.Sprintf("remove the duplicate %q", cur.text),
		})
		dedup.AddLine("repeat:" + cur.text)
	}
	return issues
}

func (r *RepeatDetector) detectChinese(line string, lineNumber int) []model.Issue {
	var issues []model.Issue

	var (
		prev      rune
		runLen    int
		runStart  int
		charIndex int
	)
	flush := func() {
		if runLen >= 2 && !isAllowedReduplication(prev, runLen) {
			issues = append(issues, model.Issue{
				LineNumber: lineNumber,
				Start:      runStart,
				End:        runStart + runLen,
				Type:       model.IssueRepeat,
				Message:    fmt.Sprintf("repeated character: %q", string(prev)),
				Suggestion: fmt.Sprintf("remove the duplicate %q", string(prev)),
			})
		}
		runLen = 0
	}

	for _, c := range line {
		if lang.IsCJK(c) && c == prev {
			runLen++
			charIndex++
			continue
		}
		flush()
		prev = c
		runLen = 1
		runStart = charIndex
		charIndex++
	}
	flush()
	return issues
}

// splitFields splits a line on whitespace, keeping character offsets.
func splitFields(line string) []field {
	var (
		fields    []field
		cur       []rune
		start     int
		charIndex int
	)
	for _, c := range line {
		if unicode.IsSpace(c) {
			if len(cur) > 0 {
				fields = append(fields, field{text: string(cur), start: start, end: charIndex})
				cur = cur[:0]
			}
		} else {
			if len(cur) == 0 {
				start = charIndex
			}
			cur = append(cur, c)
		}
		charIndex++
	}
	if len(cur) > 0 {
		fields = append(fields, field{text: string(cur), start: start, end: charIndex})
	}
	return fields
}

// allowedReduplication lists doubled ideographs that form legitimate words.
var allowedReduplication = map[rune]struct{}{
	'渐': {}, '慢': {}, '常': {}, '往': {}, '刚': {}, '仅': {}, '每': {},
	'处': {}, '纷': {}, '默': {}, '悄': {}, '徐': {}, '缓': {}, '轻': {},
	'深': {}, '种': {}, '层': {}, '步': {}, '人': {}, '天': {}, '年': {},
	'家': {}, '时': {}, '久': {}, '多': {}, '大': {}, '小': {}, '高': {},
	'远': {}, '重': {}, '细': {}, '密': {}, '满': {}, '好': {}, '真': {},
}

// isAllowedReduplication reports whether a run of n copies of c is a
// legitimate reduplicated word rather than an accidental doubling. Only
// exact pairs qualify; three or more copies are always suspect.
func isAllowedReduplication(c rune, n int) bool {
	if n != 2 {
		return false
	}
	if !lang.IsCJK(c) {
		return false
	}
	_, ok := allowedReduplication[c]
	return ok
}
