package token

import (
	"unicode"

	"github.com/prosescan/prosescan/internal/lang"
)

// Token is a candidate word extracted from a line.
// Start and End are character offsets into the line (half-open range), so
// they can be used directly as issue positions.
type Token struct {
	// Text is the token content after trimming.
	Text string

	// Start is the character offset of the first character of the token.
	Start int

	// End is the character offset one past the last character of the token.
	End int
}

// minTokenChars is the minimum character count for a token to survive
// filtering. Shorter fragments ("a", "an", stray punctuation remnants) are
// noise for dictionary checks.
const minTokenChars = 3

// Extract returns the ordered candidate tokens of line for the given script.
func Extract(line string, script lang.Script) []Token {
	if script == lang.ScriptChinese {
		return extractChinese(line)
	}
	return extractLatin(line)
}

// extractLatin splits on whitespace, trims each field of characters that are
// neither alphanumeric nor apostrophe/hyphen, and filters out short or
// all-digit fragments. CJK runes delimit fields the same way whitespace
// does: Latin-classified lines can still embed ideograph runs, and the
// usable tokens are the Latin words between them, not the glued field.
func extractLatin(line string) []Token {
	var tokens []Token

	charOff := 0
	runStart := 0
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		if tok, ok := trimField(run, runStart); ok {
			tokens = append(tokens, tok)
		}
		run = run[:0]
	}

	for _, r := range line {
		if unicode.IsSpace(r) || lang.IsCJK(r) {
			flush()
		} else {
			if len(run) == 0 {
				runStart = charOff
			}
			run = append(run, r)
		}
		charOff++
	}
	flush()

	return tokens
}

// extractChinese scans character by character, accumulating runs of ASCII
// letters, apostrophes, and hyphens. Any other character flushes the current
// run. CJK characters themselves are never emitted.
func extractChinese(line string) []Token {
	var tokens []Token

	charOff := 0
	runStart := 0
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) >= minTokenChars && !allDigits(run) {
			tokens = append(tokens, Token{
				Text:  string(run),
				Start: runStart,
				End:   runStart + len(run),
			})
		}
		run = run[:0]
	}

	for _, r := range line {
		if isASCIILetter(r) || r == '\'' || r == '-' {
			if len(run) == 0 {
				runStart = charOff
			}
			run = append(run, r)
		} else {
			flush()
		}
		charOff++
	}
	flush()

	return tokens
}

// trimField trims a whitespace-delimited field down to its token form.
// startChar is the character offset of field[0] in the line. Returns false
// when nothing usable remains after trimming and filtering.
func trimField(field []rune, startChar int) (Token, bool) {
	lo := 0
	hi := len(field)

	for lo < hi && !isTokenChar(field[lo]) {
		lo++
	}
	for hi > lo && !isTokenChar(field[hi-1]) {
		hi--
	}

	trimmed := field[lo:hi]
	if len(trimmed) < minTokenChars || allDigits(trimmed) {
		return Token{}, false
	}

	return Token{
		Text:  string(trimmed),
		Start: startChar + lo,
		End:   startChar + hi,
	}, true
}

// isTokenChar reports whether r may appear at the edge of a token.
func isTokenChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

// isASCIILetter reports whether r is an ASCII letter.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// allDigits reports whether every rune in rs is a decimal digit.
func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsCJK reports whether the token text contains a CJK ideograph.
// Latin-classified lines may still carry the odd CJK fragment; detectors use
// this to skip them rather than misreporting them as unknown words.
func (t Token) ContainsCJK() bool {
	for _, r := range t.Text {
		if lang.IsCJK(r) {
			return true
		}
	}
	return false
}
