package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TruncateChars returns a prefix of s containing at most maxChars characters.
// The result never splits a multi-byte character and the scan stops as soon
// as the boundary is found, so the cost is O(maxChars) regardless of how long
// s is. TruncateChars is idempotent: truncating an already-truncated string
// with the same limit returns it unchanged.
func TruncateChars(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == maxChars {
			return s[:i]
		}
		count++
	}

	// Fewer than maxChars characters in total.
	return s
}

// CharCount returns the number of characters (runes) in s.
// This is the length measure used everywhere in the engine; byte length and
// character length diverge for multi-byte scripts.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Span is a half-open character range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// FindWholeWord locates the first whole-word occurrence of word in line and
// returns its character span. A match counts as a whole word when the
// characters immediately before and after it are not letters or digits.
// The boolean result is false when no whole-word occurrence exists.
//
// The scan advances rune by rune so the returned offsets are always valid
// character boundaries, even when line mixes CJK and Latin text.
func FindWholeWord(line, word string) (Span, bool) {
	if word == "" {
		return Span{}, false
	}

	wordChars := CharCount(word)
	byteOff := 0
	charOff := 0

	for byteOff < len(line) {
		rest := line[byteOff:]
		if hasPrefixFold(rest, word) {
			before := charBefore(line, byteOff)
			after := charAt(line, byteOff+len(matchedPrefix(rest, word)))
			if !isWordChar(before) && !isWordChar(after) {
				return Span{Start: charOff, End: charOff + wordChars}, true
			}
		}

		r, size := utf8.DecodeRuneInString(rest)
		if r == utf8.RuneError && size == 0 {
			break
		}
		byteOff += size
		charOff++
	}

	return Span{}, false
}

// FindSubstring locates the first occurrence of sub in line and returns its
// character span without requiring word boundaries. Used for CJK phrase
// matching, where adjacent ideographs make boundary checks meaningless.
func FindSubstring(line, sub string) (Span, bool) {
	if sub == "" {
		return Span{}, false
	}

	byteIdx := strings.Index(line, sub)
	if byteIdx < 0 {
		return Span{}, false
	}

	start := CharCount(line[:byteIdx])
	return Span{Start: start, End: start + CharCount(sub)}, true
}

// hasPrefixFold reports whether s begins with word under ASCII case folding.
func hasPrefixFold(s, word string) bool {
	if len(s) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		a, b := s[i], word[i]
		if a == b {
			continue
		}
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// matchedPrefix returns the portion of s that matched word.
// Under ASCII folding the byte lengths are identical.
func matchedPrefix(s, word string) string {
	return s[:len(word)]
}

// charBefore returns the rune ending at byte offset i, or 0 at the start.
func charBefore(s string, i int) rune {
	if i <= 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// charAt returns the rune starting at byte offset i, or 0 past the end.
func charAt(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// isWordChar reports whether r can be part of a word for boundary purposes.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
