package lang

import "fmt"

// Script identifies the dominant script of a piece of text.
type Script int

const (
	// ScriptLatin indicates text dominated by ASCII-alphabetic characters.
	// It is also the tie-breaking default when neither script dominates.
	ScriptLatin Script = iota

	// ScriptChinese indicates text dominated by CJK Unified Ideographs.
	ScriptChinese
)

// String returns a human-readable name for the script.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptChinese:
		return "chinese"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// CJK Unified Ideographs block. Extension blocks are intentionally excluded:
// the classifier only needs to separate everyday Chinese prose from Latin
// text, and the base block covers that.
const (
	cjkStart = 0x4E00
	cjkEnd   = 0x9FFF
)

// IsCJK reports whether r is a CJK Unified Ideograph.
func IsCJK(r rune) bool {
	return r >= cjkStart && r <= cjkEnd
}

// Classify returns the dominant script of text using a single pass that
// counts CJK ideographs against ASCII letters. Chinese wins only on a strict
// majority of counted characters; ties favor Latin.
func Classify(text string) Script {
	var cjk, latin int
	for _, r := range text {
		switch {
		case IsCJK(r):
			cjk++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	if cjk > latin {
		return ScriptChinese
	}
	return ScriptLatin
}
