package dict

import "strings"

// Dictionary answers membership queries for known English words.
// Lookup is case-insensitive and falls back to stripping common
// morphological suffixes, so the embedded base list stays small while still
// accepting inflected forms ("studies", "related", "running", "quickly").
type Dictionary struct {
	words map[string]struct{}
}

// New creates a Dictionary from the embedded base word list plus any extra
// words the caller supplies (typically from a rule file).
func New(extra ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(baseWords)+len(extra))}
	for _, w := range baseWords {
		d.words[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range extra {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// Add inserts a word into the dictionary.
func (d *Dictionary) Add(word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word != "" {
		d.words[word] = struct{}{}
	}
}

// Len returns the number of base entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is a known word, directly or through a
// morphological fallback. The fallbacks mirror common English inflection:
// plural -s/-es, past -ed (with doubled-consonant and trailing-e handling),
// progressive -ing, adverbial -ly, comparative -er / superlative -est, and
// the nominal suffixes -tion and -ment.
func (d *Dictionary) Contains(word string) bool {
	lower := strings.ToLower(word)
	if d.has(lower) {
		return true
	}

	n := len(lower)

	// Plural forms.
	if strings.HasSuffix(lower, "s") && n > 2 && d.has(lower[:n-1]) {
		return true
	}
	if strings.HasSuffix(lower, "es") && n > 3 && d.has(lower[:n-2]) {
		return true
	}

	// Past tense: "stopped" -> "stop", "related" -> "relate".
	if strings.HasSuffix(lower, "ed") && n > 3 {
		base := lower[:n-2]
		if d.has(base) || d.has(base+"e") {
			return true
		}
		if n > 4 && doubledFinal(base) && d.has(base[:len(base)-1]) {
			return true
		}
	}

	// Progressive: "making" -> "make", "running" -> "run".
	if strings.HasSuffix(lower, "ing") && n > 4 {
		base := lower[:n-3]
		if d.has(base) || d.has(base+"e") {
			return true
		}
		if n > 5 && doubledFinal(base) && d.has(base[:len(base)-1]) {
			return true
		}
	}

	// Adverbs.
	if strings.HasSuffix(lower, "ly") && n > 3 && d.has(lower[:n-2]) {
		return true
	}

	// Comparative and superlative: "smaller" -> "small", "larger" -> "large".
	if strings.HasSuffix(lower, "er") && n > 3 {
		base := lower[:n-2]
		if d.has(base) || d.has(base+"e") {
			return true
		}
	}
	if strings.HasSuffix(lower, "est") && n > 4 {
		base := lower[:n-3]
		if d.has(base) || d.has(base+"e") {
			return true
		}
	}

	// Nominal suffixes: "relation" -> "relate", "improvement" -> "improve".
	if strings.HasSuffix(lower, "tion") && n > 5 && d.has(lower[:n-4]+"e") {
		return true
	}
	if strings.HasSuffix(lower, "ment") && n > 6 {
		base := lower[:n-4]
		if d.has(base) || d.has(base+"e") {
			return true
		}
	}

	// Irregular verb forms are listed explicitly.
	_, ok := irregularForms[lower]
	return ok
}

// has is a direct membership check without fallbacks.
func (d *Dictionary) has(word string) bool {
	_, ok := d.words[word]
	return ok
}

// doubledFinal reports whether s ends in a doubled consonant.
func doubledFinal(s string) bool {
	if len(s) < 2 {
		return false
	}
	return s[len(s)-1] == s[len(s)-2]
}

// irregularForms lists inflections that suffix stripping cannot reach.
var irregularForms = map[string]struct{}{
	"was": {}, "were": {}, "been": {}, "being": {},
	"did": {}, "done": {}, "does": {},
	"went": {}, "gone": {}, "goes": {},
	"had": {}, "has": {},
	"said": {}, "says": {},
	"made": {}, "took": {}, "taken": {},
	"came": {}, "saw": {}, "seen": {},
	"knew": {}, "known": {}, "thought": {},
	"found": {}, "gave": {}, "given": {},
	"showed": {}, "shown": {}, "wrote": {}, "written": {},
	"chose": {}, "chosen": {}, "held": {}, "kept": {},
	"led": {}, "met": {}, "ran": {}, "grew": {}, "grown": {},
	"better": {}, "best": {}, "worse": {}, "worst": {},
	"children": {}, "men": {}, "women": {}, "people": {},
	"data": {}, "criteria": {}, "phenomena": {}, "analyses": {},
	"hypotheses": {}, "indices": {}, "matrices": {},
}
