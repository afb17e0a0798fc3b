package detect

import (
	"github.com/prosescan/prosescan/internal/dict"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/token"
)

// Detector is the interface every issue detector implements.
// Detectors are stateless across lines; anything that must persist between
// lines lives in the shared DedupContext.
//
// Design decision: We use an interface with a shared DedupContext parameter
// rather than independent check functions because:
//  1. Earlier detectors can suppress later detectors' duplicate findings
//  2. New detectors slot into the ordered registry without touching callers
//  3. Tests can run a single detector in isolation with a fresh context
type Detector interface {
	// Name returns the detector's name for logging and reporting.
	Name() string

	// Detect runs the check on one line. tokens is the extracted token
	// stream for that line, lineNumber is 1-based.
	Detect(line string, tokens []token.Token, lineNumber int, dedup *DedupContext) []model.Issue
}

// Options configures the detector set.
type Options struct {
	// Dictionary is the known-word dictionary for spelling checks.
	// When nil, the embedded base dictionary is used.
	Dictionary *dict.Dictionary

	// IgnoreWords are tokens the spelling detector never flags,
	// typically project-specific jargon from a rule file.
	IgnoreWords []string

	// ExtraTypos extends the built-in misspelling table. Keys must be
	// lowercase.
	ExtraTypos map[string]string

	// MaxSentenceCharsLatin is the sentence length threshold, in
	// characters, for Latin-script sentences.
	MaxSentenceCharsLatin int

	// MaxSentenceCharsChinese is the sentence length threshold, in
	// characters, for Chinese sentences.
	MaxSentenceCharsChinese int
}

// DefaultOptions returns sensible default detector options.
func DefaultOptions() Options {
	return Options{
		MaxSentenceCharsLatin:   200,
		MaxSentenceCharsChinese: 100,
	}
}

// Registry holds the detectors in their fixed execution order.
type Registry struct {
	detectors []Detector
}

// NewRegistry builds the default detector set: spelling, phrase, title,
// repeat, sentence. The order matters: the spelling detector registers the
// tokens it flags so the title detector does not report them again.
func NewRegistry(opts Options) *Registry {
	d := opts.Dictionary
	if d == nil {
		d = dict.New()
	}
	typos := dict.Typos
	if len(opts.ExtraTypos) > 0 {
		merged := make(map[string]string, len(dict.Typos)+len(opts.ExtraTypos))
		for k, v := range dict.Typos {
			merged[k] = v
		}
		for k, v := range opts.ExtraTypos {
			merged[k] = v
		}
		typos = merged
	}

	ignore := make(map[string]struct{}, len(opts.IgnoreWords))
	for _, w := range opts.IgnoreWords {
		ignore[normalizeIgnoreWord(w)] = struct{}{}
	}

	maxLatin := opts.MaxSentenceCharsLatin
	if maxLatin <= 0 {
		maxLatin = DefaultOptions().MaxSentenceCharsLatin
	}
	maxChinese := opts.MaxSentenceCharsChinese
	if maxChinese <= 0 {
		maxChinese = DefaultOptions().MaxSentenceCharsChinese
	}

	return &Registry{
		detectors: []Detector{
			&SpellingDetector{dictionary: d, typos: typos, ignore: ignore},
			&PhraseDetector{phrases: dict.RedundantPhrases},
			&TitleDetector{typos: dict.TitleTypos, casual: dict.CasualHeadingPhrases},
			&RepeatDetector{},
			&SentenceDetector{maxLatin: maxLatin, maxChinese: maxChinese},
		},
	}
}

// Detectors returns the registered detectors in execution order.
func (r *Registry) Detectors() []Detector {
	return r.detectors
}
