package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxChars int
		want     string
	}{
		{
			name:     "shorter than limit",
			input:    "hello",
			maxChars: 10,
			want:     "hello",
		},
		{
			name:     "exactly at limit",
			input:    "hello",
			maxChars: 5,
			want:     "hello",
		},
		{
			name:     "ascii truncation",
			input:    "hello world",
			maxChars: 5,
			want:     "hello",
		},
		{
			name:     "chinese truncation counts characters not bytes",
			input:    "本研究采用了严谨的方法论",
			maxChars: 4,
			want:     "本研究采",
		},
		{
			name:     "mixed script truncation",
			input:    "研究machine learning",
			maxChars: 9,
			want:     "研究machine",
		},
		{
			name:     "zero limit",
			input:    "hello",
			maxChars: 0,
			want:     "",
		},
		{
			name:     "negative limit",
			input:    "hello",
			maxChars: -1,
			want:     "",
		},
		{
			name:     "empty input",
			input:    "",
			maxChars: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TruncateChars(tt.input, tt.maxChars)
			if got != tt.want {
				t.Errorf("TruncateChars(%q, %d) = %q, want %q", tt.input, tt.maxChars, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("TruncateChars(%q, %d) produced invalid UTF-8", tt.input, tt.maxChars)
			}
		})
	}
}

func TestTruncateCharsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"hello world",
		"本研究采用了严谨的方法论。",
		"mixed 中英文 text with punctuation！",
		"",
	}

	for _, s := range inputs {
		for n := 0; n <= CharCount(s)+2; n++ {
			once := TruncateChars(s, n)
			twice := TruncateChars(once, n)
			if once != twice {
				t.Errorf("TruncateChars not idempotent for %q, n=%d: %q != %q", s, n, once, twice)
			}
			if CharCount(once) > n && n >= 0 {
				t.Errorf("TruncateChars(%q, %d) has %d chars", s, n, CharCount(once))
			}
		}
	}
}

func TestCharCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"本研究", 3},
		{"a本b", 3},
	}

	for _, tt := range tests {
		if got := CharCount(tt.input); got != tt.want {
			t.Errorf("CharCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFindWholeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		word      string
		wantSpan  Span
		wantFound bool
	}{
		{
			name:      "simple match",
			line:      "the quick brown fox",
			word:      "quick",
			wantSpan:  Span{Start: 4, End: 9},
			wantFound: true,
		},
		{
			name:      "match at start",
			line:      "could of been",
			word:      "could of",
			wantSpan:  Span{Start: 0, End: 8},
			wantFound: true,
		},
		{
			name:      "no partial word match",
			line:      "architecture",
			word:      "tech",
			wantFound: false,
		},
		{
			name:      "case insensitive",
			line:      "Could of been worse",
			word:      "could of",
			wantSpan:  Span{Start: 0, End: 8},
			wantFound: true,
		},
		{
			name:      "offsets are character offsets after cjk",
			line:      "方法论 relies on data",
			word:      "relies",
			wantSpan:  Span{Start: 4, End: 10},
			wantFound: true,
		},
		{
			name:      "empty word",
			line:      "anything",
			word:      "",
			wantFound: false,
		},
		{
			name:      "absent word",
			line:      "the quick brown fox",
			word:      "slow",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			span, found := FindWholeWord(tt.line, tt.word)
			if found != tt.wantFound {
				t.Fatalf("FindWholeWord(%q, %q) found = %v, want %v", tt.line, tt.word, found, tt.wantFound)
			}
			if found && span != tt.wantSpan {
				t.Errorf("FindWholeWord(%q, %q) span = %+v, want %+v", tt.line, tt.word, span, tt.wantSpan)
			}
		})
	}
}
