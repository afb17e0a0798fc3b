package detect

import (
	"strings"
	"testing"

	"github.com/prosescan/prosescan/internal/lang"
	"github.com/prosescan/prosescan/internal/model"
	"github.com/prosescan/prosescan/internal/token"
)

// runDetectors drives the default registry over text the way the analyzer
// does: line by line, resetting the line scope between lines.
func runDetectors(t *testing.T, text string) []model.Issue {
	t.Helper()

	registry := NewRegistry(DefaultOptions())
	dedup := NewDedupContext()

	var issues []model.Issue
	for i, line := range strings.Split(text, "\n") {
		dedup.ResetLine()
		tokens := token.Extract(line, lang.Classify(line))
		for _, d := range registry.Detectors() {
			issues = append(issues, d.Detect(line, tokens, i+1, dedup)...)
		}
	}
	return issues
}

func issuesOfType(issues []model.Issue, issueType string) []model.Issue {
	var filtered []model.Issue
	for _, issue := range issues {
		if issue.Type == issueType {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

func TestSpellingDedupWithinLine(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "teh cat sat teh mat"), model.IssueSpelling)
	if len(issues) != 1 {
		t.Fatalf("spelling issues = %d, want 1", len(issues))
	}
	got := issues[0]
	if got.Start != 0 || got.End != 3 {
		t.Errorf("span = [%d,%d), want [0,3)", got.Start, got.End)
	}
	if !strings.Contains(got.Suggestion, `"the"`) {
		t.Errorf("suggestion = %q, want mention of \"the\"", got.Suggestion)
	}
}

func TestSpellingReportedOncePerLine(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "teh cat\nteh dog"), model.IssueSpelling)
	if len(issues) != 2 {
		t.Fatalf("spelling issues = %d, want 2 (one per line)", len(issues))
	}
	if issues[0].LineNumber != 1 || issues[1].LineNumber != 2 {
		t.Errorf("line numbers = %d, %d, want 1, 2", issues[0].LineNumber, issues[1].LineNumber)
	}
}

func TestSpellingLeavesContractionsToPhraseDetector(t *testing.T) {
	t.Parallel()

	issues := runDetectors(t, "The model can't converge.")
	for _, issue := range issuesOfType(issues, model.IssueUnknownWord) {
		if strings.Contains(issue.Message, "can't") {
			t.Errorf("contraction reported as unknown word: %+v", issue)
		}
	}
	phrase := issuesOfType(issues, model.IssuePhrase)
	if len(phrase) != 1 {
		t.Fatalf("phrase issues = %d, want 1", len(phrase))
	}
	if !strings.Contains(phrase[0].Suggestion, "cannot") {
		t.Errorf("suggestion = %q, want mention of cannot", phrase[0].Suggestion)
	}
}

func TestSpellingDedupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "Recieve recieve"), model.IssueSpelling)
	if len(issues) != 1 {
		t.Fatalf("spelling issues = %d, want 1", len(issues))
	}
	if issues[0].Start != 0 || issues[0].End != 7 {
		t.Errorf("span = [%d,%d), want [0,7)", issues[0].Start, issues[0].End)
	}
}

func TestPureChineseProducesNoIssues(t *testing.T) {
	t.Parallel()

	issues := runDetectors(t, "本研究采用了严谨的方法论。")
	if len(issues) != 0 {
		t.Fatalf("issues = %+v, want none", issues)
	}
}

func TestMixedLineFlagsLatinTokenOnly(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "本研究采用了machien learning方法"), model.IssueSpelling)
	if len(issues) != 1 {
		t.Fatalf("spelling issues = %d, want 1", len(issues))
	}
	got := issues[0]
	if got.Start != 6 || got.End != 13 {
		t.Errorf("span = [%d,%d), want [6,13)", got.Start, got.End)
	}
	if !strings.Contains(got.Suggestion, "machine") {
		t.Errorf("suggestion = %q, want mention of machine", got.Suggestion)
	}
}

func TestUnknownWordSkipsProperNounsAndCompounds(t *testing.T) {
	t.Parallel()

	issues := runDetectors(t, "the Fooberg out-degree zzqv method")
	unknown := issuesOfType(issues, model.IssueUnknownWord)
	if len(unknown) != 1 {
		t.Fatalf("unknown-word issues = %d, want 1: %+v", len(unknown), unknown)
	}
	if got := issues[0].Start; got != 23 {
		t.Errorf("start = %d, want 23 (zzqv)", got)
	}
}

func TestPhraseDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantStart  int
		wantEnd    int
		wantPhrase string
	}{
		{
			name:       "english wordiness",
			line:       "We did this in order to succeed.",
			wantStart:  12,
			wantEnd:    23,
			wantPhrase: "in order to",
		},
		{
			name:       "contraction",
			line:       "The model can't converge.",
			wantStart:  10,
			wantEnd:    15,
			wantPhrase: "can't",
		},
		{
			name:       "chinese filler",
			line:       "事实上，这个方法是有效的。",
			wantStart:  0,
			wantEnd:    3,
			wantPhrase: "事实上",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := issuesOfType(runDetectors(t, tt.line), model.IssuePhrase)
			if len(issues) != 1 {
				t.Fatalf("phrase issues = %d, want 1: %+v", len(issues), issues)
			}
			got := issues[0]
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("span = [%d,%d), want [%d,%d)", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if !strings.Contains(got.Message, tt.wantPhrase) {
				t.Errorf("message = %q, want mention of %q", got.Message, tt.wantPhrase)
			}
		})
	}
}

func TestWholeWordMatchingDoesNotFireInsideWords(t *testing.T) {
	t.Parallel()

	// "stuff" appears inside no heading word here; "in order to" must not
	// match inside "disorder to".
	issues := issuesOfType(runDetectors(t, "the disorder to which we refer"), model.IssuePhrase)
	if len(issues) != 0 {
		t.Fatalf("phrase issues = %+v, want none", issues)
	}
}

func TestTitleTyposInHeadings(t *testing.T) {
	t.Parallel()

	text := "# Producton Forecsting\nsome ordinary prose text here\n# Producton Growth"
	issues := issuesOfType(runDetectors(t, text), model.IssueTitle)
	if len(issues) != 2 {
		t.Fatalf("title issues = %d, want 2: %+v", len(issues), issues)
	}
	// Line 1 reports both typos; line 3's "Producton" is suppressed by the
	// document scope.
	for _, issue := range issues {
		if issue.LineNumber != 1 {
			t.Errorf("issue on line %d, want all on line 1", issue.LineNumber)
		}
	}
}

func TestCasualPhrasingInHeadings(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "# A lot of stuff"), model.IssueTitle)
	if len(issues) != 2 {
		t.Fatalf("title issues = %d, want 2: %+v", len(issues), issues)
	}
	if issues[0].Start != 2 || issues[0].End != 10 {
		t.Errorf("first span = [%d,%d), want [2,10)", issues[0].Start, issues[0].End)
	}
}

func TestTitleRulesSkipProse(t *testing.T) {
	t.Parallel()

	// Ends with a period, so it is prose; casual phrasing is fine there.
	issues := issuesOfType(runDetectors(t, "We collected a lot of stuff from the archive."), model.IssueTitle)
	if len(issues) != 0 {
		t.Fatalf("title issues = %+v, want none", issues)
	}
}

func TestRepeatedLatinWord(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "the results results show improvement"), model.IssueRepeat)
	if len(issues) != 1 {
		t.Fatalf("repeat issues = %d, want 1: %+v", len(issues), issues)
	}
	if issues[0].Start != 4 || issues[0].End != 19 {
		t.Errorf("span = [%d,%d), want [4,19) covering both copies", issues[0].Start, issues[0].End)
	}
}

func TestShortRepeatedWordsIgnored(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "it is is fine"), model.IssueRepeat)
	if len(issues) != 0 {
		t.Fatalf("repeat issues = %+v, want none for words under the length floor", issues)
	}
}

func TestRepeatedChineseCharacter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantCount int
		wantStart int
		wantEnd   int
	}{
		{name: "accidental doubling", line: "我们的的方法。", wantCount: 1, wantStart: 2, wantEnd: 4},
		{name: "legitimate reduplication", line: "他们慢慢地走了。", wantCount: 0},
		{name: "triple copy always flagged", line: "速度慢慢慢提升。", wantCount: 1, wantStart: 2, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := issuesOfType(runDetectors(t, tt.line), model.IssueRepeat)
			if len(issues) != tt.wantCount {
				t.Fatalf("repeat issues = %d, want %d: %+v", len(issues), tt.wantCount, issues)
			}
			if tt.wantCount == 1 && (issues[0].Start != tt.wantStart || issues[0].End != tt.wantEnd) {
				t.Errorf("span = [%d,%d), want [%d,%d)", issues[0].Start, issues[0].End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestLongSentences(t *testing.T) {
	t.Parallel()

	t.Run("latin over threshold", func(t *testing.T) {
		t.Parallel()

		line := strings.TrimSpace(strings.Repeat("the method works well and ", 10)) + "."
		issues := issuesOfType(runDetectors(t, line), model.IssueSentenceLength)
		if len(issues) != 1 {
			t.Fatalf("sentence issues = %d, want 1", len(issues))
		}
	})

	t.Run("chinese threshold is lower", func(t *testing.T) {
		t.Parallel()

		line := strings.Repeat("研究方法", 30) + "。"
		issues := issuesOfType(runDetectors(t, line), model.IssueSentenceLength)
		if len(issues) != 1 {
			t.Fatalf("sentence issues = %d, want 1", len(issues))
		}
		if issues[0].Start != 0 || issues[0].End != 121 {
			t.Errorf("span = [%d,%d), want [0,121)", issues[0].Start, issues[0].End)
		}
	})

	t.Run("short sentences pass", func(t *testing.T) {
		t.Parallel()

		issues := issuesOfType(runDetectors(t, "This is fine. 这也没问题。"), model.IssueSentenceLength)
		if len(issues) != 0 {
			t.Fatalf("sentence issues = %+v, want none", issues)
		}
	})
}

func TestConsecutivePunctuation(t *testing.T) {
	t.Parallel()

	issues := issuesOfType(runDetectors(t, "这样吗？？"), model.IssuePunctuation)
	if len(issues) != 1 {
		t.Fatalf("punctuation issues = %d, want 1: %+v", len(issues), issues)
	}
	if issues[0].Start != 3 || issues[0].End != 5 {
		t.Errorf("span = [%d,%d), want [3,5)", issues[0].Start, issues[0].End)
	}
}

func TestMixedPunctuationStyles(t *testing.T) {
	t.Parallel()

	line := "实验结果良好, 符合预期。"
	issues := issuesOfType(runDetectors(t, line), model.IssuePunctuation)
	if len(issues) != 1 {
		t.Fatalf("punctuation issues = %d, want 1: %+v", len(issues), issues)
	}
	if issues[0].Start != 0 || issues[0].End != len([]rune(line)) {
		t.Errorf("span = [%d,%d), want the whole line", issues[0].Start, issues[0].End)
	}
	if !strings.Contains(issues[0].Message, "mixed") {
		t.Errorf("message = %q, want mixed-punctuation notice", issues[0].Message)
	}
}

func TestCrossDetectorDedup(t *testing.T) {
	t.Parallel()

	// "Managment" is in both the spelling table and the heading table; only
	// the spelling detector, which runs first, may report it.
	issues := runDetectors(t, "# Managment Overview")
	var count int
	for _, issue := range issues {
		if issue.Start == 2 && issue.End == 11 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("issues covering the typo = %d, want exactly 1: %+v", count, issues)
	}
	if got := issuesOfType(issues, model.IssueTitle); len(got) != 0 {
		t.Errorf("title issues = %+v, want none", got)
	}
}

func TestIssueOffsetsAreValid(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"teh quick results results arrived",
		"本研究采用了machien learning方法，，效果很好。",
		"# Producton Forecsting",
		"We did this in order to validate the approach.",
		strings.Repeat("研究方法", 30) + "。",
	}, "\n")

	lines := strings.Split(text, "\n")
	for _, issue := range runDetectors(t, text) {
		if issue.LineNumber < 1 || issue.LineNumber > len(lines) {
			t.Fatalf("line number %d out of range", issue.LineNumber)
		}
		lineChars := len([]rune(lines[issue.LineNumber-1]))
		if issue.Start < 0 || issue.Start > issue.End || issue.End > lineChars {
			t.Errorf("issue %+v has invalid span for line of %d chars", issue, lineChars)
		}
	}
}

func TestRegistryOrder(t *testing.T) {
	t.Parallel()

	want := []string{"spelling", "phrase", "title", "repeat", "sentence"}
	detectors := NewRegistry(DefaultOptions()).Detectors()
	if len(detectors) != len(want) {
		t.Fatalf("detector count = %d, want %d", len(detectors), len(want))
	}
	for i, d := range detectors {
		if d.Name() != want[i] {
			t.Errorf("detector[%d] = %q, want %q", i, d.Name(), want[i])
		}
	}
}

func TestIgnoreWords(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.IgnoreWords = []string{"Zzqv"}
	registry := NewRegistry(opts)
	dedup := NewDedupContext()

	line := "the zzqv method"
	tokens := token.Extract(line, lang.Classify(line))

	var issues []model.Issue
	for _, d := range registry.Detectors() {
		issues = append(issues, d.Detect(line, tokens, 1, dedup)...)
	}
	if len(issues) != 0 {
		t.Fatalf("issues = %+v, want none with zzqv ignored", issues)
	}
}

func TestExtraTypos(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ExtraTypos = map[string]string{"paralel": "parallel"}
	registry := NewRegistry(opts)
	dedup := NewDedupContext()

	line := "the paralel runs agree"
	tokens := token.Extract(line, lang.Classify(line))

	var issues []model.Issue
	for _, d := range registry.Detectors() {
		issues = append(issues, d.Detect(line, tokens, 1, dedup)...)
	}
	spelling := issuesOfType(issues, model.IssueSpelling)
	if len(spelling) != 1 {
		t.Fatalf("spelling issues = %d, want 1: %+v", len(spelling), issues)
	}
	if !strings.Contains(spelling[0].Suggestion, "parallel") {
		t.Errorf("suggestion = %q, want mention of parallel", spelling[0].Suggestion)
	}
}
