package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/prosescan/prosescan/internal/analyzer"
	"github.com/prosescan/prosescan/internal/config"
	"github.com/prosescan/prosescan/internal/model"
)

// TestNewCheckCmd tests the check command creation.
func TestNewCheckCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCheckCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "check [document...]" {
			t.Errorf("expected use 'check [document...]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has limit flags with analyzer defaults", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			want int
		}{
			{"max-chars", analyzer.DefaultMaxTextChars},
			{"max-line-chars", analyzer.DefaultMaxLineChars},
			{"max-issues", analyzer.DefaultMaxIssues},
			{"chunk-lines", analyzer.DefaultChunkLines},
		}
		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.DefValue != strconv.Itoa(tt.want) {
				t.Errorf("%s default = %q, want %d", tt.name, flag.DefValue, tt.want)
			}
		}
	})

	t.Run("has batch flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.Shorthand != "b" {
			t.Errorf("expected shorthand 'b', got %q", flag.Shorthand)
		}
		if flag.DefValue != strconv.Itoa(config.DefaultBatchSize) {
			t.Errorf("expected default %d, got %q", config.DefaultBatchSize, flag.DefValue)
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "output", "rules", "async", "no-history"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestBuildConfig tests building a Config from command flags.
func TestBuildConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cmd := NewCheckCmd()
		if err := cmd.ParseFlags([]string{"--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxTextChars != analyzer.DefaultMaxTextChars {
			t.Errorf("MaxTextChars = %d, want %d", cfg.MaxTextChars, analyzer.DefaultMaxTextChars)
		}
		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, config.DefaultBatchSize)
		}
		if cfg.Async {
			t.Error("expected Async to default to false")
		}
		if len(cfg.Targets) != 1 || cfg.Targets[0] != "draft.txt" {
			t.Errorf("Targets = %v, want [draft.txt]", cfg.Targets)
		}
		if cfg.Stdin {
			t.Error("expected Stdin to be false for a file target")
		}
	})

	t.Run("reads limit flags", func(t *testing.T) {
		cmd := NewCheckCmd()
		args := []string{"--max-chars", "1000", "--max-line-chars", "80", "--max-issues", "5", "--chunk-lines", "10", "--no-history"}
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxTextChars != 1000 {
			t.Errorf("MaxTextChars = %d, want 1000", cfg.MaxTextChars)
		}
		if cfg.MaxLineChars != 80 {
			t.Errorf("MaxLineChars = %d, want 80", cfg.MaxLineChars)
		}
		if cfg.MaxIssues != 5 {
			t.Errorf("MaxIssues = %d, want 5", cfg.MaxIssues)
		}
		if cfg.ChunkLines != 10 {
			t.Errorf("ChunkLines = %d, want 10", cfg.ChunkLines)
		}
	})

	t.Run("detects stdin target", func(t *testing.T) {
		cmd := NewCheckCmd()
		if err := cmd.ParseFlags([]string{"--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"-"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.Stdin {
			t.Error("expected Stdin to be true for '-' target")
		}
	})

	t.Run("loads rule file", func(t *testing.T) {
		rulePath := filepath.Join(t.TempDir(), "rules.yaml")
		ruleYAML := `extra_words:
  - fintech
typos:
  Paralel: parallel
sentence_latin: 150
`
		if err := os.WriteFile(rulePath, []byte(ruleYAML), 0600); err != nil {
			t.Fatalf("failed to write rule file: %v", err)
		}

		cmd := NewCheckCmd()
		if err := cmd.ParseFlags([]string{"-r", rulePath, "--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Rules == nil {
			t.Fatal("expected rules to be loaded")
		}
		if len(cfg.Rules.ExtraWords) != 1 || cfg.Rules.ExtraWords[0] != "fintech" {
			t.Errorf("ExtraWords = %v, want [fintech]", cfg.Rules.ExtraWords)
		}
		// Typo keys are lowercased on load
		if cfg.Rules.Typos["paralel"] != "parallel" {
			t.Errorf("Typos[paralel] = %q, want 'parallel'", cfg.Rules.Typos["paralel"])
		}
		if cfg.Rules.SentenceLatin != 150 {
			t.Errorf("SentenceLatin = %d, want 150", cfg.Rules.SentenceLatin)
		}
	})

	t.Run("explicit missing rule file errors", func(t *testing.T) {
		cmd := NewCheckCmd()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.ParseFlags([]string{"-r", missing, "--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		_, err := buildConfig(cmd, []string{"draft.txt"})
		if err == nil {
			t.Fatal("expected error for missing rule file")
		}
		if !strings.Contains(err.Error(), "rule file not found") {
			t.Errorf("expected 'rule file not found' error, got %v", err)
		}
	})

	t.Run("no-history disables persistence", func(t *testing.T) {
		cmd := NewCheckCmd()
		if err := cmd.ParseFlags([]string{"--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false with --no-history")
		}
		if cfg.DBDir != "" {
			t.Errorf("expected empty DBDir, got %q", cfg.DBDir)
		}
	})

	t.Run("history enabled by default", func(t *testing.T) {
		cmd := NewCheckCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.SaveToDB {
			t.Error("expected SaveToDB to be true by default")
		}
		if cfg.DBDir == "" {
			t.Error("expected DBDir to be set by default")
		}
	})

	t.Run("conflicting report formats fail validation", func(t *testing.T) {
		cmd := NewCheckCmd()
		if err := cmd.ParseFlags([]string{"--json", "--markdown", "--no-history"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"draft.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := cfg.Validate(); !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}

// TestOutputReport tests report output routing.
func TestOutputReport(t *testing.T) {
	newReport := func() *model.DocumentReport {
		r := model.NewDocumentReport("draft.txt")
		r.Format = "txt"
		r.Result = &model.AnalysisResult{
			Issues: []model.Issue{
				{
					LineNumber: 1,
					Start:      0,
					End:        3,
					Type:       model.IssueSpelling,
					Message:    `"teh" is a misspelling of "the"`,
					Suggestion: "the",
				},
			},
			Stats: model.AnalysisStats{"total_chars": 20, "total_words": 4, "total_lines": 1},
		}
		r.Summary = model.NewSummary(r)
		return r
	}

	// writeReports runs a full output cycle: open once, write every
	// report, close.
	writeReports := func(t *testing.T, cfg *config.Config, reports ...*model.DocumentReport) {
		t.Helper()
		output, closeOutput, err := openReportOutput(cfg)
		if err != nil {
			t.Fatalf("failed to open output: %v", err)
		}
		for _, r := range reports {
			if err := outputReport(cfg, output, r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := closeOutput(); err != nil {
			t.Fatalf("failed to close output: %v", err)
		}
	}

	t.Run("writes simple report to file", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out", "report.txt")
		cfg := config.NewConfig()
		cfg.ReportFile = outPath

		writeReports(t, cfg, newReport())

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(content), "PROSESCAN REPORT") {
			t.Error("expected simple report header in output file")
		}
	})

	t.Run("keeps every report in a multi-document run", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "report.txt")
		cfg := config.NewConfig()
		cfg.ReportFile = outPath

		second := newReport()
		second.Path = "chapter2.txt"
		writeReports(t, cfg, newReport(), second)

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(content), "draft.txt") {
			t.Error("expected first document's report in output file")
		}
		if !strings.Contains(string(content), "chapter2.txt") {
			t.Error("expected second document's report in output file")
		}
	})

	t.Run("writes JSON report with version", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "report.json")
		cfg := config.NewConfig()
		cfg.ReportFile = outPath
		cfg.JSONReport = true

		writeReports(t, cfg, newReport())

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}

		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(content, &wrapped); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if _, ok := wrapped["version"]; !ok {
			t.Error("expected version field in JSON output")
		}
		if _, ok := wrapped["report"]; !ok {
			t.Error("expected report field in JSON output")
		}
	})

	t.Run("writes markdown report", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "report.md")
		cfg := config.NewConfig()
		cfg.ReportFile = outPath
		cfg.MarkdownReport = true

		writeReports(t, cfg, newReport())

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(content), "# Prosescan Report") {
			t.Error("expected markdown heading in output file")
		}
	})

	t.Run("derives summary when missing", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "report.txt")
		cfg := config.NewConfig()
		cfg.ReportFile = outPath

		r := newReport()
		r.Summary = nil

		writeReports(t, cfg, r)
		if r.Summary == nil {
			t.Error("expected summary to be derived before writing")
		}
	})
}

// TestGetVerboseFlag tests verbose flag resolution.
func TestGetVerboseFlag(t *testing.T) {
	t.Parallel()

	t.Run("returns false without verbose flag", func(t *testing.T) {
		t.Parallel()
		cmd := NewCheckCmd()
		if getVerboseFlag(cmd) {
			t.Error("expected false when no verbose flag is set")
		}
	})

	t.Run("reads persistent verbose flag from root", func(t *testing.T) {
		t.Parallel()
		root := NewRootCmd()
		if err := root.PersistentFlags().Set("verbose", "true"); err != nil {
			t.Fatalf("failed to set verbose flag: %v", err)
		}

		for _, sub := range root.Commands() {
			if sub.Name() == "check" {
				if !getVerboseFlag(sub) {
					t.Error("expected verbose flag to propagate from root")
				}
			}
		}
	})
}
