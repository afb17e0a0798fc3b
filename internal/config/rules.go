package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prosescan/prosescan/internal/dict"
)

// DefaultRuleFile is the default rule file name.
const DefaultRuleFile = ".prosescan"

// ErrRuleFileNotFound is returned when the rule file does not exist.
var ErrRuleFileNotFound = errors.New("rule file not found")

// RuleFile holds project-specific analysis rules loaded from a YAML file.
// A rule file lets a project accept its own jargon and teach the checker
// its recurring typos without rebuilding the tool.
type RuleFile struct {
	// ExtraWords are added to the known-word dictionary.
	ExtraWords []string `yaml:"extra_words"`

	// IgnoreWords are never flagged by the spelling detector.
	IgnoreWords []string `yaml:"ignore_words"`

	// Typos maps additional misspellings to corrections. Keys are
	// lowercased on load.
	Typos map[string]string `yaml:"typos"`

	// SentenceLatin overrides the Latin sentence length threshold.
	SentenceLatin int `yaml:"sentence_latin"`

	// SentenceChinese overrides the Chinese sentence length threshold.
	SentenceChinese int `yaml:"sentence_chinese"`
}

// Dictionary builds the known-word dictionary including the extra words.
func (r *RuleFile) Dictionary() *dict.Dictionary {
	return dict.New(r.ExtraWords...)
}

// LoadRuleFile loads analysis rules from a YAML file.
// If the file does not exist, it returns ErrRuleFileNotFound. Callers
// decide how hard to fail based on whether the path was explicit.
func LoadRuleFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided rule path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRuleFileNotFound
		}
		return nil, err
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}

	normalized := make(map[string]string, len(rf.Typos))
	for typo, correction := range rf.Typos {
		normalized[strings.ToLower(typo)] = correction
	}
	rf.Typos = normalized

	return &rf, nil
}

// FindRuleFile searches for the rule file in the following order:
// 1. If rulePath is specified, use it directly
// 2. Look for .prosescan in the current directory
// 3. Look for .prosescan in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindRuleFile(rulePath string) string {
	if rulePath != "" {
		if _, err := os.Stat(rulePath); err == nil {
			return rulePath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdRules := filepath.Join(cwd, DefaultRuleFile)
		if _, err := os.Stat(cwdRules); err == nil {
			return cwdRules
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeRules := filepath.Join(home, DefaultRuleFile)
		if _, err := os.Stat(homeRules); err == nil {
			return homeRules
		}
	}

	return ""
}
