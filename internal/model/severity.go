package model

// Severity represents how strongly a writing issue degrades the text.
// This allows grouping and sorting issues in reports.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates stylistic observations with no correctness impact.
	// Examples: long but grammatical sentences flagged for readability.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues the reader will likely gloss over.
	// Examples: duplicated punctuation, repeated filler words.
	SeverityLow

	// SeverityMedium indicates issues that make prose look careless.
	// Examples: unknown words, redundant phrases, casual phrasing in headings.
	SeverityMedium

	// SeverityHigh indicates outright errors with a known correction.
	// Examples: table-backed misspellings such as "teh" or "recieve".
	SeverityHigh
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// IssueInfo contains metadata about an issue type including severity,
// impact description, and a remediation recommendation.
type IssueInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// issueInfoMapping maps issue types to their metadata.
// This centralized mapping ensures consistent assessment across the application.
//
// Design decision: We use a map rather than embedding severity in each issue
// because:
// 1. It allows updating assessments without modifying detector code
// 2. It provides a single source of truth for severity levels
// 3. It makes it easy to generate severity documentation
var issueInfoMapping = map[string]IssueInfo{
	IssueSpelling: {
		Severity:       SeverityHigh,
		Impact:         "A known misspelling appears in the text and will be noticed by most readers.",
		Recommendation: "Apply the suggested correction.",
	},
	IssueUnknownWord: {
		Severity:       SeverityMedium,
		Impact:         "The word is not in the known-word dictionary and may be a typo or informal term.",
		Recommendation: "Verify the spelling or add the word to the custom word list.",
	},
	IssuePhrase: {
		Severity:       SeverityMedium,
		Impact:         "The phrase is a common multi-word typo or redundant expression.",
		Recommendation: "Replace the phrase with the suggested form.",
	},
	IssueTitle: {
		Severity:       SeverityMedium,
		Impact:         "Headings carry disproportionate weight; errors there undermine the whole document.",
		Recommendation: "Fix the heading wording or capitalization.",
	},
	IssueRepeat: {
		Severity:       SeverityLow,
		Impact:         "A word or character is duplicated, which reads as an editing leftover.",
		Recommendation: "Remove the duplicate.",
	},
	IssueSentenceLength: {
		Severity:       SeverityInfo,
		Impact:         "Very long sentences are hard to follow, especially in academic prose.",
		Recommendation: "Split the sentence or restructure it.",
	},
	IssuePunctuation: {
		Severity:       SeverityLow,
		Impact:         "Duplicated terminal punctuation looks informal.",
		Recommendation: "Keep a single terminal mark.",
	},
}

// GetSeverity returns the severity level for an issue type.
// Returns SeverityInfo if the issue type is not in the mapping.
func GetSeverity(issueType string) Severity {
	if info, ok := issueInfoMapping[issueType]; ok {
		return info.Severity
	}
	return SeverityInfo
}

// GetIssueInfo returns the full metadata for an issue type.
// Returns a default IssueInfo with SeverityInfo if the type is not in the mapping.
func GetIssueInfo(issueType string) IssueInfo {
	if info, ok := issueInfoMapping[issueType]; ok {
		return info
	}
	return IssueInfo{
		Severity:       SeverityInfo,
		Impact:         "Unknown issue type. Review manually.",
		Recommendation: "Investigate the issue and assess relevance.",
	}
}
