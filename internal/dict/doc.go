// Package dict holds the rule data consumed by the issue detectors: the
// known-word dictionary with morphological fallback lookup, the common-typo
// table, the heading typo table, and the redundant-phrase tables.
//
// The data is embedded so the engine works without external files; callers
// can extend the dictionary and typo table at construction time from a rule
// file.
package dict
