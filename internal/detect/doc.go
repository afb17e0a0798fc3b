// Package detect implements the issue detectors and their coordination.
//
// Detectors run in a fixed, documented order over each line: spelling,
// phrase, title, repeat, sentence. Earlier detectors register the tokens
// they flag in a shared DedupContext so later detectors do not report the
// same token again, and case variants collapse to a single report.
package detect
