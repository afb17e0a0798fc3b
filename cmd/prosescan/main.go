// Package main provides the entry point for the prosescan CLI.
//
// Prosescan is a writing checker for mixed Chinese/English academic prose.
// It flags misspellings, redundant phrases, heading problems, repeated
// words, and overlong sentences.
//
// Usage:
//
//	prosescan check <document>
//	prosescan check --json draft.docx
//
// See --help for all available options.
package main

// main is the entry point for prosescan.
func main() {
	Execute()
}
