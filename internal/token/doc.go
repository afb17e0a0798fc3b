// Package token extracts candidate words from a line of text.
//
// Extraction branches on the script classification of the line: Latin lines
// are split on whitespace and trimmed, while Chinese lines are scanned
// character by character so that only embedded Latin-script runs surface as
// tokens. CJK characters are never emitted as tokens because dictionary
// spelling checks only apply to Latin-script words.
package token
