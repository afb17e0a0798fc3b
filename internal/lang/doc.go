// Package lang classifies text as primarily Chinese or primarily Latin.
//
// The classifier is a coarse heuristic used to pick a tokenization strategy
// per line, not a general language-identification model. A document may mix
// lines of both classes freely.
package lang
