// Package analyzer drives the issue detectors over whole documents.
//
// The Analyzer runs synchronously for small inputs and as a chunked,
// cancellable background task for large ones. Both paths share the same
// per-line processing, so a chunked run produces exactly the same issues
// and statistics as a synchronous run over the same text.
package analyzer
