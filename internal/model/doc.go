// Package model defines the core data structures used throughout prosescan.
//
// This package contains the following main types:
//   - Issue: A single localized writing issue with character-accurate offsets
//   - AnalysisResult: The aggregate outcome of one analysis run
//   - AnalysisProgress / AsyncEvent: Progress reporting for async runs
//   - DocumentReport: The per-document wrapper used by the pipeline
//   - Summary: A summarized, human-readable report
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyzer, pipeline, report, database) need
// to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
