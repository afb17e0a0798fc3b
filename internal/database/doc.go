// Package database provides SQLite-based storage for prosescan.
//
// This package implements the HistoryDB, which stores one row per analysis
// run: the full document report as JSON plus a small severity summary for
// cheap listing. The history powers the `prosescan history` command and
// lets users compare a draft's issue counts across revisions.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
//  1. No external dependencies - the database is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for our use case
//  4. WAL mode provides good concurrent read performance
package database
