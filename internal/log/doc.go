// Package log provides slog-based logging utilities for prosescan.
// Its TrimHandler keeps log lines readable when attributes carry document
// text, which can run to hundreds of kilobytes.
package log
