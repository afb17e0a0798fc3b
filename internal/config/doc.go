// Package config provides configuration structures and utilities for
// prosescan. It defines the analysis limits, report preferences, and the
// optional .prosescan rule file that supplies project-specific words and
// typo corrections.
package config
