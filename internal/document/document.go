package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Decoding errors.
var (
	// ErrNoText is returned when a document contains no extractable text.
	ErrNoText = errors.New("document: no extractable text")
)

// Decode reads the file at path and returns its textual content. The
// format is chosen by file extension; unknown extensions are treated as
// plain text, which matches how drafts without an extension are usually
// saved.
func Decode(path string) (string, error) {
	switch Format(path) {
	case "docx":
		return decodeDOCX(path)
	case "doc":
		return decodeDOC(path)
	case "pdf":
		return decodePDF(path)
	default:
		return decodeText(path)
	}
}

// Format returns the lowercase extension used to pick a decoder, without
// the leading dot. Files without an extension report "txt".
func Format(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "txt"
	}
	return ext
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return raw, nil
}
