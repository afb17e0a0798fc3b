package document

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// decodeText reads a plain-text (or Markdown) file, detecting the encoding.
// Academic drafts from Chinese-locale editors commonly arrive as GBK or
// GB18030; UTF-16 shows up when files pass through Windows Notepad. The
// fallback chain mirrors that reality: UTF-8, BOM-signalled UTF-16, GBK,
// GB18030, then lossy UTF-8 as a last resort.
func decodeText(path string) (string, error) {
	raw, err := readFile(path)
	if err != nil {
		return "", err
	}
	return decodeBytes(raw), nil
}

func decodeBytes(raw []byte) string {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
	}

	if text, ok := decodeUTF16BOM(raw); ok {
		return text
	}

	for _, enc := range []encoding.Encoding{
		simplifiedchinese.GBK,
		simplifiedchinese.GB18030,
	} {
		if text, ok := tryDecode(enc, raw); ok {
			return text
		}
	}

	// Nothing matched cleanly; keep what UTF-8 can salvage.
	return string(bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError))))
}

// decodeUTF16BOM decodes raw as UTF-16 when a byte order mark is present.
func decodeUTF16BOM(raw []byte) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}
	var endian unicode.Endianness
	switch {
	case raw[0] == 0xFF && raw[1] == 0xFE:
		endian = unicode.LittleEndian
	case raw[0] == 0xFE && raw[1] == 0xFF:
		endian = unicode.BigEndian
	default:
		return "", false
	}

	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(raw[2:])
	if err != nil {
		return "", false
	}
	return string(out), true
}

// tryDecode decodes raw with enc and accepts the result only when it is
// clean: no replacement characters, which is how a wrong-encoding guess
// shows up.
func tryDecode(enc encoding.Encoding, raw []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	text := string(out)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

// decodeDOC pulls printable text runs out of a legacy binary Word file.
// The OLE compound format is not worth a full parser here; extracting
// ASCII-visible runs recovers the Latin prose, and the caller is told to
// resave as DOCX when nothing comes out.
func decodeDOC(path string) (string, error) {
	raw, err := readFile(path)
	if err != nil {
		return "", err
	}

	text := extractPrintableRuns(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("doc %s (resave as docx or txt): %w", path, ErrNoText)
	}
	return text, nil
}

// extractPrintableRuns collects runs of printable ASCII, keeping runs that
// look like words and joining them with single spaces.
func extractPrintableRuns(data []byte) string {
	var (
		b   strings.Builder
		cur []byte
	)
	flush := func() {
		if looksLikeText(cur) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.Write(bytes.TrimSpace(cur))
		}
		cur = cur[:0]
	}

	for _, c := range data {
		if c >= 0x20 && c < 0x7F || c == '\n' || c == '\r' || c == '\t' {
			cur = append(cur, c)
		} else {
			flush()
		}
	}
	flush()
	return b.String()
}

// looksLikeText reports whether a byte run is long enough and contains at
// least one letter, filtering out binary noise that happens to be
// printable.
func looksLikeText(run []byte) bool {
	if len(bytes.TrimSpace(run)) <= 2 {
		return false
	}
	for _, c := range run {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			return true
		}
	}
	return false
}
