package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// decodePDF extracts the plain text of every page. Pages whose content
// cannot be decoded are skipped; a document where no page yields text is
// an error, since analyzing an empty string would silently report nothing.
func decodePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("pdf %s: %w", path, ErrNoText)
	}
	return b.String(), nil
}
