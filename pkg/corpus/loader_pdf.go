package corpus

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader extracts the text of a PDF file page by page. Each text object
// becomes a line; pages without text contribute nothing.
type PDFLoader struct{}

func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Load returns the document lines joined by newlines.
func (l *PDFLoader) Load(path string) (string, error) {
	lines, err := l.LoadLines(path)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// LoadLines returns the non-blank lines of every page in reading order.
// Since the previous word carries across lines, the last word of a page
// still precedes the first word of the next one.
func (l *PDFLoader) LoadLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var lines []string
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %q: %w", n, path, err)
		}
		lines = append(lines, pageLines(text)...)
	}
	return lines, nil
}

// pageLines drops the blank lines the extractor emits between text objects.
func pageLines(text string) []string {
	var lines []string
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
