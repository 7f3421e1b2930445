// Package corpus reads the source documents a word graph is built from.
package corpus

import (
	"fmt"
	"os"
	"strings"
)

// Loader defines the contract for reading a file and extracting its text content.
type Loader interface {
	// Load reads the file at the given path and returns its text content.
	Load(path string) (string, error)
}

// LineLoader is implemented by loaders that know the line structure of
// their documents better than a newline split of the text would.
type LineLoader interface {
	Loader
	LoadLines(path string) ([]string, error)
}

// TextLoader is a loader for plain text files (txt, md, code, csv).
type TextLoader struct{}

func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

func (l *TextLoader) Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read corpus file: %w", err)
	}
	return string(content), nil
}

// SplitLines splits text into lines, accepting both \n and \r\n endings.
// A trailing newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// LoadLines loads path with l and splits the result into lines.
// A LineLoader provides its lines directly.
func LoadLines(l Loader, path string) ([]string, error) {
	if ll, ok := l.(LineLoader); ok {
		return ll.LoadLines(path)
	}
	text, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}
