// Package textanalyzer turns raw text into the word tokens used as graph nodes.
package textanalyzer

import (
	"regexp"
	"strings"
)

// Analyzer is the interface every text analyzer implements.
type Analyzer interface {
	// Analyze turns a piece of text into a slice of tokens.
	Analyze(text string) []string
}

// tokenizerRegex matches runs of lowercase ASCII letters. It is applied after
// lowercasing, so every other character (digits, punctuation, whitespace,
// non-ASCII letters) acts as a separator.
var tokenizerRegex = regexp.MustCompile(`[a-z]+`)

// Tokenize lowercases text and returns its maximal runs of ASCII letters, in order.
// It never returns empty tokens; the result may be empty.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	return tokenizerRegex.FindAllString(text, -1)
}

// TokenizeLines tokenizes each line and concatenates the results, so the
// token stream runs across line boundaries.
func TokenizeLines(lines []string) []string {
	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, Tokenize(line)...)
	}
	return tokens
}

// ASCIIAnalyzer is the Analyzer used for both corpus ingestion and query text.
type ASCIIAnalyzer struct{}

// NewASCIIAnalyzer returns the default analyzer.
func NewASCIIAnalyzer() *ASCIIAnalyzer {
	return &ASCIIAnalyzer{}
}

// Analyze implements Analyzer.
func (a *ASCIIAnalyzer) Analyze(text string) []string {
	return Tokenize(text)
}
