package corpus

import (
	"path/filepath"
	"strings"
)

// AutoLoader selects the loader based on the file extension.
type AutoLoader struct {
	textLoader Loader
	pdfLoader  Loader
	docxLoader Loader
}

func NewAutoLoader() *AutoLoader {
	return &AutoLoader{
		textLoader: NewTextLoader(),
		pdfLoader:  NewPDFLoader(),
		docxLoader: NewDocxLoader(),
	}
}

func (l *AutoLoader) Load(path string) (string, error) {
	return l.loaderFor(path).Load(path)
}

// LoadLines keeps the line structure of loaders that provide one.
func (l *AutoLoader) LoadLines(path string) ([]string, error) {
	return LoadLines(l.loaderFor(path), path)
}

func (l *AutoLoader) loaderFor(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return l.pdfLoader
	case ".docx":
		return l.docxLoader
	default:
		// Anything else is read as text; binary files simply yield few tokens.
		return l.textLoader
	}
}
