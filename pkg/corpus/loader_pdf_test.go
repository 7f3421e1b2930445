package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePDF writes a minimal uncompressed PDF with one page per content
// stream. An empty stream produces a page without /Contents.
func writePDF(t *testing.T, path string, contents ...string) {
	t.Helper()

	var objects []string
	kids := ""
	pageObj := 3
	for _, c := range contents {
		kids += fmt.Sprintf("%d 0 R ", pageObj)
		if c == "" {
			pageObj++
			continue
		}
		pageObj += 2
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(contents)),
	)
	for _, c := range contents {
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]" +
			" /Resources << /Font << /F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >> >> >>"
		if c == "" {
			objects = append(objects, page+" >>")
			continue
		}
		contentsObj := len(objects) + 2
		objects = append(objects,
			fmt.Sprintf("%s /Contents %d 0 R >>", page, contentsObj),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(c), c),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestPDFLoaderLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trek.pdf")
	writePDF(t, path,
		"BT /F1 12 Tf 72 720 Td (To explore strange) Tj ET\nBT /F1 12 Tf 72 700 Td (new worlds) Tj ET",
		"",
		"BT /F1 12 Tf 72 720 Td (to seek out) Tj ET",
	)

	lines, err := LoadLines(NewAutoLoader(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"To explore strange", "new worlds", "to seek out"}, lines)

	text, err := NewPDFLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "To explore strange\nnew worlds\nto seek out", text)
}

func TestPDFWordsAdjacentAcrossPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.pdf")
	writePDF(t, path,
		"BT /F1 12 Tf 72 720 Td (seek new) Tj ET",
		"",
		"BT /F1 12 Tf 72 720 Td (worlds) Tj ET",
	)

	lines, err := LoadLines(NewPDFLoader(), path)
	require.NoError(t, err)

	g := graph.Build(lines)
	assert.True(t, g.HasEdge("seek", "new"))
	assert.True(t, g.HasEdge("new", "worlds"), "last word of a page precedes the first word of the next text page")
	assert.Equal(t, graph.Stats{Nodes: 3, Edges: 2}, g.Stats())
}

func TestPDFLoaderWithoutText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.pdf")
	writePDF(t, path, "", "")

	lines, err := LoadLines(NewPDFLoader(), path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
