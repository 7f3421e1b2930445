package graph

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sanonone/wordgraph/pkg/textanalyzer"
)

// Builder accumulates a WordGraph from a stream of tokens.
//
// The previous token is carried across lines: the last word of one line and
// the first word of the next one form an edge. Calling Graph seals the
// builder; later additions are ignored.
type Builder struct {
	g       *WordGraph
	prev    string
	hasPrev bool
	sealed  bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{g: newWordGraph()}
}

// AddLine tokenizes line and adds its tokens.
func (b *Builder) AddLine(line string) {
	for _, tok := range textanalyzer.Tokenize(line) {
		b.AddToken(tok)
	}
}

// AddToken appends a single, already normalized token to the stream.
func (b *Builder) AddToken(tok string) {
	if b.sealed || tok == "" {
		return
	}
	if b.hasPrev {
		b.g.addEdge(b.prev, tok)
	} else {
		b.g.addNode(tok)
	}
	b.prev = tok
	b.hasPrev = true
}

// Graph seals the builder and returns the finished graph.
func (b *Builder) Graph() *WordGraph {
	b.sealed = true
	return b.g
}

// Build constructs a graph from corpus lines.
func Build(lines []string) *WordGraph {
	b := NewBuilder()
	for _, tok := range textanalyzer.TokenizeLines(lines) {
		b.AddToken(tok)
	}
	return b.Graph()
}

// BuildFromReader streams lines from r into a new graph. Lines have no
// length limit, matching corpora loaded from files.
// The context is checked between lines.
func BuildFromReader(ctx context.Context, r io.Reader) (*WordGraph, error) {
	b := NewBuilder()
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := br.ReadString('\n')
		if line != "" {
			b.AddLine(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus: %w", err)
		}
	}
	return b.Graph(), nil
}
