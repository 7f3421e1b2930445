// Package render turns a word graph and query results into presentation formats:
// Graphviz DOT documents and terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/graph"
)

// Highlight colors.
const (
	ColorEndpoint = "#ff6b6b"
	ColorBridge   = "#ffd93d"
	ColorPath     = "#10ac84"
	ColorWalk     = "#54a0ff"
)

// Annotations maps nodes and edges to a highlight color.
type Annotations struct {
	Nodes map[string]string
	Edges map[graph.EdgeKey]string
}

// NewAnnotations returns empty annotations ready to be filled.
func NewAnnotations() Annotations {
	return Annotations{
		Nodes: make(map[string]string),
		Edges: make(map[graph.EdgeKey]string),
	}
}

func (a Annotations) node(word, color string) {
	a.Nodes[word] = color
}

func (a Annotations) edge(src, dst, color string) {
	a.Edges[graph.EdgeKey{Source: src, Target: dst}] = color
}

// ForBridge highlights the queried pair, the bridge words and the edges through them.
func ForBridge(res engine.BridgeResult) Annotations {
	ann := NewAnnotations()
	if len(res.Missing) > 0 {
		return ann
	}
	ann.node(res.From, ColorEndpoint)
	ann.node(res.To, ColorEndpoint)
	for _, w := range res.Words {
		ann.node(w, ColorBridge)
		ann.edge(res.From, w, ColorBridge)
		ann.edge(w, res.To, ColorBridge)
	}
	return ann
}

// ForAugment highlights every inserted bridge word and the two edges it completes.
func ForAugment(res engine.AugmentResult) Annotations {
	ann := NewAnnotations()
	for _, ins := range res.Insertions {
		ann.node(ins.After, ColorEndpoint)
		ann.node(ins.Before, ColorEndpoint)
		ann.node(ins.Word, ColorBridge)
		ann.edge(ins.After, ins.Word, ColorBridge)
		ann.edge(ins.Word, ins.Before, ColorBridge)
	}
	return ann
}

// ForPath highlights the nodes and edges of a shortest path.
func ForPath(res engine.PathResult) Annotations {
	ann := NewAnnotations()
	if !res.Found {
		return ann
	}
	for _, n := range res.Path {
		ann.node(n, ColorPath)
	}
	for _, e := range res.Edges {
		ann.edge(e.Source, e.Target, ColorPath)
	}
	ann.node(res.Source, ColorEndpoint)
	ann.node(res.Target, ColorEndpoint)
	return ann
}

// ForWalk highlights the visited nodes and traversed edges of a random walk.
func ForWalk(res engine.WalkResult) Annotations {
	ann := NewAnnotations()
	for _, n := range res.Nodes {
		ann.node(n, ColorWalk)
	}
	for _, e := range res.Edges {
		ann.edge(e.Source, e.Target, ColorWalk)
	}
	if len(res.Nodes) > 0 {
		ann.node(res.Nodes[0], ColorEndpoint)
	}
	return ann
}

// WriteDOT renders every node and weighted edge of g as a Graphviz digraph,
// applying the highlights in ann. Nodes and edges follow enumeration order.
func WriteDOT(w io.Writer, g *graph.WordGraph, ann Annotations) error {
	var sb strings.Builder

	sb.WriteString("digraph WordGraph {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=ellipse];\n")
	sb.WriteString("\n")

	for _, n := range g.Nodes() {
		if color, ok := ann.Nodes[n]; ok {
			sb.WriteString(fmt.Sprintf("    %s [style=filled, fillcolor=\"%s\"];\n", sanitizeDOTID(n), color))
		} else {
			sb.WriteString(fmt.Sprintf("    %s;\n", sanitizeDOTID(n)))
		}
	}
	sb.WriteString("\n")

	for _, e := range g.Edges() {
		if color, ok := ann.Edges[e.Key()]; ok {
			sb.WriteString(fmt.Sprintf("    %s -> %s [label=\"%d\", color=\"%s\", penwidth=2];\n",
				sanitizeDOTID(e.Source), sanitizeDOTID(e.Target), e.Weight, color))
		} else {
			sb.WriteString(fmt.Sprintf("    %s -> %s [label=\"%d\"];\n",
				sanitizeDOTID(e.Source), sanitizeDOTID(e.Target), e.Weight))
		}
	}

	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write DOT: %w", err)
	}
	return nil
}

func sanitizeDOTID(s string) string {
	// DOT IDs can be quoted
	return fmt.Sprintf("\"%s\"", strings.ReplaceAll(s, "\"", "\\\""))
}
