// Package graph implements the word-adjacency graph built from a text corpus.
//
// A WordGraph maps every word to the words that directly followed it in the
// corpus, weighted by how many times that happened. Enumeration order is part
// of the contract: nodes come back in the order they were first seen, and the
// outgoing edges of a node in the order they were first created. Query
// results that list several words (bridge words, Dijkstra tie-breaks, random
// choices over neighbors) inherit this order.
//
// A WordGraph is produced once by a Builder and never changes afterwards, so
// it is safe for concurrent readers without locking.
package graph

import (
	"strings"

	"github.com/tidwall/btree"
)

// WordGraph is an immutable directed, weighted graph of word adjacencies.
type WordGraph struct {
	nodes []string       // first-seen order
	index map[string]int // word -> position in nodes
	out   []*adjacency   // parallel to nodes
	edges int

	// words keeps the node set sorted for prefix lookups.
	words *btree.BTreeG[string]
}

func newWordGraph() *WordGraph {
	return &WordGraph{
		index: make(map[string]int),
		words: btree.NewBTreeG[string](func(a, b string) bool { return a < b }),
	}
}

// addNode registers word if unseen and returns its position.
func (g *WordGraph) addNode(word string) int {
	if i, ok := g.index[word]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, word)
	g.index[word] = i
	g.out = append(g.out, newAdjacency())
	g.words.Set(word)
	return i
}

// addEdge increments the weight of src -> dst, creating both nodes and the edge when missing.
func (g *WordGraph) addEdge(src, dst string) {
	si := g.addNode(src)
	g.addNode(dst)
	adj := g.out[si]
	if _, ok := adj.weights[dst]; !ok {
		g.edges++
	}
	adj.increment(dst)
}

// NodeCount returns the number of distinct words.
func (g *WordGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct directed edges.
func (g *WordGraph) EdgeCount() int {
	return g.edges
}

// Stats returns node and edge counts.
func (g *WordGraph) Stats() Stats {
	return Stats{Nodes: g.NodeCount(), Edges: g.EdgeCount()}
}

// HasNode reports whether word is a node of the graph.
func (g *WordGraph) HasNode(word string) bool {
	_, ok := g.index[word]
	return ok
}

// HasEdge reports whether the directed edge src -> dst exists.
func (g *WordGraph) HasEdge(src, dst string) bool {
	_, ok := g.Weight(src, dst)
	return ok
}

// Weight returns the weight of src -> dst and whether the edge exists.
func (g *WordGraph) Weight(src, dst string) (int, bool) {
	i, ok := g.index[src]
	if !ok {
		return 0, false
	}
	w, ok := g.out[i].weights[dst]
	return w, ok
}

// Nodes returns a copy of the node list in first-seen order.
func (g *WordGraph) Nodes() []string {
	nodes := make([]string, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// NodeAt returns the i-th node in first-seen order.
func (g *WordGraph) NodeAt(i int) string {
	return g.nodes[i]
}

// OutDegree returns the number of distinct successors of word (0 for unknown words).
func (g *WordGraph) OutDegree(word string) int {
	i, ok := g.index[word]
	if !ok {
		return 0
	}
	return len(g.out[i].targets)
}

// EachNeighbor calls fn for every outgoing edge of word, in creation order,
// until fn returns false. Unknown words have no neighbors.
func (g *WordGraph) EachNeighbor(word string, fn func(target string, weight int) bool) {
	i, ok := g.index[word]
	if !ok {
		return
	}
	adj := g.out[i]
	for _, t := range adj.targets {
		if !fn(t, adj.weights[t]) {
			return
		}
	}
}

// Neighbors returns the outgoing edges of word in creation order.
func (g *WordGraph) Neighbors(word string) []Edge {
	var edges []Edge
	g.EachNeighbor(word, func(target string, weight int) bool {
		edges = append(edges, Edge{Source: word, Target: target, Weight: weight})
		return true
	})
	return edges
}

// NeighborAt returns the i-th outgoing edge of word in creation order.
// The caller must ensure 0 <= i < OutDegree(word).
func (g *WordGraph) NeighborAt(word string, i int) Edge {
	adj := g.out[g.index[word]]
	t := adj.targets[i]
	return Edge{Source: word, Target: t, Weight: adj.weights[t]}
}

// Edges returns every edge, grouped by source in node order and then in creation order.
func (g *WordGraph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for _, src := range g.nodes {
		edges = append(edges, g.Neighbors(src)...)
	}
	return edges
}

// Words returns the nodes starting with prefix in lexical order.
// A limit <= 0 means no limit.
func (g *WordGraph) Words(prefix string, limit int) []string {
	var out []string
	g.words.Ascend(prefix, func(word string) bool {
		if !strings.HasPrefix(word, prefix) {
			return false
		}
		out = append(out, word)
		return limit <= 0 || len(out) < limit
	})
	return out
}
