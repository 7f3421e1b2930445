// Package engine answers analytical queries over a word graph.
//
// It owns an immutable graph.WordGraph and exposes the four queries built on
// top of it: bridge words, bridge-word text augmentation, weighted shortest
// path and random walk. Queries never modify the graph and return plain
// result values; unknown words, missing bridges and unreachable targets are
// reported inside those values, never as errors.
//
// Basic usage:
//
//	opts := engine.DefaultOptions("./corpus.txt")
//	eng, err := engine.Open(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(eng.BridgeWords("new", "and"))
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sanonone/wordgraph/pkg/corpus"
	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/sanonone/wordgraph/pkg/metrics"
	"github.com/sanonone/wordgraph/pkg/textanalyzer"
)

// Options configures how an Engine is built and how its queries behave.
type Options struct {
	// CorpusPath is the file the graph is built from. Only used by Open.
	// StdinPath streams the corpus from Input instead.
	CorpusPath string

	// Input is read when CorpusPath is StdinPath. Defaults to os.Stdin.
	Input io.Reader

	// Loader reads CorpusPath. Defaults to corpus.NewAutoLoader().
	Loader corpus.Loader

	// Chooser drives every random decision (augmentation, walks).
	// Defaults to NewSecureChooser(); tests pass NewSeededChooser or a fake.
	Chooser Chooser

	// MaxWalkSteps bounds the number of edges a random walk may traverse.
	// 0 means unbounded: the walk ends on a dead end, a repeated edge or cancellation.
	MaxWalkSteps int
}

// StdinPath is the CorpusPath that selects Options.Input.
const StdinPath = "-"

// DefaultOptions returns the standard configuration for the given corpus.
func DefaultOptions(corpusPath string) Options {
	return Options{
		CorpusPath: corpusPath,
	}
}

// Engine runs queries against a single, immutable word graph.
// It is safe for concurrent use.
type Engine struct {
	graph    *graph.WordGraph
	analyzer textanalyzer.Analyzer
	chooser  Chooser
	opts     Options
}

// Open loads the corpus described by opts, builds the graph and returns a ready Engine.
// Failing to read the corpus is the only error condition.
func Open(ctx context.Context, opts Options) (*Engine, error) {
	if opts.CorpusPath == "" {
		return nil, fmt.Errorf("corpus path is required")
	}
	start := time.Now()
	var g *graph.WordGraph
	if opts.CorpusPath == StdinPath {
		input := opts.Input
		if input == nil {
			input = os.Stdin
		}
		var err error
		g, err = graph.BuildFromReader(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus from stdin: %w", err)
		}
	} else {
		loader := opts.Loader
		if loader == nil {
			loader = corpus.NewAutoLoader()
		}
		lines, err := corpus.LoadLines(loader, opts.CorpusPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus %q: %w", opts.CorpusPath, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g = graph.Build(lines)
	}

	slog.Info("Word graph built",
		"corpus", opts.CorpusPath,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start).String(),
	)

	return New(g, opts), nil
}

// New wraps an already built graph.
func New(g *graph.WordGraph, opts Options) *Engine {
	chooser := opts.Chooser
	if chooser == nil {
		chooser = NewSecureChooser()
	}

	metrics.GraphNodes.Set(float64(g.NodeCount()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	return &Engine{
		graph:    g,
		analyzer: textanalyzer.NewASCIIAnalyzer(),
		chooser:  chooser,
		opts:     opts,
	}
}

// Graph returns the underlying graph. It must be treated as read-only.
func (e *Engine) Graph() *graph.WordGraph {
	return e.graph
}

// Stats returns node and edge counts of the graph.
func (e *Engine) Stats() graph.Stats {
	return e.graph.Stats()
}

// missingWords lists, in argument order, the words that are not nodes.
// A word queried twice is reported once.
func (e *Engine) missingWords(words ...string) []string {
	var missing []string
	for i, w := range words {
		if e.graph.HasNode(w) {
			continue
		}
		dup := false
		for _, prev := range words[:i] {
			if prev == w {
				dup = true
				break
			}
		}
		if !dup {
			missing = append(missing, w)
		}
	}
	return missing
}

// observe records the duration and outcome of a query.
func observe(kind, outcome string, start time.Time) {
	metrics.QueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.QueriesTotal.WithLabelValues(kind, outcome).Inc()
}
