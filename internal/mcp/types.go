package mcp

import "github.com/sanonone/wordgraph/pkg/graph"

// --- Tool Arguments ---

type PairArgs struct {
	From string `json:"from" jsonschema:"The first word (lowercase letters only)"`
	To   string `json:"to" jsonschema:"The second word (lowercase letters only)"`
}

type AugmentArgs struct {
	Text string `json:"text" jsonschema:"Free text to enrich with bridge words"`
}

type RandomWalkArgs struct{}

type StatsArgs struct{}

// --- Tool Results ---

type BridgeWordsResult struct {
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
	Words   []string `json:"words,omitempty"`
}

type AugmentResult struct {
	Text       string   `json:"text"`
	Insertions []string `json:"insertions,omitempty"` // "after word before" triples
}

type ShortestPathResult struct {
	Message  string       `json:"message"`
	Found    bool         `json:"found"`
	Path     []string     `json:"path,omitempty"`
	Edges    []graph.Edge `json:"edges,omitempty"`
	Distance int          `json:"distance"`
}

type RandomWalkResult struct {
	Walk  string   `json:"walk"`
	Nodes []string `json:"nodes,omitempty"`
	Stop  string   `json:"stop"`
}

type StatsResult struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}
