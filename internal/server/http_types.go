package server

import (
	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/graph"
)

// PairRequest is the body of bridge-word and shortest-path queries.
type PairRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AugmentRequest is the body of a text augmentation query.
type AugmentRequest struct {
	Text string `json:"text"`
}

// BridgeResponse carries the structured result and its rendered message.
type BridgeResponse struct {
	engine.BridgeResult
	Message string `json:"message"`
}

type AugmentResponse struct {
	engine.AugmentResult
	Message string `json:"message"`
}

type PathResponse struct {
	engine.PathResult
	Message string `json:"message"`
}

type WalkResponse struct {
	engine.WalkResult
	Message string `json:"message"`
}

// EdgesResponse lists graph edges, optionally restricted to one source word.
type EdgesResponse struct {
	Edges []graph.Edge `json:"edges"`
	Count int          `json:"count"`
}

// WordsResponse lists the nodes matching a prefix.
type WordsResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}
