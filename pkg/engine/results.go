package engine

import (
	"fmt"
	"strings"

	"github.com/sanonone/wordgraph/pkg/graph"
)

// Query outcomes, used as metric labels and in JSON payloads.
const (
	OutcomeFound     = "found"
	OutcomeEmpty     = "empty"
	OutcomeMissing   = "missing"
	OutcomeCancelled = "cancelled"
)

// missingMessage renders the "unknown word" template.
func missingMessage(missing []string) string {
	if len(missing) == 1 {
		return fmt.Sprintf("No %s in the graph!", missing[0])
	}
	return fmt.Sprintf("No %s or %s in the graph!", missing[0], missing[1])
}

// BridgeResult is the answer of a bridge-word query from From to To.
type BridgeResult struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Missing []string `json:"missing,omitempty"` // Inputs that are not nodes, literal spelling
	Words   []string `json:"words"`             // Bridge words in edge enumeration order
}

// Outcome classifies the result.
func (r BridgeResult) Outcome() string {
	switch {
	case len(r.Missing) > 0:
		return OutcomeMissing
	case len(r.Words) == 0:
		return OutcomeEmpty
	default:
		return OutcomeFound
	}
}

func (r BridgeResult) String() string {
	switch r.Outcome() {
	case OutcomeMissing:
		return missingMessage(r.Missing)
	case OutcomeEmpty:
		return fmt.Sprintf("No bridge words from %s to %s!", r.From, r.To)
	}
	if len(r.Words) == 1 {
		return fmt.Sprintf("The bridge word from %s to %s is: %s.", r.From, r.To, r.Words[0])
	}
	return fmt.Sprintf("The bridge words from %s to %s are: %s.", r.From, r.To, strings.Join(r.Words, ", "))
}

// Insertion describes one bridge word spliced into an augmented text.
type Insertion struct {
	After      string   `json:"after"`      // Term preceding the inserted word
	Word       string   `json:"word"`       // Chosen bridge word
	Before     string   `json:"before"`     // Term following the inserted word
	Candidates []string `json:"candidates"` // Every valid bridge word for the pair
}

// AugmentResult is an input text rewritten with bridge words.
type AugmentResult struct {
	Terms      []string    `json:"terms"` // Tokenized input
	Text       string      `json:"text"`  // Terms with bridge words interleaved, space separated
	Insertions []Insertion `json:"insertions,omitempty"`
}

func (r AugmentResult) String() string {
	return r.Text
}

// PathResult is the answer of a shortest-path query.
type PathResult struct {
	Source   string       `json:"source"`
	Target   string       `json:"target"`
	Missing  []string     `json:"missing,omitempty"`
	Found    bool         `json:"found"`
	Path     []string     `json:"path,omitempty"`  // Source ... Target
	Edges    []graph.Edge `json:"edges,omitempty"` // One per hop, with weights
	Distance int          `json:"distance"`        // Sum of the edge weights along Path
}

// Outcome classifies the result.
func (r PathResult) Outcome() string {
	switch {
	case len(r.Missing) > 0:
		return OutcomeMissing
	case !r.Found:
		return OutcomeEmpty
	default:
		return OutcomeFound
	}
}

func (r PathResult) String() string {
	switch r.Outcome() {
	case OutcomeMissing:
		return missingMessage(r.Missing)
	case OutcomeEmpty:
		return fmt.Sprintf("No path from %s to %s!", r.Source, r.Target)
	}
	return fmt.Sprintf("Shortest path: %s (Length: %d)", strings.Join(r.Path, " -> "), r.Distance)
}

// StopReason tells why a random walk ended.
type StopReason string

const (
	StopEmptyGraph   StopReason = "empty_graph"
	StopDeadEnd      StopReason = "dead_end"
	StopRepeatedEdge StopReason = "repeated_edge"
	StopCancelled    StopReason = "cancelled"
	StopMaxSteps     StopReason = "max_steps"
)

// WalkResult is the sequence of nodes visited by a random walk.
type WalkResult struct {
	Nodes []string     `json:"nodes"` // Start node first
	Edges []graph.Edge `json:"edges,omitempty"`
	Stop  StopReason   `json:"stop"`
}

func (r WalkResult) String() string {
	return strings.Join(r.Nodes, " ")
}
