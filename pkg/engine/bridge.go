package engine

import "time"

// BridgeWords returns every word w such that a→w and w→b are edges of the graph.
// Unknown inputs are reported in the result, spelled as given.
func (e *Engine) BridgeWords(a, b string) BridgeResult {
	start := time.Now()
	res := BridgeResult{From: a, To: b, Words: []string{}}

	if missing := e.missingWords(a, b); len(missing) > 0 {
		res.Missing = missing
	} else {
		res.Words = e.bridgeCandidates(a, b)
	}

	observe("bridge", res.Outcome(), start)
	return res
}

// bridgeCandidates scans the successors of a in edge creation order and keeps
// those with an edge to b. Unknown words yield an empty, non-nil slice.
func (e *Engine) bridgeCandidates(a, b string) []string {
	words := []string{}
	e.graph.EachNeighbor(a, func(w string, _ int) bool {
		if e.graph.HasEdge(w, b) {
			words = append(words, w)
		}
		return true
	})
	return words
}
