package graph

// Edge is a weighted, directed connection between two words.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"` // Number of times Target directly followed Source (always >= 1)
}

// Key returns the identity of the edge, ignoring its weight.
func (e Edge) Key() EdgeKey {
	return EdgeKey{Source: e.Source, Target: e.Target}
}

// EdgeKey identifies a directed edge.
type EdgeKey struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// adjacency is the ordered outgoing edge list of a single node.
// targets keeps the creation order, weights is the lookup index.
type adjacency struct {
	targets []string
	weights map[string]int
}

func newAdjacency() *adjacency {
	return &adjacency{weights: make(map[string]int)}
}

func (a *adjacency) increment(target string) {
	if _, ok := a.weights[target]; !ok {
		a.targets = append(a.targets, target)
	}
	a.weights[target]++
}

// Stats summarizes the size of a graph.
type Stats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}
