package engine

import (
	"context"
	"time"

	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/sanonone/wordgraph/pkg/metrics"
)

// RandomWalk starts at a uniformly chosen node and keeps following uniformly
// chosen outgoing edges. It stops on a dead end, right after traversing an
// edge a second time, when ctx is done or after Options.MaxWalkSteps edges.
// Nodes produced before a stop are always returned intact.
func (e *Engine) RandomWalk(ctx context.Context) WalkResult {
	start := time.Now()
	res := e.walk(ctx)

	outcome := OutcomeFound
	switch res.Stop {
	case StopEmptyGraph:
		outcome = OutcomeEmpty
	case StopCancelled:
		outcome = OutcomeCancelled
	}
	metrics.WalkLength.Observe(float64(len(res.Edges)))
	observe("walk", outcome, start)
	return res
}

func (e *Engine) walk(ctx context.Context) WalkResult {
	n := e.graph.NodeCount()
	if n == 0 {
		return WalkResult{Nodes: []string{}, Stop: StopEmptyGraph}
	}

	cur := e.graph.NodeAt(e.chooser.IntN(n))
	res := WalkResult{Nodes: []string{cur}}
	visited := make(map[graph.EdgeKey]struct{})

	for {
		if ctx.Err() != nil {
			res.Stop = StopCancelled
			return res
		}
		if e.opts.MaxWalkSteps > 0 && len(res.Edges) >= e.opts.MaxWalkSteps {
			res.Stop = StopMaxSteps
			return res
		}

		degree := e.graph.OutDegree(cur)
		if degree == 0 {
			res.Stop = StopDeadEnd
			return res
		}

		edge := e.graph.NeighborAt(cur, e.chooser.IntN(degree))
		res.Nodes = append(res.Nodes, edge.Target)
		res.Edges = append(res.Edges, edge)

		key := edge.Key()
		if _, seen := visited[key]; seen {
			res.Stop = StopRepeatedEdge
			return res
		}
		visited[key] = struct{}{}
		cur = edge.Target
	}
}
