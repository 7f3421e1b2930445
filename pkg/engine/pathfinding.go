package engine

import (
	"container/heap"
	"time"

	"github.com/sanonone/wordgraph/pkg/graph"
)

// shortestTree holds the outcome of a Dijkstra run.
type shortestTree struct {
	dist map[string]int
	prev map[string]string
}

// dijkstra runs lazy-relaxation Dijkstra from source. When target is not
// empty the search stops as soon as target is extracted.
func (e *Engine) dijkstra(source, target string) shortestTree {
	t := shortestTree{
		dist: map[string]int{source: 0},
		prev: make(map[string]string),
	}
	done := make(map[string]bool)

	var seq uint64
	h := &frontier{}
	heap.Push(h, frontierItem{node: source, dist: 0, seq: seq})

	for h.Len() > 0 {
		cur := heap.Pop(h).(frontierItem)
		if done[cur.node] || cur.dist > t.dist[cur.node] {
			continue // stale entry
		}
		done[cur.node] = true
		if cur.node == target {
			break
		}

		e.graph.EachNeighbor(cur.node, func(next string, weight int) bool {
			nd := cur.dist + weight
			if best, seen := t.dist[next]; !seen || nd < best {
				t.dist[next] = nd
				t.prev[next] = cur.node
				seq++
				heap.Push(h, frontierItem{node: next, dist: nd, seq: seq})
			}
			return true
		})
	}
	return t
}

// pathTo rebuilds the path from the tree root to target following predecessor links.
func (e *Engine) pathTo(t shortestTree, source, target string) PathResult {
	res := PathResult{Source: source, Target: target}
	dist, ok := t.dist[target]
	if !ok {
		return res
	}

	path := []string{target}
	for cur := target; cur != source; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	edges := make([]graph.Edge, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		w, _ := e.graph.Weight(path[i-1], path[i])
		edges = append(edges, graph.Edge{Source: path[i-1], Target: path[i], Weight: w})
	}

	res.Found = true
	res.Path = path
	res.Edges = edges
	res.Distance = dist
	return res
}

// ShortestPath returns a minimum-weight path from a to b.
func (e *Engine) ShortestPath(a, b string) PathResult {
	start := time.Now()

	var res PathResult
	if missing := e.missingWords(a, b); len(missing) > 0 {
		res = PathResult{Source: a, Target: b, Missing: missing}
	} else {
		res = e.pathTo(e.dijkstra(a, b), a, b)
	}

	observe("path", res.Outcome(), start)
	return res
}

// ShortestPathsFrom returns the shortest path from a to every other node
// reachable from it, in node enumeration order. An unknown word yields a
// single result carrying the missing word.
func (e *Engine) ShortestPathsFrom(a string) []PathResult {
	start := time.Now()

	if missing := e.missingWords(a); len(missing) > 0 {
		observe("path_all", OutcomeMissing, start)
		return []PathResult{{Source: a, Missing: missing}}
	}

	t := e.dijkstra(a, "")
	var results []PathResult
	for _, node := range e.graph.Nodes() {
		if node == a {
			continue
		}
		if _, ok := t.dist[node]; ok {
			results = append(results, e.pathTo(t, a, node))
		}
	}

	outcome := OutcomeFound
	if len(results) == 0 {
		outcome = OutcomeEmpty
	}
	observe("path_all", outcome, start)
	return results
}
