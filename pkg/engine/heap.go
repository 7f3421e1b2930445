package engine

// frontierItem is a tentative distance for a node in the Dijkstra frontier.
type frontierItem struct {
	node string
	dist int
	seq  uint64 // push order, breaks ties between equal distances
}

// frontier is a min-heap of frontierItem for container/heap.
// The same node may appear several times; stale entries are skipped by the caller.
type frontier []frontierItem

func (h frontier) Len() int { return len(h) }

func (h frontier) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}

func (h frontier) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontier) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *frontier) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
