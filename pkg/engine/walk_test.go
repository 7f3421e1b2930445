package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWalkEmptyGraph(t *testing.T) {
	eng := newTestEngine(t, nil)

	res := eng.RandomWalk(context.Background())
	assert.Empty(t, res.Nodes)
	assert.Equal(t, StopEmptyGraph, res.Stop)
	assert.Equal(t, "", res.String())
}

func TestRandomWalkSingleNode(t *testing.T) {
	eng := newTestEngine(t, nil, "lonely")

	res := eng.RandomWalk(context.Background())
	assert.Equal(t, []string{"lonely"}, res.Nodes)
	assert.Equal(t, StopDeadEnd, res.Stop)
}

func TestRandomWalkStopsAfterRepeatedEdge(t *testing.T) {
	eng := newTestEngine(t, &scriptedChooser{picks: []int{0}}, "a b c a")

	res := eng.RandomWalk(context.Background())
	assert.Equal(t, "a b c a b", res.String())
	assert.Equal(t, StopRepeatedEdge, res.Stop)
	require.Len(t, res.Edges, 4)
	assert.Equal(t, res.Edges[0].Key(), res.Edges[3].Key())
}

func TestRandomWalkStopsAtDeadEnd(t *testing.T) {
	eng := newTestEngine(t, &scriptedChooser{picks: []int{0}}, "x y z")

	res := eng.RandomWalk(context.Background())
	assert.Equal(t, []string{"x", "y", "z"}, res.Nodes)
	assert.Equal(t, StopDeadEnd, res.Stop)
}

func TestRandomWalkFollowsChosenEdge(t *testing.T) {
	// Start at node 1 ("b"), then take b's second edge ("d").
	eng := newTestEngine(t, &scriptedChooser{picks: []int{1, 1, 0}}, "a b c", "b d")

	res := eng.RandomWalk(context.Background())
	assert.Equal(t, "b", res.Nodes[0])
	assert.Equal(t, "d", res.Nodes[1])
}

func TestRandomWalkCancelled(t *testing.T) {
	eng := newTestEngine(t, &scriptedChooser{picks: []int{0}}, "a b c a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := eng.RandomWalk(ctx)
	assert.Equal(t, []string{"a"}, res.Nodes)
	assert.Equal(t, StopCancelled, res.Stop)
}

func TestRandomWalkMaxSteps(t *testing.T) {
	g := graph.Build([]string{"a b c d e f"})
	eng := New(g, Options{Chooser: &scriptedChooser{picks: []int{0}}, MaxWalkSteps: 2})

	res := eng.RandomWalk(context.Background())
	assert.Equal(t, []string{"a", "b", "c"}, res.Nodes)
	assert.Equal(t, StopMaxSteps, res.Stop)
}

func TestRandomWalkInvariants(t *testing.T) {
	corpus := "the quick brown fox jumps over the lazy dog and the dog sleeps over the fox"
	g := graph.Build([]string{corpus})

	for seed := uint64(0); seed < 200; seed++ {
		eng := New(g, Options{Chooser: NewSeededChooser(seed)})
		res := eng.RandomWalk(context.Background())

		require.NotEmpty(t, res.Nodes)
		require.Len(t, res.Edges, len(res.Nodes)-1)

		seen := map[graph.EdgeKey]bool{}
		for i, e := range res.Edges {
			assert.Equal(t, res.Nodes[i], e.Source)
			assert.Equal(t, res.Nodes[i+1], e.Target)
			assert.True(t, g.HasEdge(e.Source, e.Target))
			if i < len(res.Edges)-1 {
				assert.False(t, seen[e.Key()], "edge %v repeated before the end (seed %d)", e.Key(), seed)
			}
			seen[e.Key()] = true
		}

		last := res.Nodes[len(res.Nodes)-1]
		switch res.Stop {
		case StopDeadEnd:
			assert.Zero(t, g.OutDegree(last))
		case StopRepeatedEdge:
			final := res.Edges[len(res.Edges)-1].Key()
			count := 0
			for _, e := range res.Edges {
				if e.Key() == final {
					count++
				}
			}
			assert.Equal(t, 2, count)
		default:
			t.Fatalf("unexpected stop reason %q (seed %d)", res.Stop, seed)
		}
		assert.Equal(t, strings.Join(res.Nodes, " "), res.String())
	}
}

func TestRandomWalkSeedIsReproducible(t *testing.T) {
	g := graph.Build([]string{"the quick brown fox jumps over the lazy dog and the dog sleeps"})

	a := New(g, Options{Chooser: NewSeededChooser(5)}).RandomWalk(context.Background())
	b := New(g, Options{Chooser: NewSeededChooser(5)}).RandomWalk(context.Background())
	assert.Equal(t, a, b)
}
