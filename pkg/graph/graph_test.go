package graph

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCountsConsecutivePairs(t *testing.T) {
	g := Build([]string{"To explore strange new worlds,", "To seek out new life and new civilizations?"})

	w, ok := g.Weight("to", "explore")
	require.True(t, ok)
	assert.Equal(t, 1, w)

	// "new" is followed by "worlds", "life" and "civilizations" once each.
	assert.Equal(t, []Edge{
		{Source: "new", Target: "worlds", Weight: 1},
		{Source: "new", Target: "life", Weight: 1},
		{Source: "new", Target: "civilizations", Weight: 1},
	}, g.Neighbors("new"))

	// "to" follows "worlds" across the line boundary.
	assert.True(t, g.HasEdge("worlds", "to"))
	w, _ = g.Weight("to", "seek")
	assert.Equal(t, 1, w)
}

func TestBuildAccumulatesWeights(t *testing.T) {
	g := Build([]string{"a b a b", "a b"})
	w, ok := g.Weight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 3, w)

	w, ok = g.Weight("b", "a")
	require.True(t, ok)
	assert.Equal(t, 2, w, "b->a includes the pair straddling the line break")

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestEdgesAreDirected(t *testing.T) {
	g := Build([]string{"x y y x y"})
	xy, _ := g.Weight("x", "y")
	yx, _ := g.Weight("y", "x")
	yy, _ := g.Weight("y", "y")
	assert.Equal(t, 2, xy)
	assert.Equal(t, 1, yx)
	assert.Equal(t, 1, yy)
}

func TestAbsentEdgeIsNotZeroWeight(t *testing.T) {
	g := Build([]string{"a b"})
	w, ok := g.Weight("b", "a")
	assert.False(t, ok)
	assert.Zero(t, w)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1)
	}
}

func TestNodeEnumerationOrder(t *testing.T) {
	g := Build([]string{"delta alpha charlie", "alpha bravo"})
	assert.Equal(t, []string{"delta", "alpha", "charlie", "bravo"}, g.Nodes())
	assert.Equal(t, "charlie", g.NodeAt(2))
}

func TestEdgeEnumerationFollowsCreationOrder(t *testing.T) {
	g := Build([]string{"the zebra the apple the mango the apple"})
	var targets []string
	g.EachNeighbor("the", func(target string, _ int) bool {
		targets = append(targets, target)
		return true
	})
	assert.Equal(t, []string{"zebra", "apple", "mango"}, targets)
	assert.Equal(t, Edge{Source: "the", Target: "apple", Weight: 2}, g.NeighborAt("the", 1))
	assert.Equal(t, 3, g.OutDegree("the"))
}

func TestEachNeighborStopsEarly(t *testing.T) {
	g := Build([]string{"a b a c a d"})
	calls := 0
	g.EachNeighbor("a", func(string, int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestSingleTokenCorpusHasIsolatedNode(t *testing.T) {
	g := Build([]string{"...Hello!"})
	assert.Equal(t, []string{"hello"}, g.Nodes())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Neighbors("hello"))
}

func TestEmptyCorpus(t *testing.T) {
	g := Build(nil)
	assert.Zero(t, g.NodeCount())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasNode(""))
	assert.Equal(t, Stats{}, g.Stats())
}

func TestUnknownWordHasNoNeighbors(t *testing.T) {
	g := Build([]string{"a b"})
	assert.Nil(t, g.Neighbors("zzz"))
	assert.Zero(t, g.OutDegree("zzz"))
}

func TestBuilderIsSealedAfterGraph(t *testing.T) {
	b := NewBuilder()
	b.AddLine("one two")
	g := b.Graph()
	b.AddLine("three four")
	b.AddToken("five")

	assert.Equal(t, []string{"one", "two"}, g.Nodes())
	assert.Same(t, g, b.Graph())
}

func TestWordsPrefixLookup(t *testing.T) {
	g := Build([]string{"new worlds and new life and civilizations nowhere"})
	assert.Equal(t, []string{"new", "nowhere"}, g.Words("n", 0))
	assert.Equal(t, []string{"and"}, g.Words("an", 0))
	assert.Equal(t, []string{"and", "civilizations"}, g.Words("", 2))
	assert.Empty(t, g.Words("q", 0))
}

func TestBuildFromReader(t *testing.T) {
	r := strings.NewReader("The quick\r\nbrown fox.\n\nThe end")
	g, err := BuildFromReader(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("quick", "brown"))
	assert.True(t, g.HasEdge("fox", "the"))
	w, _ := g.Weight("the", "quick")
	assert.Equal(t, 1, w)
}

func TestBuildFromReaderLongLine(t *testing.T) {
	long := strings.Repeat("new worlds ", 200_000) // well over 1 MiB on one line
	g, err := BuildFromReader(context.Background(), strings.NewReader("explore "+long+"\nstrange"))
	require.NoError(t, err)

	assert.Equal(t, Build([]string{"explore " + long, "strange"}).Stats(), g.Stats())
	w, ok := g.Weight("new", "worlds")
	require.True(t, ok)
	assert.Equal(t, 200_000, w)
	assert.True(t, g.HasEdge("worlds", "strange"))
}

func TestBuildFromReaderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildFromReader(ctx, strings.NewReader("a b\nc d\n"))
	assert.True(t, errors.Is(err, context.Canceled))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestBuildFromReaderWrapsReadErrors(t *testing.T) {
	_, err := BuildFromReader(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read corpus")
}

// Every stored weight must equal the number of times the pair occurs in the
// flattened token stream, including pairs straddling line boundaries.
func TestWeightsMatchPairCountsOnRandomCorpora(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		var lines []string
		var stream []string
		for l := 0; l < 1+rng.IntN(6); l++ {
			var words []string
			for w := 0; w < rng.IntN(6); w++ {
				word := vocab[rng.IntN(len(vocab))]
				words = append(words, word)
				stream = append(stream, word)
			}
			lines = append(lines, strings.Join(words, " ,"))
		}

		want := map[EdgeKey]int{}
		for i := 1; i < len(stream); i++ {
			want[EdgeKey{Source: stream[i-1], Target: stream[i]}]++
		}

		g := Build(lines)
		got := map[EdgeKey]int{}
		for _, e := range g.Edges() {
			got[e.Key()] = e.Weight
		}
		require.Equal(t, want, got, "round %d, lines %q", round, lines)
		require.Equal(t, len(want), g.EdgeCount())
	}
}
