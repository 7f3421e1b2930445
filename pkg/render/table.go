package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sanonone/wordgraph/pkg/graph"
)

// WriteEdgeTable prints edges as a table with a total weight footer.
func WriteEdgeTable(w io.Writer, edges []graph.Edge) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Target", "Weight"})

	total := 0
	for _, e := range edges {
		t.AppendRow(table.Row{e.Source, e.Target, e.Weight})
		total += e.Weight
	}
	t.AppendFooter(table.Row{"", "Total", total})
	t.Render()
}

// WriteStatsTable prints node and edge counts.
func WriteStatsTable(w io.Writer, stats graph.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Nodes", "Edges"})
	t.AppendRow(table.Row{stats.Nodes, stats.Edges})
	t.Render()
}
