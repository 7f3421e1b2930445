// Package mcp exposes the word graph queries as Model Context Protocol tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/wordgraph/pkg/engine"
)

func NewMCPServer(eng *engine.Engine, version string) *mcp.Server {
	service := NewService(eng)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "wordgraph",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "query_bridge_words",
		Description: "List the bridge words between two words: every w such that 'from w' and 'w to' both occur in the corpus.",
	}, service.BridgeWords)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "augment_text",
		Description: "Rewrite a text by inserting a random bridge word between each pair of adjacent words that has one.",
	}, service.Augment)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "shortest_path",
		Description: "Find the minimum-weight path between two words in the word adjacency graph.",
	}, service.ShortestPath)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "random_walk",
		Description: "Walk the word graph from a random word until a dead end or a repeated edge.",
	}, service.RandomWalk)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Report how many distinct words and directed edges the graph holds.",
	}, service.Stats)

	return s
}
