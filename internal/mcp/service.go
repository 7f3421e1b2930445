package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/wordgraph/pkg/engine"
)

// Service adapts engine queries to MCP tool handlers.
type Service struct {
	engine *engine.Engine
}

func NewService(eng *engine.Engine) *Service {
	return &Service{engine: eng}
}

// --- Tool Handlers ---

func (s *Service) BridgeWords(ctx context.Context, req *mcp.CallToolRequest, args PairArgs) (*mcp.CallToolResult, BridgeWordsResult, error) {
	if args.From == "" || args.To == "" {
		return nil, BridgeWordsResult{}, fmt.Errorf("both 'from' and 'to' are required")
	}
	res := s.engine.BridgeWords(args.From, args.To)
	return nil, BridgeWordsResult{
		Message: res.String(),
		Missing: res.Missing,
		Words:   res.Words,
	}, nil
}

func (s *Service) Augment(ctx context.Context, req *mcp.CallToolRequest, args AugmentArgs) (*mcp.CallToolResult, AugmentResult, error) {
	res := s.engine.Augment(args.Text)
	out := AugmentResult{Text: res.Text}
	for _, ins := range res.Insertions {
		out.Insertions = append(out.Insertions, fmt.Sprintf("%s %s %s", ins.After, ins.Word, ins.Before))
	}
	return nil, out, nil
}

func (s *Service) ShortestPath(ctx context.Context, req *mcp.CallToolRequest, args PairArgs) (*mcp.CallToolResult, ShortestPathResult, error) {
	if args.From == "" || args.To == "" {
		return nil, ShortestPathResult{}, fmt.Errorf("both 'from' and 'to' are required")
	}
	res := s.engine.ShortestPath(args.From, args.To)
	return nil, ShortestPathResult{
		Message:  res.String(),
		Found:    res.Found,
		Path:     res.Path,
		Edges:    res.Edges,
		Distance: res.Distance,
	}, nil
}

// RandomWalk stops early if the client cancels the request.
func (s *Service) RandomWalk(ctx context.Context, req *mcp.CallToolRequest, args RandomWalkArgs) (*mcp.CallToolResult, RandomWalkResult, error) {
	res := s.engine.RandomWalk(ctx)
	return nil, RandomWalkResult{
		Walk:  res.String(),
		Nodes: res.Nodes,
		Stop:  string(res.Stop),
	}, nil
}

func (s *Service) Stats(ctx context.Context, req *mcp.CallToolRequest, args StatsArgs) (*mcp.CallToolResult, StatsResult, error) {
	st := s.engine.Stats()
	return nil, StatsResult{Nodes: st.Nodes, Edges: st.Edges}, nil
}
