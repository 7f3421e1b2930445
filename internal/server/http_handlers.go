package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"

	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/sanonone/wordgraph/pkg/render"
)

const maxBodyBytes = 1 << 20

// registerHTTPHandlers sets up the REST routes.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.router)
}

// router dispatches by path and delegates to the matching handler.
func (s *Server) router(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/debug/pprof") {
		switch {
		case path == "/debug/pprof/":
			pprof.Index(w, r)
		case path == "/debug/pprof/cmdline":
			pprof.Cmdline(w, r)
		case path == "/debug/pprof/profile":
			pprof.Profile(w, r)
		case path == "/debug/pprof/symbol":
			pprof.Symbol(w, r)
		case path == "/debug/pprof/trace":
			pprof.Trace(w, r)
		default:
			s.writeHTTPError(w, http.StatusNotFound, "pprof endpoint not found")
		}
		return
	}

	switch path {
	case "/graph/stats":
		s.handleStats(w, r)
		return
	case "/graph/edges":
		s.handleEdges(w, r)
		return
	case "/graph/words":
		s.handleWords(w, r)
		return
	case "/graph/dot":
		s.handleDOT(w, r)
		return
	case "/query/bridge":
		s.handleBridge(w, r)
		return
	case "/query/augment":
		s.handleAugment(w, r)
		return
	case "/query/path":
		s.handlePath(w, r)
		return
	case "/query/walk":
		s.handleWalk(w, r)
		return
	case "/walks":
		s.handleStartWalk(w, r)
		return
	}

	// /walks/{id}
	if id, ok := strings.CutPrefix(path, "/walks/"); ok && id != "" {
		s.handleWalkTask(w, r, id)
		return
	}

	s.writeHTTPError(w, http.StatusNotFound, "endpoint not found")
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Graph inspection ---

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, s.Engine.Stats())
}

func (s *Server) handleEdges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	g := s.Engine.Graph()
	resp := EdgesResponse{}
	if source := r.URL.Query().Get("source"); source != "" {
		if !g.HasNode(source) {
			s.writeHTTPError(w, http.StatusNotFound, fmt.Sprintf("No %s in the graph!", source))
			return
		}
		resp.Edges = g.Neighbors(source)
	} else {
		resp.Edges = g.Edges()
	}
	if resp.Edges == nil {
		resp.Edges = []graph.Edge{}
	}
	resp.Count = len(resp.Edges)
	s.writeHTTPResponse(w, http.StatusOK, resp)
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeHTTPError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	prefix := q.Get("prefix")
	words := s.Engine.Graph().Words(prefix, limit)
	if words == nil {
		words = []string{}
	}
	s.writeHTTPResponse(w, http.StatusOK, WordsResponse{Prefix: prefix, Words: words})
}

// handleDOT renders the graph as Graphviz DOT. The optional from/to query
// parameters highlight the shortest path between two words.
func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	ann := render.NewAnnotations()
	q := r.URL.Query()
	if from, to := q.Get("from"), q.Get("to"); from != "" && to != "" {
		ann = render.ForPath(s.Engine.ShortestPath(from, to))
	}

	var buf bytes.Buffer
	if err := render.WriteDOT(&buf, s.Engine.Graph(), ann); err != nil {
		s.writeHTTPError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// --- Queries ---

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	if req.From == "" || req.To == "" {
		s.writeHTTPError(w, http.StatusBadRequest, "'from' and 'to' are required")
		return
	}

	res := s.Engine.BridgeWords(req.From, req.To)
	s.writeHTTPResponse(w, http.StatusOK, BridgeResponse{BridgeResult: res, Message: res.String()})
}

func (s *Server) handleAugment(w http.ResponseWriter, r *http.Request) {
	var req AugmentRequest
	if !s.decodePost(w, r, &req) {
		return
	}

	res := s.Engine.Augment(req.Text)
	s.writeHTTPResponse(w, http.StatusOK, AugmentResponse{AugmentResult: res, Message: res.String()})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !s.decodePost(w, r, &req) {
		return
	}
	if req.From == "" || req.To == "" {
		s.writeHTTPError(w, http.StatusBadRequest, "'from' and 'to' are required")
		return
	}

	res := s.Engine.ShortestPath(req.From, req.To)
	s.writeHTTPResponse(w, http.StatusOK, PathResponse{PathResult: res, Message: res.String()})
}

// handleWalk runs a walk synchronously, bound to the request context.
func (s *Server) handleWalk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	res := s.Engine.RandomWalk(r.Context())
	if err := s.persistWalk(res); err != nil {
		s.writeHTTPError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeHTTPResponse(w, http.StatusOK, WalkResponse{WalkResult: res, Message: res.String()})
}

// --- Walk tasks ---

func (s *Server) handleStartWalk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	task := s.taskManager.Start(func(ctx context.Context) (engine.WalkResult, error) {
		res := s.Engine.RandomWalk(ctx)
		return res, s.persistWalk(res)
	})
	slog.Debug("Walk task started", "id", task.ID)

	s.writeHTTPResponse(w, http.StatusAccepted, task.View())
}

func (s *Server) handleWalkTask(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		task, ok := s.taskManager.GetTask(id)
		if !ok {
			s.writeHTTPError(w, http.StatusNotFound, ErrTaskNotFound.Error())
			return
		}
		s.writeHTTPResponse(w, http.StatusOK, task.View())
	case http.MethodDelete:
		task, err := s.taskManager.Cancel(id)
		if errors.Is(err, ErrTaskNotFound) {
			s.writeHTTPError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeHTTPResponse(w, http.StatusAccepted, task.View())
	default:
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use GET or DELETE on /walks/{id}")
	}
}

// persistWalk appends the walk to the configured walk file, if any.
func (s *Server) persistWalk(res engine.WalkResult) error {
	if s.walkWriter == nil || res.Stop == engine.StopEmptyGraph {
		return nil
	}
	if err := s.walkWriter.WriteWalk(res.Nodes); err != nil {
		return fmt.Errorf("failed to persist walk: %w", err)
	}
	if err := s.walkWriter.Flush(); err != nil {
		return fmt.Errorf("failed to persist walk: %w", err)
	}
	return nil
}

// --- HTTP response helpers ---

// decodePost enforces POST and decodes the JSON body into dst.
// It writes the error response itself and reports whether decoding succeeded.
func (s *Server) decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "use POST")
		return false
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		s.writeHTTPError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, map[string]string{"error": message})
}
