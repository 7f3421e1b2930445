package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/sanonone/wordgraph/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-secret-token"

func newTestServer(t *testing.T, token string, walks *persistence.WalkWriter) *httptest.Server {
	t.Helper()
	g := graph.Build([]string{"the quick dog the fat dog"})
	eng := engine.New(g, engine.Options{Chooser: engine.NewSeededChooser(7), MaxWalkSteps: 50})

	s := NewServer(eng, ":0", token, walks)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.taskManager.CancelAll()
		s.taskManager.Wait()
	})
	return ts
}

func do(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthzEndpoint(t *testing.T) {
	ts := newTestServer(t, testToken, nil)

	resp, _ := do(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/graph/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "protected without token")

	resp, _ = do(t, http.MethodGet, ts.URL+"/graph/stats", "wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, http.MethodGet, ts.URL+"/graph/stats", testToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var stats graph.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, graph.Stats{Nodes: 4, Edges: 5}, stats)
}

func TestMetricsAndUIAreUnprotected(t *testing.T) {
	ts := newTestServer(t, testToken, nil)

	resp, body := do(t, http.MethodGet, ts.URL+"/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "wordgraph_graph_nodes")

	resp, body = do(t, http.MethodGet, ts.URL+"/ui/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "wordgraph console")
}

func TestBridgeEndpoint(t *testing.T) {
	ts := newTestServer(t, "", nil)

	resp, body := do(t, http.MethodPost, ts.URL+"/query/bridge", "", PairRequest{From: "the", To: "dog"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out BridgeResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, []string{"quick", "fat"}, out.Words)
	assert.Equal(t, "The bridge words from the to dog are: quick, fat.", out.Message)

	_, body = do(t, http.MethodPost, ts.URL+"/query/bridge", "", PairRequest{From: "cat", To: "dog"})
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "No cat in the graph!", out.Message)
	assert.Equal(t, []string{"cat"}, out.Missing)
}

func TestBridgeEndpointValidation(t *testing.T) {
	ts := newTestServer(t, "", nil)

	resp, _ := do(t, http.MethodPost, ts.URL+"/query/bridge", "", PairRequest{From: "the"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/query/bridge", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/query/bridge", strings.NewReader("{not json"))
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestAugmentEndpoint(t *testing.T) {
	ts := newTestServer(t, "", nil)

	resp, body := do(t, http.MethodPost, ts.URL+"/query/augment", "", AugmentRequest{Text: "The dog"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out AugmentResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Insertions, 1)
	assert.Contains(t, []string{"the quick dog", "the fat dog"}, out.Message)
}

func TestPathEndpoint(t *testing.T) {
	ts := newTestServer(t, "", nil)

	_, body := do(t, http.MethodPost, ts.URL+"/query/path", "", PairRequest{From: "quick", To: "fat"})
	var out PathResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Found)
	assert.Equal(t, "Shortest path: quick -> dog -> the -> fat (Length: 3)", out.Message)
}

func TestWalkEndpointPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.txt")
	writer, err := persistence.NewWalkWriter(path)
	require.NoError(t, err)
	defer writer.Close()

	ts := newTestServer(t, "", writer)

	resp, body := do(t, http.MethodPost, ts.URL+"/query/walk", "", struct{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out WalkResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Nodes)

	walks, err := persistence.ReadWalks(path)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, out.Nodes, walks[0])
}

func TestWalkTaskLifecycle(t *testing.T) {
	ts := newTestServer(t, "", nil)

	resp, body := do(t, http.MethodPost, ts.URL+"/walks", "", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var started TaskView
	require.NoError(t, json.Unmarshal(body, &started))
	require.NotEmpty(t, started.ID)

	var view TaskView
	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/walks/" + started.ID)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var v TaskView
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return false
		}
		view = v
		return v.Status != TaskStatusRunning
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, TaskStatusCompleted, view.Status)
	require.NotNil(t, view.Result)
	assert.Equal(t, view.Result.String(), view.Message)

	// Cancelling a finished task leaves it untouched.
	resp, body = do(t, http.MethodDelete, ts.URL+"/walks/"+started.ID, "", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, TaskStatusCompleted, view.Status)
}

func TestWalkTaskNotFound(t *testing.T) {
	ts := newTestServer(t, "", nil)

	resp, _ := do(t, http.MethodGet, ts.URL+"/walks/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodDelete, ts.URL+"/walks/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGraphInspectionEndpoints(t *testing.T) {
	ts := newTestServer(t, "", nil)

	_, body := do(t, http.MethodGet, ts.URL+"/graph/edges?source=the", "", nil)
	var edges EdgesResponse
	require.NoError(t, json.Unmarshal(body, &edges))
	assert.Equal(t, 2, edges.Count)

	resp, _ := do(t, http.MethodGet, ts.URL+"/graph/edges?source=cat", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, body = do(t, http.MethodGet, ts.URL+"/graph/words?prefix=f", "", nil)
	var words WordsResponse
	require.NoError(t, json.Unmarshal(body, &words))
	assert.Equal(t, []string{"fat"}, words.Words)

	resp, _ = do(t, http.MethodGet, ts.URL+"/graph/words?limit=-3", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, http.MethodGet, ts.URL+"/graph/dot?from=quick&to=fat", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vnd.graphviz", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "digraph WordGraph {"))
	assert.Contains(t, string(body), "penwidth=2")

	resp, _ = do(t, http.MethodGet, ts.URL+"/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := &Server{}
	h := s.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestMetricsRoute(t *testing.T) {
	assert.Equal(t, "/walks/{id}", metricsRoute("/walks/0b8e"))
	assert.Equal(t, "/query/path", metricsRoute("/query/path"))
}
