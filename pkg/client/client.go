// Package client provides a Go client for the wordgraph HTTP API.
//
// It covers every query (bridge words, augmentation, shortest path, random
// walk), asynchronous walk tasks and graph inspection. The client handles
// HTTP communication, bearer authentication, JSON encoding and standardized
// error handling.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/graph"
)

// --- Custom Errors ---

// APIError represents an error returned by the wordgraph API (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// --- JSON Response Structs ---

// BridgeResponse is a bridge-word result plus its rendered message.
type BridgeResponse struct {
	engine.BridgeResult
	Message string `json:"message"`
}

type AugmentResponse struct {
	engine.AugmentResult
	Message string `json:"message"`
}

type PathResponse struct {
	engine.PathResult
	Message string `json:"message"`
}

type WalkResponse struct {
	engine.WalkResult
	Message string `json:"message"`
}

type edgesResponse struct {
	Edges []graph.Edge `json:"edges"`
}

type wordsResponse struct {
	Words []string `json:"words"`
}

// Task represents an asynchronous random walk on the server.
type Task struct {
	ID      string             `json:"id"`
	Status  string             `json:"status"`
	Result  *engine.WalkResult `json:"result,omitempty"`
	Message string             `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`

	client *Client // Reference to the client for polling.
}

// --- Client ---

// Client is the Go client for the wordgraph server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the server at host:port. token may be empty.
func New(host string, port int, token string) *Client {
	return NewWithURL(fmt.Sprintf("http://%s:%d", host, port), token)
}

// NewWithURL creates a client for the server at baseURL (e.g. "http://localhost:9093").
func NewWithURL(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// jsonRequest executes a request and decodes the JSON response into out (when not nil).
func (c *Client) jsonRequest(method, endpoint string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(respBody, &errResp) == nil {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp["error"]}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// --- Query Methods ---

// BridgeWords queries the bridge words from a to b.
func (c *Client) BridgeWords(from, to string) (*BridgeResponse, error) {
	var out BridgeResponse
	if err := c.jsonRequest(http.MethodPost, "/query/bridge", map[string]string{"from": from, "to": to}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Augment inserts bridge words into text.
func (c *Client) Augment(text string) (*AugmentResponse, error) {
	var out AugmentResponse
	if err := c.jsonRequest(http.MethodPost, "/query/augment", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShortestPath queries the minimum-weight path from a to b.
func (c *Client) ShortestPath(from, to string) (*PathResponse, error) {
	var out PathResponse
	if err := c.jsonRequest(http.MethodPost, "/query/path", map[string]string{"from": from, "to": to}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RandomWalk runs a synchronous walk on the server.
func (c *Client) RandomWalk() (*WalkResponse, error) {
	var out WalkResponse
	if err := c.jsonRequest(http.MethodPost, "/query/walk", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Graph Methods ---

// Stats returns node and edge counts.
func (c *Client) Stats() (*graph.Stats, error) {
	var out graph.Stats
	if err := c.jsonRequest(http.MethodGet, "/graph/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Edges returns the outgoing edges of source, or every edge when source is empty.
func (c *Client) Edges(source string) ([]graph.Edge, error) {
	endpoint := "/graph/edges"
	if source != "" {
		endpoint += "?source=" + url.QueryEscape(source)
	}
	var out edgesResponse
	if err := c.jsonRequest(http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out.Edges, nil
}

// Words returns up to limit words starting with prefix (limit <= 0 means all).
func (c *Client) Words(prefix string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out wordsResponse
	if err := c.jsonRequest(http.MethodGet, "/graph/words?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Words, nil
}

// --- Walk Task Methods ---

// StartWalk starts an asynchronous random walk.
func (c *Client) StartWalk() (*Task, error) {
	var task Task
	if err := c.jsonRequest(http.MethodPost, "/walks", nil, &task); err != nil {
		return nil, err
	}
	task.client = c // Inject the client to allow polling.
	return &task, nil
}

// GetWalk retrieves the status of a walk task.
func (c *Client) GetWalk(taskID string) (*Task, error) {
	var task Task
	if err := c.jsonRequest(http.MethodGet, "/walks/"+url.PathEscape(taskID), nil, &task); err != nil {
		return nil, err
	}
	task.client = c
	return &task, nil
}

// CancelWalk raises the cancellation signal of a walk task.
func (c *Client) CancelWalk(taskID string) (*Task, error) {
	var task Task
	if err := c.jsonRequest(http.MethodDelete, "/walks/"+url.PathEscape(taskID), nil, &task); err != nil {
		return nil, err
	}
	task.client = c
	return &task, nil
}

// Refresh updates the task's status by querying the server.
func (t *Task) Refresh() error {
	if t.client == nil {
		return fmt.Errorf("client is not associated with the task")
	}
	updated, err := t.client.GetWalk(t.ID)
	if err != nil {
		return err
	}
	t.Status = updated.Status
	t.Result = updated.Result
	t.Message = updated.Message
	t.Error = updated.Error
	return nil
}

// Wait blocks until the task has finished, checking its status at regular intervals.
// A cancelled walk counts as finished.
func (t *Task) Wait(interval, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			return fmt.Errorf("timeout exceeded while waiting for task %s", t.ID)
		case <-ticker.C:
			if err := t.Refresh(); err != nil {
				return err
			}
			switch t.Status {
			case "completed", "cancelled":
				return nil
			case "failed":
				return fmt.Errorf("task %s failed with error: %s", t.ID, t.Error)
			case "running":
				// Continue waiting.
			default:
				return fmt.Errorf("unknown task status: %s", t.Status)
			}
		}
	}
}
