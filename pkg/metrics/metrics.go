package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are registered on the default registry through promauto.

var (
	// HttpRequestsTotal counts HTTP requests by method, path and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgraph_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration measures server response time.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordgraph_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	// QueriesTotal counts graph queries by kind (bridge, augment, path, walk)
	// and outcome (found, empty, missing, cancelled...).
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgraph_queries_total",
			Help: "Total number of graph queries by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// QueryDuration measures the time spent inside the query algorithms.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordgraph_query_duration_seconds",
			Help:    "Duration of graph queries in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"kind"},
	)

	// GraphNodes and GraphEdges describe the graph currently being served.
	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordgraph_graph_nodes",
		Help: "Number of distinct words in the graph",
	})
	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordgraph_graph_edges",
		Help: "Number of distinct directed edges in the graph",
	})

	// WalkLength tracks how many edges random walks traverse before stopping.
	WalkLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordgraph_walk_length",
		Help:    "Number of edges traversed by random walks",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
