package main

import (
	"time"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/metrics"
)

// PrometheusMetrics adapts the metrics package to query.MetricsRecorder for one client
type PrometheusMetrics struct {
	client string
}

// NewPrometheusMetrics creates a new PrometheusMetrics adapter labelled with client
func NewPrometheusMetrics(client string) query.MetricsRecorder {
	return &PrometheusMetrics{client: client}
}

// RecordRequest records a request outcome
func (p *PrometheusMetrics) RecordRequest(outcome string) {
	metrics.RecordQueryRequest(p.client, outcome)
}

// RecordFetch records a settled fetch
func (p *PrometheusMetrics) RecordFetch(result string, attempts int, duration time.Duration) {
	metrics.RecordQueryFetch(p.client, result, attempts, duration)
}

// RecordRetry records a retried attempt
func (p *PrometheusMetrics) RecordRetry() {
	metrics.RecordQueryRetry(p.client)
}

// RecordEviction records evicted entries
func (p *PrometheusMetrics) RecordEviction(count int) {
	metrics.RecordQueryEvictions(p.client, count)
}

// UpdateEntries updates the live entry gauge
func (p *PrometheusMetrics) UpdateEntries(count int) {
	metrics.UpdateQueryEntries(p.client, count)
}
