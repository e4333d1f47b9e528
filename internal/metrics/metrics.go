// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package metrics exposes Prometheus metrics for the insights service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ims",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ims",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// StoreQueryDuration observes data store read latency per dataset.
	StoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ims",
		Subsystem: "store",
		Name:      "query_duration_seconds",
		Help:      "Data store query latency in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"dataset"})

	// RecommendationRunsTotal counts recommendation pipeline runs by outcome.
	RecommendationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ims",
		Subsystem: "recommend",
		Name:      "runs_total",
		Help:      "Total recommendation pipeline runs by outcome.",
	}, []string{"outcome"})

	// RecommendationRunDuration observes end-to-end pipeline latency.
	RecommendationRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ims",
		Subsystem: "recommend",
		Name:      "run_duration_seconds",
		Help:      "End-to-end recommendation pipeline latency in seconds.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})

	// FusionDroppedRows counts bill lines dropped during dataset fusion.
	FusionDroppedRows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ims",
		Subsystem: "recommend",
		Name:      "fusion_dropped_rows_total",
		Help:      "Bill lines dropped because no catalog row matched their SKU.",
	})

	// BundleRunsTotal counts bundle mining runs by outcome.
	BundleRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ims",
		Subsystem: "bundles",
		Name:      "runs_total",
		Help:      "Total bundle mining runs by outcome.",
	}, []string{"outcome"})
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordStoreQuery records one data store read for the given dataset.
func RecordStoreQuery(dataset string, duration time.Duration) {
	StoreQueryDuration.WithLabelValues(dataset).Observe(duration.Seconds())
}

// RecordRecommendationRun records one recommendation pipeline run.
func RecordRecommendationRun(outcome string, duration time.Duration) {
	RecommendationRunsTotal.WithLabelValues(outcome).Inc()
	RecommendationRunDuration.Observe(duration.Seconds())
}

// RecordBundleRun records one bundle mining run.
func RecordBundleRun(outcome string) {
	BundleRunsTotal.WithLabelValues(outcome).Inc()
}
