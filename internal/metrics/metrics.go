// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package metrics defines the Prometheus collectors exported while cases run.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Case results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultMismatch = "mismatch"
	ResultError    = "error"
)

// Metrics holds the collectors for one application instance.
type Metrics struct {
	registry *prometheus.Registry

	casesTotal    *prometheus.CounterVec
	caseDuration  prometheus.Histogram
	latticeCells  prometheus.Histogram
	selectorCache *prometheus.CounterVec
}

// New creates the collectors on a fresh registry so that several instances can
// live in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		casesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domdist_cases_total",
			Help: "Total evaluated cases by result",
		}, []string{"result"}),
		caseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domdist_case_duration_seconds",
			Help:    "Time spent parsing and aligning a single case",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		latticeCells: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domdist_lattice_cells",
			Help:    "Number of lattice cells filled per case",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		selectorCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domdist_selector_cache_lookups_total",
			Help: "Selector token cache lookups by outcome",
		}, []string{"outcome"}), // "hit" or "miss"
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveCase records one evaluated case.
func (m *Metrics) ObserveCase(result string, cells int, took time.Duration) {
	if m == nil {
		return
	}
	m.casesTotal.WithLabelValues(result).Inc()
	m.caseDuration.Observe(took.Seconds())
	if cells > 0 {
		m.latticeCells.Observe(float64(cells))
	}
}

// AddCacheLookups adds selector cache hits and misses.
func (m *Metrics) AddCacheLookups(hits, misses int64) {
	if m == nil {
		return
	}
	m.selectorCache.WithLabelValues("hit").Add(float64(hits))
	m.selectorCache.WithLabelValues("miss").Add(float64(misses))
}
