// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

// Package metrics provides internal Prometheus metrics collection for
// multiplexer lifecycle events.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records multiplexer lifecycle events as Prometheus metrics.
// It satisfies the mux Observer interface.
type Collector struct {
	activationsTotal *prometheus.CounterVec
	samplesTotal     *prometheus.CounterVec
	exhaustionsTotal *prometheus.CounterVec
	prunedTotal      *prometheus.CounterVec
	activeSlots      *prometheus.GaugeVec

	logger *zap.Logger
}

// NewCollector registers the multiplexer metrics against the given
// registerer under the namespace.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.activationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mux_activations_total",
			Help:      "Total number of multiplexer activations",
		},
		[]string{"variant"},
	)

	c.samplesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mux_samples_total",
			Help:      "Total number of items emitted by multiplexers",
		},
		[]string{"variant"},
	)

	c.exhaustionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mux_stream_exhaustions_total",
			Help:      "Total number of sub-stream exhaustions",
		},
		[]string{"variant"},
	)

	c.prunedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mux_streams_pruned_total",
			Help:      "Total number of streams permanently disabled for producing no data",
		},
		[]string{"variant"},
	)

	c.activeSlots = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mux_active_slots",
			Help:      "Number of filled slots in the most recent activation",
		},
		[]string{"variant"},
	)

	logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// ActivationStarted records a multiplexer activation.
func (c *Collector) ActivationStarted(variant, id string, slots int) {
	c.activationsTotal.WithLabelValues(variant).Inc()
	c.activeSlots.WithLabelValues(variant).Set(float64(slots))
}

// ActivationEnded records the end of an activation.
func (c *Collector) ActivationEnded(variant, id string, items int64) {
	c.activeSlots.WithLabelValues(variant).Set(0)
}

// SampleDrawn records one emitted item.
func (c *Collector) SampleDrawn(variant string) {
	c.samplesTotal.WithLabelValues(variant).Inc()
}

// StreamExhausted records a sub-stream exhaustion.
func (c *Collector) StreamExhausted(variant string) {
	c.exhaustionsTotal.WithLabelValues(variant).Inc()
}

// StreamPruned records a permanently disabled stream.
func (c *Collector) StreamPruned(variant string) {
	c.prunedTotal.WithLabelValues(variant).Inc()
}
