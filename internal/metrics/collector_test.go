// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector("pescador", reg, zap.NewNop()), reg
}

func TestCollector_Counters(t *testing.T) {
	c, _ := newTestCollector(t)

	c.SampleDrawn("poisson")
	c.SampleDrawn("poisson")
	c.SampleDrawn("chain")
	c.StreamExhausted("poisson")
	c.StreamPruned("poisson")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.samplesTotal.WithLabelValues("poisson")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.samplesTotal.WithLabelValues("chain")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.exhaustionsTotal.WithLabelValues("poisson")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.prunedTotal.WithLabelValues("poisson")))
}

func TestCollector_ActivationLifecycle(t *testing.T) {
	c, _ := newTestCollector(t)

	c.ActivationStarted("shuffled", "act-1", 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.activationsTotal.WithLabelValues("shuffled")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.activeSlots.WithLabelValues("shuffled")))

	c.ActivationEnded("shuffled", "act-1", 42)
	assert.Equal(t, 0.0, testutil.ToFloat64(c.activeSlots.WithLabelValues("shuffled")))
}

func TestCollector_RegistersUnderNamespace(t *testing.T) {
	c, reg := newTestCollector(t)
	c.SampleDrawn("poisson")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["pescador_mux_samples_total"], "got %v", names)
}
