// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package sampler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhampachori12110095/pescador/types"
)

func TestResolve(t *testing.T) {
	t.Run("nil yields a time-seeded source", func(t *testing.T) {
		g, err := Resolve(nil)
		require.NoError(t, err)
		require.NotNil(t, g)
	})

	t.Run("integer seeds", func(t *testing.T) {
		for _, state := range []any{42, int64(42), uint64(42)} {
			g, err := Resolve(state)
			require.NoError(t, err)
			require.NotNil(t, g)
		}
	})

	t.Run("pre-built generator", func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 2))
		g, err := Resolve(r)
		require.NoError(t, err)
		require.NotNil(t, g)
	})

	t.Run("existing RNG passes through", func(t *testing.T) {
		g := New(7)
		got, err := Resolve(g)
		require.NoError(t, err)
		assert.Same(t, g, got)
	})

	t.Run("invalid type is a configuration error", func(t *testing.T) {
		_, err := Resolve("not a seed")
		require.Error(t, err)
		assert.True(t, types.IsErrorCode(err, types.ErrInvalidRandomState))
	})
}

func TestChoice_Deterministic(t *testing.T) {
	weights := []float64{0.2, 0.5, 0.3}

	a := New(1234)
	b := New(1234)
	for i := 0; i < 100; i++ {
		x, err := a.Choice(weights)
		require.NoError(t, err)
		y, err := b.Choice(weights)
		require.NoError(t, err)
		assert.Equal(t, x, y, "draw %d diverged", i)
	}
}

func TestChoice_NeverSelectsZeroWeight(t *testing.T) {
	g := New(99)
	weights := []float64{0, 1, 0, 2, 0}
	for i := 0; i < 1000; i++ {
		idx, err := g.Choice(weights)
		require.NoError(t, err)
		assert.True(t, weights[idx] > 0, "selected zero-weight index %d", idx)
	}
}

func TestChoice_SinglePositive(t *testing.T) {
	g := New(5)
	for i := 0; i < 50; i++ {
		idx, err := g.Choice([]float64{0, 0, 3.5, 0})
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	}
}

func TestChoice_NoPositiveWeight(t *testing.T) {
	g := New(5)
	_, err := g.Choice([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrNoPositiveWeight)

	_, err = g.Choice(nil)
	assert.ErrorIs(t, err, ErrNoPositiveWeight)
}

func TestChoice_Proportionality(t *testing.T) {
	g := New(2024)
	weights := []float64{1, 3}
	counts := make([]int, 2)
	const draws = 20000
	for i := 0; i < draws; i++ {
		idx, err := g.Choice(weights)
		require.NoError(t, err)
		counts[idx]++
	}
	// Expect roughly 25% / 75% with generous slack.
	ratio := float64(counts[1]) / float64(draws)
	assert.InDelta(t, 0.75, ratio, 0.03)
}

func TestPoisson_MeanAndDeterminism(t *testing.T) {
	g := New(7)
	const rate = 10.0
	const draws = 10000
	var sum int64
	for i := 0; i < draws; i++ {
		v := g.Poisson(rate)
		require.GreaterOrEqual(t, v, int64(0))
		sum += v
	}
	mean := float64(sum) / draws
	assert.InDelta(t, rate, mean, 0.5)

	a, b := New(11), New(11)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Poisson(256.0), b.Poisson(256.0))
	}
}
