// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhampachori12110095/pescador/streamer"
	"github.com/shubhampachori12110095/pescador/types"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(``))
	require.NoError(t, err)
	assert.Equal(t, VariantPoisson, cfg.Variant)
	assert.Equal(t, 1, cfg.K)
	assert.Nil(t, cfg.Rate)
	assert.Nil(t, cfg.Seed)
}

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(`
variant: poisson
k: 4
rate: 16
mode: single_active
weights: [0.5, 0.25, 0.25]
seed: 42
prune_empty_streams: false
`))
	require.NoError(t, err)
	assert.Equal(t, VariantPoisson, cfg.Variant)
	assert.Equal(t, 4, cfg.K)
	require.NotNil(t, cfg.Rate)
	assert.Equal(t, 16.0, *cfg.Rate)
	assert.Equal(t, "single_active", cfg.Mode)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, cfg.Weights)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	require.NotNil(t, cfg.PruneEmptyStreams)
	assert.False(t, *cfg.PruneEmptyStreams)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed yaml":  `variant: [`,
		"unknown variant": `variant: fancy`,
		"negative rate": `
variant: poisson
k: 1
rate: -3
`,
		"zero slots": "variant: poisson\nk: 0",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_PoissonWithoutK(t *testing.T) {
	// K defaults to 1, so an omitted k is only an error when set to 0
	// explicitly.
	cfg, err := Parse([]byte(`variant: poisson`))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.K)

	_, err = Parse([]byte("variant: poisson\nk: 0"))
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidSlotCount))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mux.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: chain\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, VariantChain, cfg.Variant)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
}

func pool(words ...string) []streamer.Streamer[string] {
	out := make([]streamer.Streamer[string], len(words))
	for i, w := range words {
		items := make([]string, 0, len(w))
		for _, r := range w {
			items = append(items, string(r))
		}
		out[i] = streamer.FromSlice(items)
	}
	return out
}

func TestBuild_AllVariants(t *testing.T) {
	for _, variant := range []string{VariantPoisson, VariantShuffled, VariantRoundRobin, VariantChain} {
		t.Run(variant, func(t *testing.T) {
			cfg := Default()
			cfg.Variant = variant

			m, err := Build(cfg, pool("ab", "cd"))
			require.NoError(t, err)
			assert.Equal(t, variant, m.Variant())
		})
	}
}

func TestBuild_ChainFromConfig(t *testing.T) {
	cfg, err := Parse([]byte("variant: chain\nseed: 1\n"))
	require.NoError(t, err)

	m, err := Build(cfg, pool("ab", "cd"))
	require.NoError(t, err)

	items, err := streamer.Drain(m.Iterate(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestBuild_ZeroRateMeansUnbounded(t *testing.T) {
	zero := 0.0
	cfg := Default()
	cfg.Rate = &zero

	m, err := Build(cfg, pool("ab"))
	require.NoError(t, err)

	// Unbounded budget: the single member replays forever, so the budget of
	// ten pulls is met exactly.
	items, err := streamer.Drain(m.Iterate(10))
	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestBuildStream_AppliesDecorators(t *testing.T) {
	cfg, err := Parse([]byte(`
variant: chain
prefetch: 4
rate_limit: 1000
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Prefetch)
	assert.Equal(t, 1000.0, cfg.RateLimit)

	s, err := BuildStream(context.Background(), cfg, pool("ab", "cd"))
	require.NoError(t, err)

	items, err := streamer.Drain(s.Open(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestValidate_RejectsNegativeDecorators(t *testing.T) {
	cfg := Default()
	cfg.Prefetch = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RateLimit = -0.5
	require.Error(t, cfg.Validate())
}

func TestBuild_WeightLengthCheckedAgainstPool(t *testing.T) {
	cfg := Default()
	cfg.Weights = []float64{1, 2, 3}

	_, err := Build(cfg, pool("ab", "cd"))
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrWeightLength))
}
