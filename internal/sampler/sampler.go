// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package sampler

import (
	"errors"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/shubhampachori12110095/pescador/types"
)

// ErrNoPositiveWeight is returned by Choice when the weight vector carries
// no positive mass.
var ErrNoPositiveWeight = errors.New("sampler: no positive weight")

// RNG is a seeded pseudorandom source. All draws made by one multiplexer go
// through a single RNG, so a fixed seed and a fixed call sequence yield a
// reproducible item order.
type RNG struct {
	r *rand.Rand
}

// New returns an RNG seeded with the given value.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// FromRand wraps a pre-constructed generator.
func FromRand(r *rand.Rand) *RNG {
	return &RNG{r: r}
}

// TimeSeeded returns an RNG seeded from the wall clock. Used when the caller
// does not care about reproducibility.
func TimeSeeded() *RNG {
	return New(time.Now().UnixNano())
}

// Resolve maps the accepted random-state argument forms onto an RNG:
// nil (time-seeded), an integer seed, a pre-constructed *rand.Rand, or an
// existing *RNG. Anything else is a configuration error.
func Resolve(state any) (*RNG, error) {
	switch s := state.(type) {
	case nil:
		return TimeSeeded(), nil
	case int:
		return New(int64(s)), nil
	case int64:
		return New(s), nil
	case uint64:
		return New(int64(s)), nil
	case *rand.Rand:
		return FromRand(s), nil
	case *RNG:
		return s, nil
	default:
		return nil, types.NewErrorf(types.ErrInvalidRandomState,
			"invalid random state %v (type %T)", state, state)
	}
}

// Choice draws an index with probability proportional to weights[i].
// Entries with zero weight are never selected. Returns ErrNoPositiveWeight
// when the vector carries no positive mass.
func (g *RNG) Choice(weights []float64) (int, error) {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrNoPositiveWeight
	}

	target := g.r.Float64() * total
	var cumulative float64
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if target < cumulative {
			return i, nil
		}
	}
	// Floating-point slack can leave target marginally above the final
	// cumulative sum. Fall back to the last positive entry.
	return last, nil
}

// Poisson draws a Poisson-distributed integer with the given rate.
func (g *RNG) Poisson(rate float64) int64 {
	p := distuv.Poisson{Lambda: rate, Src: g.r}
	return int64(p.Rand())
}

// Float64 returns a uniform draw in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// IntN returns a uniform draw in [0, n).
func (g *RNG) IntN(n int) int {
	return g.r.IntN(n)
}
