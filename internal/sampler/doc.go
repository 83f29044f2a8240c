// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

// Package sampler provides the seeded pseudorandom primitives used by the
// multiplexer: weighted index selection and Poisson-distributed draws.
// This package is internal and should not be imported by external projects.
package sampler
