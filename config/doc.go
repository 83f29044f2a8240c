// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

// Package config provides YAML-backed multiplexer configuration: parse a
// declarative description of a mux (variant, slots, rate, mode, weights,
// seed) and build the matching variant over a pool of streamers.
package config
