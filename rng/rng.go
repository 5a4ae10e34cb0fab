// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rng implements the single random stream used by one half-sarcomere.
//
// gosl/rnd exposes a process-global generator, which would make two
// concurrently-running, independently-seeded half-sarcomere simulations
// share (and race on) the same stream. Since §5/§9 require one explicitly
// threaded stream per half-sarcomere, the stream itself is a small
// math/rand wrapper; distribution lookups that only need a registry (e.g.
// isoform sampling by name) still go through gosl/rnd.
package rng

import "math/rand"

// Stream is the explicit random source owned by a single half-sarcomere.
// It is never shared across instances and its position is intentionally
// excluded from snapshots (§6 round-trip requirement).
type Stream struct {
	r    *rand.Rand
	seed int64
}

// New returns a stream seeded with seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed reports the seed this stream was constructed with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Uniform01 draws a single value from [0,1).
func (s *Stream) Uniform01() float64 {
	return s.r.Float64()
}

// Normal draws a single value from Normal(mean, sigma).
func (s *Stream) Normal(mean, sigma float64) float64 {
	return mean + sigma*s.r.NormFloat64()
}

// Reseed resets the stream to a fresh seed, restarting it at the beginning
// of that seed's sequence. Snapshot loading does not call it.
func (s *Stream) Reseed(seed int64) {
	s.r = rand.New(rand.NewSource(seed))
	s.seed = seed
}
