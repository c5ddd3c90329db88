// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package vose

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Source supplies the two independent uniform draws each sample consumes.
// *math/rand.Rand satisfies it. A Source is used without locking; give each
// goroutine its own.
type Source interface {
	// Intn returns a uniform integer in [0,n).
	Intn(n int) int
	// Float64 returns a uniform float in [0,1).
	Float64() float64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SampleOne draws one outcome using randomness from rng.
func (s *Sampler) SampleOne(rng Source) int {
	i := rng.Intn(s.n)
	return s.pick(i, rng.Float64())
}

// SampleN draws k outcomes using randomness from rng.
func (s *Sampler) SampleN(rng Source, k int) []int {
	out := make([]int, k)
	s.Fill(rng, out)
	return out
}

// Fill overwrites every element of dst with an outcome drawn using
// randomness from rng.
func (s *Sampler) Fill(rng Source, dst []int) {
	for j := range dst {
		dst[j] = s.SampleOne(rng)
	}
}

// SampleBatch applies Sample to each (indices[j], fractions[j]) pair, writing
// the outcome to dst[j]. The three slices must have the same length. dst is
// left partially written if a pair is out of range.
func (s *Sampler) SampleBatch(indices []int, fractions []float64, dst []int) error {
	if len(indices) != len(fractions) || len(indices) != len(dst) {
		return invalidInputf("batch lengths differ: %d indices, %d fractions, %d outputs",
			len(indices), len(fractions), len(dst))
	}
	for j := range indices {
		v, err := s.Sample(indices[j], fractions[j])
		if err != nil {
			return errors.Wrapf(err, "pair %d", errors.Safe(j))
		}
		dst[j] = v
	}
	return nil
}
