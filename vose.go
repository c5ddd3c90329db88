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

// Package vose implements Vose's alias method for drawing indices from a
// fixed discrete distribution. Construction takes O(N) time and space; every
// draw afterwards costs O(1) regardless of N or of how skewed the weights
// are.
//
// The distribution is split into N equal-width columns. Column i holds
// outcome i with probability Prob(i) and its alias Alias(i) with the rest, so
// a draw picks a column uniformly and flips one biased coin.
package vose

import "github.com/cockroachdb/errors"

// Sampler holds the probability and alias tables built from a weight
// vector. A Sampler is immutable and may be shared between goroutines.
type Sampler struct {
	n     int
	prob  []float64
	alias []int
}

// Len returns the number of outcomes.
func (s *Sampler) Len() int {
	return s.n
}

// Prob returns the probability that column i yields i itself.
func (s *Sampler) Prob(i int) float64 {
	return s.prob[i]
}

// Alias returns the outcome column i yields when its coin rejects i.
func (s *Sampler) Alias(i int) int {
	return s.alias[i]
}

// Sample maps a uniformly chosen column index in [0,N) and a uniform fraction
// in [0,1) to an outcome. Inputs outside those ranges return an error marked
// with ErrOutOfRange.
func (s *Sampler) Sample(index int, fraction float64) (int, error) {
	if index < 0 || index >= s.n {
		return 0, outOfRangef("index %d not in [0,%d)", errors.Safe(index), errors.Safe(s.n))
	}
	// Written so that NaN fails.
	if !(fraction >= 0 && fraction < 1) {
		return 0, outOfRangef("fraction %v not in [0,1)", errors.Safe(fraction))
	}
	return s.pick(index, fraction), nil
}

// pick is the unchecked column decision.
func (s *Sampler) pick(index int, fraction float64) int {
	if s.prob[index] >= fraction {
		return index
	}
	return s.alias[index]
}

// Distribution reconstructs the probability of every outcome from the
// tables: the mass column i keeps for itself plus the mass every column
// aliasing to i gives away, over N.
func (s *Sampler) Distribution() []float64 {
	d := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		d[i] += s.prob[i]
		if a := s.alias[i]; a != i {
			d[a] += 1 - s.prob[i]
		}
	}
	n := float64(s.n)
	for i := range d {
		d[i] /= n
	}
	return d
}
