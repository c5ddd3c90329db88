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
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// New builds a Sampler from weights, which need not be normalized. weights is
// only read. An empty vector, a negative, NaN or infinite weight, or a vector
// whose sum is zero or overflows returns an error marked with
// ErrInvalidInput.
//
// Indices are paired in a deterministic order: they are classified in
// ascending order onto two stacks, and each step pairs the top of the small
// stack with the top of the large one. Whatever is left on either stack once
// the other drains is within rounding of 1 and becomes a column that always
// yields itself.
func New(weights []float64) (*Sampler, error) {
	n := len(weights)
	if n == 0 {
		return nil, invalidInputf("no weights")
	}
	if floats.HasNaN(weights) {
		return nil, invalidInputf("weights contain NaN")
	}
	for i, w := range weights {
		if math.IsInf(w, 0) || w < 0 {
			return nil, invalidInputf("weight %d is %v", errors.Safe(i), errors.Safe(w))
		}
	}
	sum := floats.Sum(weights)
	if sum == 0 || math.IsInf(sum, 0) {
		return nil, invalidInputf("weights sum to %v", errors.Safe(sum))
	}

	s := &Sampler{
		n:     n,
		prob:  make([]float64, n),
		alias: make([]int, n),
	}
	// Scale so that the mean weight is 1.
	scale := float64(n)
	for i, w := range weights {
		s.prob[i] = w / sum * scale
	}

	// Both work lists live in one buffer: small grows up from the bottom,
	// large grows down from the top. An index is on at most one list, so
	// they never collide.
	work := make([]int, n)
	small, large := 0, n
	for i, p := range s.prob {
		if p < 1 {
			work[small] = i
			small++
		} else {
			large--
			work[large] = i
		}
	}

	for small > 0 && large < n {
		small--
		lo := work[small]
		hi := work[large]
		large++

		s.alias[lo] = hi
		s.prob[hi] -= 1 - s.prob[lo]
		if s.prob[hi] < 1 {
			work[small] = hi
			small++
		} else {
			large--
			work[large] = hi
		}
	}

	for _, i := range work[:small] {
		s.prob[i] = 1
		s.alias[i] = i
	}
	for _, i := range work[large:] {
		s.prob[i] = 1
		s.alias[i] = i
	}

	for i, p := range s.prob {
		s.prob[i] = math.Max(0, math.Min(1, p))
	}
	return s, nil
}
