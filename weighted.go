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

// ItemWeight holds an item and its corresponding weight.
type ItemWeight[I any] struct {
	Item   I
	Weight float64
}

// Weighted is a slice of items and their weights.
type Weighted[I any] []ItemWeight[I]

func (w Weighted[I]) weights() []float64 {
	ws := make([]float64, len(w))
	for i := range w {
		ws[i] = w[i].Weight
	}
	return ws
}

// Sampler builds a Sampler whose outcome i stands for w[i].Item.
func (w Weighted[I]) Sampler() (*Sampler, error) {
	return New(w.weights())
}

// Random returns a function that returns one item at random, using the
// distribution indicated by item weights and the provided pseudorandom number
// generator for randomness. The tables are built once, up front; later
// changes to w's weights are not observed, but changes to its items are.
func (w Weighted[I]) Random(rng Source) (func() I, error) {
	s, err := w.Sampler()
	if err != nil {
		return nil, err
	}
	return func() I {
		return w[s.SampleOne(rng)].Item
	}, nil
}

// Generate generates a sequence of n items, calling fn to produce
// each item. It's intended to be used with a function returned by
// (Weighted).Random.
func Generate[I any](n int, fn func() I) []I {
	items := make([]I, n)
	for i := 0; i < n; i++ {
		items[i] = fn()
	}
	return items
}
