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

// Package seq provides replayable sequences of values, used to feed recorded
// random draws back into a sampler.
package seq

// A Sequence represents an ordered sequence of elements.
type Sequence[I any] interface {
	// Next returns the next item in the sequence. If the sequence is beginning,
	// including for the first time, Next returns restarted = true.
	Next() (next I, restarted bool)
}

// Coin is a source of uniform fractions in [0,1). Both *math/rand.Rand and
// vose.Source satisfy it.
type Coin interface {
	Float64() float64
}

// RandomFilter returns a sequence that keeps each element of inner with
// probability keep, flipping coin once per element. Elements are never
// reordered. Whether the result reports a restart depends on inner alone: a
// restart of inner is carried forward to the next kept element, even if the
// element that restarted was dropped. keep must be positive.
func RandomFilter[I any](inner Sequence[I], coin Coin, keep float64) Sequence[I] {
	return Func[I](func() (I, bool) {
		var restarted bool
		for {
			v, r := inner.Next()
			restarted = restarted || r
			if coin.Float64() < keep {
				return v, restarted
			}
		}
	})
}

// Slice is a sequence that cycles through a slice, starting at Elems[0].
// Elems must be non-empty.
type Slice[I any] struct {
	Elems []I

	index IntsAscending[int]
}

// Next implements Sequence.
func (s *Slice[I]) Next() (I, bool) {
	if s.index.Max != len(s.Elems) {
		s.index = IntsAscending[int]{Min: 0, Max: len(s.Elems)}
	}
	i, restarted := s.index.Next()
	return s.Elems[i], restarted
}

// IntsAscending is a sequence of ascending integers in the range [Min,Max).
// The first call to Next returns Min.
type IntsAscending[I ints] struct {
	Min, Max I
	v        I
	started  bool
}

// Next implements Sequence.
func (s *IntsAscending[I]) Next() (I, bool) {
	if !s.started {
		s.started = true
		s.v = s.Min
		return s.v, true
	}
	s.v += 1
	// If we're more than max, restart. We also restart if v <= min to
	// detect overflow.
	if s.v >= s.Max || s.v <= s.Min {
		s.v = s.Min
		return s.v, true
	}
	return s.v, false
}

type ints interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Func wraps a function with the signature func() (I, bool), implementing the
// Sequence[I] interface.
type Func[I any] func() (I, bool)

// Next implements the Sequence[I] interface.
func (f Func[I]) Next() (I, bool) {
	return f()
}
