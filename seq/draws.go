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

package seq

// Draws replays recorded random draws. It has the method set of a
// vose.Source: Intn takes its value from Indices and Float64 from Fractions.
// Both sequences cycle, so a short recording can drive any number of draws.
type Draws struct {
	Indices   Sequence[int]
	Fractions Sequence[float64]

	indexStarted    bool
	fractionStarted bool
	wrapped         bool
}

// NewDraws returns Draws that replay the given indices and fractions in
// order. Neither slice may be empty.
func NewDraws(indices []int, fractions []float64) *Draws {
	return &Draws{
		Indices:   &Slice[int]{Elems: indices},
		Fractions: &Slice[float64]{Elems: fractions},
	}
}

// Intn returns the next recorded index reduced into [0,n).
func (d *Draws) Intn(n int) int {
	v, restarted := d.Indices.Next()
	d.observe(&d.indexStarted, restarted)
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next recorded fraction unchanged.
func (d *Draws) Float64() float64 {
	v, restarted := d.Fractions.Next()
	d.observe(&d.fractionStarted, restarted)
	return v
}

// Wrapped reports whether either recording has been exhausted and started
// over.
func (d *Draws) Wrapped() bool {
	return d.wrapped
}

func (d *Draws) observe(started *bool, restarted bool) {
	if restarted && *started {
		d.wrapped = true
	}
	*started = true
}
