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
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/vose/seq"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// counts draws n outcomes from s and tallies them.
func counts(s *Sampler, rng Source, n int) []int {
	c := make([]int, s.Len())
	for i := 0; i < n; i++ {
		c[s.SampleOne(rng)]++
	}
	return c
}

func TestSampleOne_Frequencies(t *testing.T) {
	const draws = 1_000_000
	testCases := []struct {
		name    string
		weights []float64
	}{
		{"one-one-two", []float64{1, 1, 2}},
		{"one-to-five", []float64{1, 2, 3, 4, 5}},
		{"uniform", []float64{2, 2, 2, 2, 2, 2, 2, 2}},
		{"with-zeros", []float64{0, 1, 0, 3, 0.5}},
		{"skewed", []float64{100, 1, 10, 0.1, 1000, 5}},
	}
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.weights)
			require.NoError(t, err)
			c := counts(s, NewSource(int64(i)), draws)

			var sum float64
			for _, w := range tc.weights {
				sum += w
			}
			var chi2 float64
			var df float64 = -1
			for j, w := range tc.weights {
				p := w / sum
				got := float64(c[j]) / draws
				require.InDelta(t, p, got, 0.01, "outcome %d", j)
				if w == 0 {
					require.Zero(t, c[j], "zero-weight outcome %d drawn", j)
					continue
				}
				exp := p * draws
				d := float64(c[j]) - exp
				chi2 += d * d / exp
				df++
			}
			if df > 0 {
				pValue := distuv.ChiSquared{K: df}.Survival(chi2)
				require.Greater(t, pValue, 1e-4, "chi2=%f df=%f counts=%v", chi2, df, c)
			}
		})
	}
}

func TestSampleOne_DegenerateCases(t *testing.T) {
	rng := NewSource(7)

	single, err := New([]float64{42})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.Equal(t, 0, single.SampleOne(rng))
	}

	dominant, err := New([]float64{1, 1e-9, 1e-9})
	require.NoError(t, err)
	c := counts(dominant, rng, 100_000)
	require.GreaterOrEqual(t, float64(c[0])/100_000, 0.9999)
}

func TestSampleOne_ReplayedDraws(t *testing.T) {
	s, err := New([]float64{1, 1, 2})
	require.NoError(t, err)
	draws := seq.NewDraws([]int{0, 1, 2, 0}, []float64{0.5, 0.99, 0.99, 0.8})
	require.Equal(t, []int{0, 2, 2, 2}, s.SampleN(draws, 4))
	require.False(t, draws.Wrapped())

	// The recording cycles.
	require.Equal(t, 0, s.SampleOne(draws))
	require.True(t, draws.Wrapped())
}

func TestSampleN_Deterministic(t *testing.T) {
	s, err := New([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	require.NoError(t, err)
	a := s.SampleN(NewSource(99), 1000)
	b := s.SampleN(NewSource(99), 1000)
	require.Equal(t, a, b)
	require.Len(t, a, 1000)

	dst := make([]int, 1000)
	s.Fill(NewSource(99), dst)
	require.Equal(t, a, dst)

	require.Empty(t, s.SampleN(NewSource(99), 0))
}

func TestSampleBatch(t *testing.T) {
	s, err := New([]float64{1, 1, 2})
	require.NoError(t, err)

	dst := make([]int, 3)
	require.NoError(t, s.SampleBatch([]int{0, 1, 2}, []float64{0.5, 0.99, 0.99}, dst))
	require.Equal(t, []int{0, 2, 2}, dst)

	err = s.SampleBatch([]int{0, 1}, []float64{0.5}, make([]int, 2))
	require.True(t, errors.Is(err, ErrInvalidInput), "unexpected error: %v", err)

	err = s.SampleBatch([]int{0, 3}, []float64{0.5, 0.5}, make([]int, 2))
	require.True(t, errors.Is(err, ErrOutOfRange), "unexpected error: %v", err)
	require.Contains(t, err.Error(), "pair 1")
}

// TestSampleOne_Concurrent shares one Sampler between goroutines, each with
// its own Source, and checks that every goroutine sees the same draws it
// would see alone.
func TestSampleOne_Concurrent(t *testing.T) {
	s, err := New([]float64{5, 0, 1, 2, 8, 3})
	require.NoError(t, err)

	const workers = 8
	const draws = 10_000
	want := make([][]int, workers)
	for w := range want {
		want[w] = s.SampleN(NewSource(int64(w)), draws)
	}

	got := make([][]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got[w] = s.SampleN(NewSource(int64(w)), draws)
		}(w)
	}
	wg.Wait()
	require.Equal(t, want, got)
}
