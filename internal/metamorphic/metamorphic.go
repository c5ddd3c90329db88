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

// Package metamorphic runs the same sequence of sampling operations against
// several samplers and reports the first point at which their outputs
// diverge. Samplers built from logically equivalent weight vectors (the same
// vector twice, or one scaled by a power of two) must agree on every draw.
package metamorphic

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/vose"
	"github.com/cockroachdb/vose/seq"
	"github.com/stretchr/testify/require"
)

// Op represents a single operation against a sampler.
type Op interface {
	fmt.Stringer

	// Run runs the operation, logging its outcome to Logger.
	Run(*Logger, *vose.Sampler)
}

// SampleOp calls Sample with a fixed column and fraction.
type SampleOp struct {
	Index    int
	Fraction float64
}

func (o SampleOp) String() string {
	return fmt.Sprintf("Sample(%d, %v)", o.Index, o.Fraction)
}

// Run implements Op.
func (o SampleOp) Run(l *Logger, s *vose.Sampler) {
	v, err := s.Sample(o.Index, o.Fraction)
	if err != nil {
		l.logErr(err)
		return
	}
	l.Logf("%d", v)
}

// SampleNOp draws K outcomes from a source seeded with Seed.
type SampleNOp struct {
	Seed int64
	K    int
}

func (o SampleNOp) String() string {
	return fmt.Sprintf("SampleN(seed=%d, %d)", o.Seed, o.K)
}

// Run implements Op.
func (o SampleNOp) Run(l *Logger, s *vose.Sampler) {
	l.Logf("%v", s.SampleN(vose.NewSource(o.Seed), o.K))
}

// ReplayOp draws K outcomes from a recorded set of draws. The recorded
// fractions are thinned by a coin seeded with Seed, so the same recording
// yields different (but reproducible) pairings of index and fraction.
type ReplayOp struct {
	Indices   []int
	Fractions []float64
	Keep      float64
	Seed      int64
	K         int
}

func (o ReplayOp) String() string {
	return fmt.Sprintf("Replay(%v, %v, keep=%v, seed=%d, %d)", o.Indices, o.Fractions, o.Keep, o.Seed, o.K)
}

// Run implements Op.
func (o ReplayOp) Run(l *Logger, s *vose.Sampler) {
	d := &seq.Draws{
		Indices: &seq.Slice[int]{Elems: o.Indices},
		Fractions: seq.RandomFilter[float64](
			&seq.Slice[float64]{Elems: o.Fractions}, vose.NewSource(o.Seed), o.Keep),
	}
	l.Logf("%v", s.SampleN(d, o.K))
}

// TablesOp logs the sampler's probability and alias tables.
type TablesOp struct{}

func (TablesOp) String() string { return "Tables()" }

// Run implements Op.
func (TablesOp) Run(l *Logger, s *vose.Sampler) {
	for i := 0; i < s.Len(); i++ {
		l.Logf("%d:%v/%d ", i, s.Prob(i), s.Alias(i))
	}
}

type opKind int8

const (
	opSample opKind = iota
	opSampleOutOfRange
	opSampleN
	opReplay
	opTables
)

// GenerateOps returns count random operations suitable for samplers with n
// outcomes, drawing randomness from rng. Most ops are in-range Sample calls;
// some are deliberately out of range so that error results are compared too.
func GenerateOps(rng *rand.Rand, n, count int) []Op {
	next, err := vose.Weighted[opKind]{
		{Item: opSample, Weight: 20},
		{Item: opSampleOutOfRange, Weight: 2},
		{Item: opSampleN, Weight: 4},
		{Item: opReplay, Weight: 2},
		{Item: opTables, Weight: 1},
	}.Random(rng)
	if err != nil {
		panic(err)
	}
	ops := make([]Op, count)
	for i, k := range vose.Generate(count, next) {
		switch k {
		case opSample:
			ops[i] = SampleOp{Index: rng.Intn(n), Fraction: rng.Float64()}
		case opSampleOutOfRange:
			if rng.Intn(2) == 0 {
				ops[i] = SampleOp{Index: n + rng.Intn(3), Fraction: rng.Float64()}
			} else {
				ops[i] = SampleOp{Index: rng.Intn(n), Fraction: 1 + rng.Float64()}
			}
		case opSampleN:
			ops[i] = SampleNOp{Seed: rng.Int63(), K: 1 + rng.Intn(16)}
		case opReplay:
			o := ReplayOp{
				Indices:   make([]int, 1+rng.Intn(8)),
				Fractions: make([]float64, 1+rng.Intn(8)),
				Keep:      0.25 + 0.75*rng.Float64(),
				Seed:      rng.Int63(),
				K:         1 + rng.Intn(16),
			}
			for j := range o.Indices {
				o.Indices[j] = rng.Intn(n)
			}
			for j := range o.Fractions {
				o.Fractions[j] = rng.Float64()
			}
			ops[i] = o
		case opTables:
			ops[i] = TablesOp{}
		}
	}
	return ops
}

// Logger records the outcome of every op in a cumulative history. Logger
// may be used analogously to the standard library's testing.TB.
type Logger struct {
	t       testing.TB
	history bytes.Buffer

	// op context; updated before each operation is run
	opNumber int
	logged   bool
}

// Assert that *Logger implements require.TestingT.
var _ require.TestingT = (*Logger)(nil)

func newLogger(t testing.TB) *Logger {
	return &Logger{t: t}
}

// Errorf fails the test run, logging the provided message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf("error: "+format, args...)
	l.t.Errorf(format, args...)
}

// FailNow dumps the history and stops the test.
func (l *Logger) FailNow() {
	l.t.Logf("History:\n\n%s", l.history.String())
	l.t.FailNow()
}

// Logf records the formatted text as part of the current op's result.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.logged = true
	fmt.Fprintf(&l.history, format, args...)
}

// History returns the history accumulated by the Logger.
func (l *Logger) History() string {
	return l.history.String()
}

// logErr records an expected error by its class rather than its message, so
// that results compare equal across samplers of different sizes.
func (l *Logger) logErr(err error) {
	switch {
	case errors.Is(err, vose.ErrOutOfRange):
		l.Logf("err(out of range)")
	case errors.Is(err, vose.ErrInvalidInput):
		l.Logf("err(invalid input)")
	default:
		l.Logf("err(%v)", err)
	}
}

// step runs op against s and returns the bytes it appended to the history.
func (l *Logger) step(op Op, s *vose.Sampler) []byte {
	defer func() {
		if r := recover(); r != nil {
			l.t.Logf("History:\n\n%s", l.history.String())
			l.t.Fatal(r)
		}
	}()
	l.logged = false
	fmt.Fprintf(&l.history, "op %6d: %s = ", l.opNumber, op)
	start := l.history.Len()
	op.Run(l, s)
	if !l.logged {
		l.history.WriteString("-")
	}
	result := append([]byte(nil), l.history.Bytes()[start:]...)
	l.history.WriteByte('\n')
	l.opNumber++
	return result
}

// Run runs ops against s and returns the resulting log.
func Run(t testing.TB, s *vose.Sampler, ops []Op) *Logger {
	l := newLogger(t)
	for _, op := range ops {
		l.step(op, s)
	}
	fmt.Fprintln(&l.history, "done")
	if t.Failed() {
		t.Logf("History:\n\n%s", l.history.String())
	}
	return l
}

// RunInTandem runs ops against each sampler incrementally. It fails the test
// as soon as any sampler's result diverges from the first sampler's.
func RunInTandem(t testing.TB, samplers []*vose.Sampler, ops []Op) []*Logger {
	logs := make([]*Logger, len(samplers))
	for i := range logs {
		logs[i] = newLogger(t)
	}
	for i, op := range ops {
		var first []byte
		for j, l := range logs {
			result := l.step(op, samplers[j])
			if j == 0 {
				first = result
				continue
			}
			if err := compareOpResults(first, result); err != nil {
				t.Fatalf("sampler %d and %d diverged at op %d (%s):\n%s\nHistory:\n\n%s",
					0, j, i, op, err, l.History())
			}
		}
	}
	return logs
}

func compareOpResults(a, b []byte) error {
	if !bytes.Equal(a, b) {
		return errors.Newf("divergence:\n%s\n%s\n", a, b)
	}
	return nil
}
