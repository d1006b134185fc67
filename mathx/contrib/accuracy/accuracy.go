// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package accuracy measures how far one mathx.Kernel drifts from another
// over a sampled domain. It backs cmd/mathxcheck and the cross-kernel tests.
package accuracy

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ajroetker/go-mathx/mathx"
	"github.com/ajroetker/go-mathx/mathx/contrib/workerpool"
)

var (
	// ErrUnknownOp is returned for an Op not listed in Ops.
	ErrUnknownOp = errors.New("accuracy: unknown op")

	// ErrBadDomain is returned when lo > hi or either bound is not finite.
	ErrBadDomain = errors.New("accuracy: invalid domain")

	// ErrBadSamples is returned when fewer than one sample is requested.
	ErrBadSamples = errors.New("accuracy: invalid sample count")
)

// Op names a kernel operation that can be swept.
type Op string

const (
	OpSqrt   Op = "sqrt"
	OpTrunc  Op = "trunc"
	OpFloor  Op = "floor"
	OpCeil   Op = "ceil"
	OpFrac   Op = "frac"
	OpSin    Op = "sin"
	OpCos    Op = "cos"
	OpSinCos Op = "sincos"
	OpAtan2  Op = "atan2"
)

// evalFunc returns the absolute difference between ref and cand at v.
type evalFunc func(ref, cand mathx.Kernel, v float32) float64

var evaluators = map[Op]evalFunc{
	OpSqrt:  unary(mathx.Kernel.Sqrt),
	OpTrunc: unary(mathx.Kernel.Trunc),
	OpFloor: unary(mathx.Kernel.Floor),
	OpCeil:  unary(mathx.Kernel.Ceil),
	OpFrac:  unary(mathx.Kernel.Frac),
	OpSin:   unary(mathx.Kernel.Sin),
	OpCos:   unary(mathx.Kernel.Cos),
	OpSinCos: func(ref, cand mathx.Kernel, v float32) float64 {
		rs, rc := ref.SinCos(v)
		cs, cc := cand.SinCos(v)
		return max(absDiff(rs, cs), absDiff(rc, cc))
	},
	// Atan2 is swept along the lines y = v, x = 1 and y = 1, x = v, which
	// together cover every direction in the upper half-plane.
	OpAtan2: func(ref, cand mathx.Kernel, v float32) float64 {
		return max(absDiff(ref.Atan2(v, 1), cand.Atan2(v, 1)),
			absDiff(ref.Atan2(1, v), cand.Atan2(1, v)))
	},
}

func unary(fn func(mathx.Kernel, float32) float32) evalFunc {
	return func(ref, cand mathx.Kernel, v float32) float64 {
		return absDiff(fn(ref, v), fn(cand, v))
	}
}

// absDiff treats two NaNs as equal and a single NaN as an infinite error.
func absDiff(a, b float32) float64 {
	an, bn := a != a, b != b
	switch {
	case an && bn:
		return 0
	case an || bn:
		return math.Inf(1)
	case a == b:
		// Covers equal infinities.
		return 0
	}
	return math.Abs(float64(a) - float64(b))
}

// Ops returns every supported Op in sorted order.
func Ops() []Op {
	ops := make([]Op, 0, len(evaluators))
	for op := range evaluators {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// ParseOp validates name as an Op.
func ParseOp(name string) (Op, error) {
	op := Op(name)
	if _, ok := evaluators[op]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownOp, name)
	}
	return op, nil
}

// Report summarizes one sweep.
type Report struct {
	Op        Op
	Reference string
	Candidate string
	Samples   int

	// MaxAbsErr is the largest |ref - cand| seen, and WorstInput the sample
	// where it occurred (the first one on ties).
	MaxAbsErr  float64
	WorstInput float32

	// MeanAbsErr averages the finite errors only; NaN/non-NaN mismatches
	// show up in MaxAbsErr as +Inf.
	MeanAbsErr float64
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("%s %s vs %s: n=%d max=%.3g at %v mean=%.3g",
		r.Op, r.Candidate, r.Reference, r.Samples, r.MaxAbsErr, r.WorstInput, r.MeanAbsErr)
}

// Compare evaluates op with both kernels at n evenly spaced points of
// [lo, hi] (just lo when n == 1) and reports how far cand strays from ref.
// A nil pool evaluates on the calling goroutine.
func Compare(pool *workerpool.Pool, ref, cand mathx.Kernel, op Op, lo, hi float32, n int) (Report, error) {
	eval, ok := evaluators[op]
	if !ok {
		return Report{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
	}
	if !isFinite(lo) || !isFinite(hi) || lo > hi {
		return Report{}, fmt.Errorf("%w: [%v, %v]", ErrBadDomain, lo, hi)
	}
	if n < 1 {
		return Report{}, fmt.Errorf("%w: %d", ErrBadSamples, n)
	}

	errs := make([]float64, n)
	sweep := func(start, end int) {
		for i := start; i < end; i++ {
			errs[i] = eval(ref, cand, sample(lo, hi, i, n))
		}
	}
	if pool == nil {
		sweep(0, n)
	} else {
		pool.ParallelFor(n, sweep)
	}

	r := Report{
		Op:         op,
		Reference:  ref.Name(),
		Candidate:  cand.Name(),
		Samples:    n,
		WorstInput: lo,
	}
	var sum float64
	finite := 0
	for i, e := range errs {
		if e > r.MaxAbsErr {
			r.MaxAbsErr = e
			r.WorstInput = sample(lo, hi, i, n)
		}
		if !math.IsInf(e, 1) {
			sum += e
			finite++
		}
	}
	if finite > 0 {
		r.MeanAbsErr = sum / float64(finite)
	}
	return r, nil
}

// sample returns the i-th of n evenly spaced points in [lo, hi]. It
// interpolates in float64 so the endpoints are hit exactly.
func sample(lo, hi float32, i, n int) float32 {
	if n == 1 {
		return lo
	}
	t := float64(i) / float64(n-1)
	return float32(float64(lo) + t*(float64(hi)-float64(lo)))
}

func isFinite(v float32) bool {
	return v == v && math.Abs(float64(v)) <= math.MaxFloat32
}
