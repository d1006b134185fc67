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

package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for the generic scalar helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is a half-open interval [Start, End) used by Map.
// Start may be greater than End.
type Range struct {
	Start, End float32
}

// Abs returns the absolute value of value.
// Abs(-0) returns -0, which compares equal to 0.
func Abs(value float32) float32 {
	if value < 0 {
		return -value
	}
	return value
}

// AbsInt returns the absolute value of a signed integer.
//
// The most negative value of T has no positive counterpart and is returned
// unchanged, e.g. AbsInt(int32(math.MinInt32)) == math.MinInt32.
func AbsInt[T constraints.Signed](value T) T {
	if value < 0 {
		return -value
	}
	return value
}

// Sign returns -1 if value < 0 and 1 otherwise.
//
// This is a non-negative test, not a signbit test: Sign(-0) and Sign(NaN)
// are both 1.
func Sign(value float32) float32 {
	if value < 0 {
		return -1
	}
	return 1
}

// Min returns the smaller of a and b. If one argument is NaN the other one is
// returned.
func Min[T Number](a, b T) T {
	if isNaN(a) {
		return b
	}
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b. If one argument is NaN the other one is
// returned.
func Max[T Number](a, b T) T {
	if isNaN(a) {
		return b
	}
	if b > a {
		return b
	}
	return a
}

// Clamp limits value to [minVal, maxVal]. NaN is returned unchanged.
// The result is unspecified when minVal > maxVal.
func Clamp[T Number](value, minVal, maxVal T) T {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

// Lerp linearly interpolates from a to b, with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return LerpUnclamped(a, b, Clamp(t, 0, 1))
}

// LerpUnclamped computes a + t*(b-a) and extrapolates for t outside [0, 1].
func LerpUnclamped(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Map linearly remaps value from the in range onto the out range.
// A zero-width in range yields ±Inf or NaN.
func Map(value float32, in, out Range) float32 {
	return (value-in.Start)*(out.End-out.Start)/(in.End-in.Start) + out.Start
}

// Smoothstep performs Hermite interpolation between 0 and 1 as value moves
// from leftEdge to rightEdge.
func Smoothstep(value, leftEdge, rightEdge float32) float32 {
	y := Clamp((value-leftEdge)/(rightEdge-leftEdge), 0, 1)
	return y * y * (3 - 2*y)
}

// Approx reports whether |a-b| < DefaultEpsilon.
func Approx(a, b float32) bool {
	return ApproxEpsilon(a, b, DefaultEpsilon)
}

// ApproxEpsilon reports whether |a-b| < epsilon.
func ApproxEpsilon(a, b, epsilon float32) bool {
	return Abs(a-b) < epsilon
}

// PowI raises base to an integer power by repeated multiplication.
//
// PowI(x, 0) = 1 for every x, and PowI(x, -n) = 1 / PowI(x, n). The loop
// stops early once the running product reaches 0 or ±Inf.
func PowI(base float32, exponent int32) float32 {
	n := int64(exponent)
	if n < 0 {
		n = -n
	}
	result := float32(1)
	for range n {
		result *= base
		if result == 0 || Abs(result) > math.MaxFloat32 {
			break
		}
	}
	if exponent < 0 {
		return 1 / result
	}
	return result
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * DegToRad
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * RadToDeg
}

func isNaN[T Number](v T) bool {
	return v != v
}
