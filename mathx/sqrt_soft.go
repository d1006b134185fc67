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

import "math"

// sqrtSoft computes sqrt(value) with Newton-Raphson iteration.
//
// Algorithm:
//  1. Seed x with a power of two that is not below the root
//  2. While value - x*x <= 1e-6: x = (x + value/x) / 2, stopping early
//     once value - x*x is exactly 0
//  3. Give up after 50 updates
//
// The loop guard is a one-sided test: it keeps iterating while x is above
// the root (negative residual) and stops as soon as rounding leaves x below
// the root by more than 1e-6. That, the exact-zero exit, or the iteration cap
// ends every call; the result is within an ulp or two of the true root.
//
// Special cases:
//   - sqrtSoft(x < 0) = NaN
//   - sqrtSoft(±0) = 0
//   - sqrtSoft(+Inf) = +Inf
//   - sqrtSoft(NaN) = NaN
func sqrtSoft(value float32) float32 {
	if value < 0 {
		return float32(math.NaN())
	}
	if value == 0 {
		return 0
	}
	if value != value || value > math.MaxFloat32 {
		return value
	}

	x := sqrtSeed(value)
	for i := 0; i < sqrtMaxIterations && value-x*x <= sqrtTolerance; i++ {
		x = (x + value/x) / 2
		if value-x*x == 0 {
			break
		}
	}
	return x
}

// sqrtSeed returns 2^(e/2+1) where e is the binary exponent of value. For any
// finite value > 0 this is at least sqrt(value) and at most about 4*sqrt(value),
// so Newton's method approaches the root from above in a handful of steps.
func sqrtSeed(value float32) float32 {
	exp := int(math.Float32bits(value)>>23&0xff) - 127
	if exp < -126 {
		// Subnormal.
		exp = -126
	}
	return math.Float32frombits(uint32(exp/2+1+127) << 23)
}
