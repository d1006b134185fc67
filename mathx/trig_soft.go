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

// sinCosSoft computes sin(angle) and cos(angle) with one range reduction and
// one CORDIC rotation.
//
// Range reduction: angles outside [-π/2, π/2] are shifted by k*π, where k is
// the integer nearest angle/π. sin and cos both flip sign when k is odd.
// This is a single pass for any finite input; the reduced angle carries an
// absolute error of about ulp(angle).
//
// Special cases:
//   - sinCosSoft(±Inf) = NaN, NaN
//   - sinCosSoft(NaN) = NaN, NaN
func sinCosSoft(angle float32) (sin, cos float32) {
	if angle >= -PiOver2 && angle <= PiOver2 {
		return cordicRotate(angle)
	}
	if angle != angle || Abs(angle) > math.MaxFloat32 {
		nan := float32(math.NaN())
		return nan, nan
	}

	k := truncSoft(angle/Pi + 0.5*Sign(angle))
	sin, cos = cordicRotate(angle - k*Pi)
	if half := k * 0.5; truncSoft(half) != half {
		return -sin, -cos
	}
	return sin, cos
}

// cordicRotate runs the rotation-mode CORDIC on z in [-π/2, π/2].
//
// Starting from (cordicGain, 0), each step i rotates the vector by
// ±atan(2^-i) toward the remaining angle z, using only shifts (here,
// multiplication by 2^-i) and adds.
func cordicRotate(z float32) (sin, cos float32) {
	cos = cordicGain
	for i := range cordicIterations {
		d := float32(1)
		if z <= 0 {
			d = -1
		}
		step := d * PowI(2, int32(-i))
		cos, sin = cos-sin*step, sin+cos*step
		z -= d * cordicAtan[i]
	}
	return sin, cos
}

// atan2Soft computes atan2(y, x) with vectoring-mode CORDIC.
//
// The input is scaled by max(|x|, |y|) so the gain of the micro-rotations
// cannot overflow, reflected into the right half-plane when x < 0, and then
// rotated onto the x axis while the applied angles are summed.
//
// Special cases:
//   - atan2Soft(0, 0) = 0
//   - atan2Soft with a NaN or infinite argument = NaN
func atan2Soft(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	m := Max(Abs(x), Abs(y))
	x, y = x/m, y/m
	if x != x || y != y {
		return float32(math.NaN())
	}

	var offset float32
	if x < 0 {
		offset = Pi
		if y < 0 {
			offset = -Pi
		}
		x, y = -x, -y
	}

	var z float32
	for i := range cordicIterations {
		step := PowI(2, int32(-i))
		if y > 0 {
			x, y = x+y*step, y-x*step
			z += cordicAtan[i]
		} else {
			x, y = x-y*step, y+x*step
			z -= cordicAtan[i]
		}
	}
	return z + offset
}
