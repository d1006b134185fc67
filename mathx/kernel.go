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

// Kernel is one implementation of the float32 primitives that have both a
// dependency-free and a host-backed version. Implementations must be pure
// and safe for concurrent use.
type Kernel interface {
	// Name returns a short identifier ("soft", "host").
	Name() string

	Sqrt(value float32) float32
	Trunc(value float32) float32
	Floor(value float32) float32
	Ceil(value float32) float32
	Frac(value float32) float32

	Sin(angle float32) float32
	Cos(angle float32) float32
	SinCos(angle float32) (sin, cos float32)
	Atan2(y, x float32) float32
}

// Sqrt returns the square root of value, or NaN if value < 0.
// Sqrt(±0) is exactly 0.
func Sqrt(value float32) float32 {
	return current.Sqrt(value)
}

// Trunc returns the integer part of value, rounding toward zero.
func Trunc(value float32) float32 {
	return current.Trunc(value)
}

// Floor returns the greatest integer value less than or equal to value.
func Floor(value float32) float32 {
	return current.Floor(value)
}

// Ceil returns the least integer value greater than or equal to value.
func Ceil(value float32) float32 {
	return current.Ceil(value)
}

// Frac returns value - Floor(value), which lies in [0, 1) for finite input.
func Frac(value float32) float32 {
	return current.Frac(value)
}

// Sin returns the sine of angle (radians).
func Sin(angle float32) float32 {
	return current.Sin(angle)
}

// Cos returns the cosine of angle (radians).
func Cos(angle float32) float32 {
	return current.Cos(angle)
}

// SinCos returns Sin(angle), Cos(angle). Prefer it over separate Sin and Cos
// calls when both are needed; the soft kernel shares one reduction and
// rotation between them.
func SinCos(angle float32) (sin, cos float32) {
	return current.SinCos(angle)
}

// SinCosDeg is SinCos for an angle in degrees.
func SinCosDeg(degrees float32) (sin, cos float32) {
	return current.SinCos(degrees * DegToRad)
}

// Atan2 returns the angle of the point (x, y) in [-π, π].
func Atan2(y, x float32) float32 {
	return current.Atan2(y, x)
}
