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

import "github.com/chewxy/math32"

// Host is the Kernel backed by github.com/chewxy/math32, which uses hardware
// square root where available and ports the stdlib algorithms to float32
// elsewhere.
//
// Host differs from Soft only within the documented tolerances, with two
// exceptions at the edges: Host.Sqrt(-0) returns -0, and Host keeps the IEEE
// sign of zero results from Trunc/Floor/Ceil.
type Host struct{}

var _ Kernel = Host{}

// Name returns "host".
func (Host) Name() string { return "host" }

func (Host) Sqrt(value float32) float32  { return math32.Sqrt(value) }
func (Host) Trunc(value float32) float32 { return math32.Trunc(value) }
func (Host) Floor(value float32) float32 { return math32.Floor(value) }
func (Host) Ceil(value float32) float32  { return math32.Ceil(value) }

// Frac uses the same definition as Soft so the two kernels agree on
// negative inputs.
func (Host) Frac(value float32) float32 { return value - math32.Floor(value) }

func (Host) Sin(angle float32) float32               { return math32.Sin(angle) }
func (Host) Cos(angle float32) float32               { return math32.Cos(angle) }
func (Host) SinCos(angle float32) (sin, cos float32) { return math32.Sincos(angle) }
func (Host) Atan2(y, x float32) float32              { return math32.Atan2(y, x) }
