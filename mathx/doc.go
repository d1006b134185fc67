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

// Package mathx provides deterministic float32 scalar math that does not depend
// on a platform math library.
//
// # Kernels
//
// Every transcendental and rounding function is implemented twice behind the
// [Kernel] interface:
//
//   - [Soft] is dependency-free: Newton-Raphson square root, truncation-based
//     floor/ceil/frac, and a 16-step CORDIC for sin/cos/atan2.
//   - [Host] delegates to github.com/chewxy/math32.
//
// The package-level functions ([Sqrt], [Sin], [Cos], [SinCos], [Floor], ...)
// route through the kernel selected at init time. See [CurrentLevel].
//
// # Selecting a kernel
//
// The soft kernel is used when any of the following holds:
//   - the binary is built with the mathx_soft build tag
//   - the MATHX_SOFT environment variable is set
//   - the architecture is neither amd64 nor arm64, or the CPU reports no
//     hardware floating point
//
// Otherwise the host kernel is used.
//
// # Accuracy
//
// The soft kernel agrees with the host kernel within:
//   - Sqrt: 1e-3 absolute for inputs below 1e3, relative 1e-6 above
//   - Sin, Cos, SinCos: ~1e-4 absolute for |x| below a few hundred radians
//   - Trunc, Floor, Ceil: exact
//
// Argument reduction for Sin/Cos loses precision proportionally to |x|.
// Callers with large angles should pre-normalize to [-2π, 2π].
//
// # Scalar utilities
//
// [Clamp], [Lerp], [Min], [Max], [Sign], [Abs], [Map], [Smoothstep],
// [Approx] and [PowI] have a single implementation shared by both kernels.
package mathx
