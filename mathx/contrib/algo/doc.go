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

// Package algo provides bulk slice transforms over the mathx kernels.
//
// Every transform takes the Kernel explicitly so callers can pin the
// dependency-free implementation regardless of what mathx selected at init:
//
//	algo.SqrtTransform(mathx.Soft{}, input, output)
//	algo.SinCosTransform(mathx.Current(), angles, sins, coss)
//
// Transforms process min(len(input), len(output)) elements. The Parallel*
// variants split the work across a workerpool.Pool and fall back to the
// sequential loop for short inputs or a nil pool.
package algo
