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

package algo

import (
	"github.com/ajroetker/go-mathx/mathx"
	"github.com/ajroetker/go-mathx/mathx/contrib/workerpool"
)

// MinParallelSize is the input length below which Parallel* transforms run
// on the calling goroutine.
const MinParallelSize = 4096

// ScalarFunc is a scalar operation on a single float32.
type ScalarFunc func(float32) float32

// Transform applies fn to each element of input, storing results in output.
//
// Example usage:
//
//	Transform(input, output, func(x float32) float32 { return mathx.Clamp(x, 0, 1) })
func Transform(input, output []float32, fn ScalarFunc) {
	n := min(len(input), len(output))
	for i := 0; i < n; i++ {
		output[i] = fn(input[i])
	}
}

// SqrtTransform applies k.Sqrt to each element.
func SqrtTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Sqrt)
}

// SinTransform applies k.Sin to each element.
func SinTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Sin)
}

// CosTransform applies k.Cos to each element.
func CosTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Cos)
}

// FloorTransform applies k.Floor to each element.
func FloorTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Floor)
}

// CeilTransform applies k.Ceil to each element.
func CeilTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Ceil)
}

// FracTransform applies k.Frac to each element.
func FracTransform(k mathx.Kernel, input, output []float32) {
	Transform(input, output, k.Frac)
}

// SinCosTransform computes sine and cosine of each element with one
// k.SinCos call per element. It processes min of the three lengths.
func SinCosTransform(k mathx.Kernel, input, sinOut, cosOut []float32) {
	n := min(len(input), len(sinOut), len(cosOut))
	for i := 0; i < n; i++ {
		sinOut[i], cosOut[i] = k.SinCos(input[i])
	}
}

// ParallelTransform is Transform split across pool.
func ParallelTransform(pool *workerpool.Pool, input, output []float32, fn ScalarFunc) {
	n := min(len(input), len(output))
	if pool == nil || n < MinParallelSize {
		Transform(input[:n], output[:n], fn)
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		Transform(input[start:end], output[start:end], fn)
	})
}

// ParallelSinCosTransform is SinCosTransform split across pool.
func ParallelSinCosTransform(pool *workerpool.Pool, k mathx.Kernel, input, sinOut, cosOut []float32) {
	n := min(len(input), len(sinOut), len(cosOut))
	if pool == nil || n < MinParallelSize {
		SinCosTransform(k, input[:n], sinOut[:n], cosOut[:n])
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		SinCosTransform(k, input[start:end], sinOut[start:end], cosOut[start:end])
	})
}
