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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-mathx/mathx"
	"github.com/ajroetker/go-mathx/mathx/contrib/workerpool"
)

const benchSize = 1 << 14

var kernels = []mathx.Kernel{mathx.Soft{}, mathx.Host{}}

func ramp(n int, start, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)*step
	}
	return out
}

func TestTransforms(t *testing.T) {
	input := []float32{-10, -4.9, -1, -0.5, 0, 0.25, 0.5, 1, 2, 3.14159, 16, 100}

	for _, k := range kernels {
		transforms := []struct {
			name   string
			bulk   func(mathx.Kernel, []float32, []float32)
			scalar func(float32) float32
		}{
			{"sqrt", SqrtTransform, k.Sqrt},
			{"sin", SinTransform, k.Sin},
			{"cos", CosTransform, k.Cos},
			{"floor", FloorTransform, k.Floor},
			{"ceil", CeilTransform, k.Ceil},
			{"frac", FracTransform, k.Frac},
		}
		for _, tr := range transforms {
			t.Run(k.Name()+"/"+tr.name, func(t *testing.T) {
				output := make([]float32, len(input))
				tr.bulk(k, input, output)

				want := make([]float32, len(input))
				for i, v := range input {
					want[i] = tr.scalar(v)
				}
				if diff := cmp.Diff(want, output, cmpopts.EquateNaNs()); diff != "" {
					t.Errorf("%s mismatch (-want +got):\n%s", tr.name, diff)
				}
			})
		}
	}
}

func TestTransformShortOutput(t *testing.T) {
	input := []float32{1, 4, 9, 16}
	output := []float32{-1, -1}
	SqrtTransform(mathx.Soft{}, input, output)
	if diff := cmp.Diff([]float32{1, 2}, output); diff != "" {
		t.Errorf("short output mismatch (-want +got):\n%s", diff)
	}
}

func TestSinCosTransform(t *testing.T) {
	input := ramp(1000, -50, 0.1)
	for _, k := range kernels {
		t.Run(k.Name(), func(t *testing.T) {
			sins := make([]float32, len(input))
			coss := make([]float32, len(input))
			SinCosTransform(k, input, sins, coss)

			wantSin := make([]float32, len(input))
			wantCos := make([]float32, len(input))
			for i, v := range input {
				wantSin[i] = float32(math.Sin(float64(v)))
				wantCos[i] = float32(math.Cos(float64(v)))
			}
			approx := cmpopts.EquateApprox(0, 2e-4)
			if diff := cmp.Diff(wantSin, sins, approx); diff != "" {
				t.Errorf("sin mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantCos, coss, approx); diff != "" {
				t.Errorf("cos mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{0, 7, MinParallelSize - 1, MinParallelSize, 3*MinParallelSize + 17} {
		input := ramp(n, -300, 0.0371)
		for _, k := range kernels {
			t.Run(fmt.Sprintf("%s/n=%d", k.Name(), n), func(t *testing.T) {
				seq := make([]float32, n)
				par := make([]float32, n)
				Transform(input, seq, k.Sin)
				ParallelTransform(pool, input, par, k.Sin)
				if diff := cmp.Diff(seq, par); diff != "" {
					t.Errorf("ParallelTransform mismatch (-seq +par):\n%s", diff)
				}

				seqSin, seqCos := make([]float32, n), make([]float32, n)
				parSin, parCos := make([]float32, n), make([]float32, n)
				SinCosTransform(k, input, seqSin, seqCos)
				ParallelSinCosTransform(pool, k, input, parSin, parCos)
				if diff := cmp.Diff(seqSin, parSin); diff != "" {
					t.Errorf("ParallelSinCosTransform sin mismatch (-seq +par):\n%s", diff)
				}
				if diff := cmp.Diff(seqCos, parCos); diff != "" {
					t.Errorf("ParallelSinCosTransform cos mismatch (-seq +par):\n%s", diff)
				}
			})
		}
	}
}

func TestParallelNilPool(t *testing.T) {
	input := ramp(2*MinParallelSize, 0, 0.5)
	output := make([]float32, len(input))
	ParallelTransform(nil, input, output, mathx.Soft{}.Sqrt)
	for i, v := range input {
		if want := (mathx.Soft{}).Sqrt(v); output[i] != want {
			t.Fatalf("output[%d] = %v, want %v", i, output[i], want)
		}
	}
}

func BenchmarkSinCosTransform(b *testing.B) {
	input := ramp(benchSize, -10, 0.001)
	sins := make([]float32, benchSize)
	coss := make([]float32, benchSize)

	for _, k := range kernels {
		b.Run(k.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				SinCosTransform(k, input, sins, coss)
			}
		})
	}

	pool := workerpool.New(0)
	defer pool.Close()
	b.Run("soft/parallel", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			ParallelSinCosTransform(pool, mathx.Soft{}, input, sins, coss)
		}
	})
}

func BenchmarkSqrtTransform(b *testing.B) {
	input := ramp(benchSize, 0, 0.25)
	output := make([]float32, benchSize)

	for _, k := range kernels {
		b.Run(k.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				SqrtTransform(k, input, output)
			}
		})
	}
}
