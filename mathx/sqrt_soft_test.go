package mathx

import (
	stdmath "math"
	"testing"
)

func TestSqrt_Soft(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
		tol   float64
	}{
		{"sqrt(16) = 4", 16, 4, 0},
		{"sqrt(1) = 1", 1, 1, 0},
		{"sqrt(4) = 2", 4, 2, 0},
		{"sqrt(0.25) = 0.5", 0.25, 0.5, 0},
		{"sqrt(2)", 2, 1.4142135, 1e-6},
		{"sqrt(1023.835)", 1023.835, 31.99742, 1e-4},
		{"sqrt(1e-8)", 1e-8, 1e-4, 1e-10},
		{"sqrt(1e10)", 1e10, 1e5, 1e-2},
		{"sqrt(1e30)", 1e30, 1e15, 1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sqrtSoft(tt.input)
			if stdmath.Abs(float64(got-tt.want)) > tt.tol {
				t.Errorf("sqrtSoft(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSqrt_SoftSpecialCases(t *testing.T) {
	if got := sqrtSoft(0); got != 0 {
		t.Errorf("sqrtSoft(0) = %v, want 0", got)
	}
	negZero := float32(stdmath.Copysign(0, -1))
	if got := sqrtSoft(negZero); got != 0 || stdmath.Signbit(float64(got)) {
		t.Errorf("sqrtSoft(-0) = %v, want +0", got)
	}
	for _, v := range []float32{-102, -1, -1e-30, float32(stdmath.Inf(-1))} {
		if got := sqrtSoft(v); !stdmath.IsNaN(float64(got)) {
			t.Errorf("sqrtSoft(%v) = %v, want NaN", v, got)
		}
	}
	if got := sqrtSoft(float32(stdmath.NaN())); !stdmath.IsNaN(float64(got)) {
		t.Errorf("sqrtSoft(NaN) = %v, want NaN", got)
	}
	inf := float32(stdmath.Inf(1))
	if got := sqrtSoft(inf); got != inf {
		t.Errorf("sqrtSoft(+Inf) = %v, want +Inf", got)
	}
}

// TestSqrt_SoftSquaresBack checks |sqrt(v)^2 - v| < 1e-3 on [0, 1000] and a
// relative bound across the rest of the float32 range.
func TestSqrt_SoftSquaresBack(t *testing.T) {
	for i := 0; i <= 100000; i++ {
		v := float32(i) * 0.01
		x := sqrtSoft(v)
		if diff := stdmath.Abs(float64(x)*float64(x) - float64(v)); diff >= 1e-3 {
			t.Fatalf("sqrtSoft(%v) = %v, squared differs by %v", v, x, diff)
		}
	}

	for _, v := range []float32{1e-38, 1e-20, 3.3e-7, 0.7, 12345.678, 9.87e12, 1e20, 3.4e38} {
		x := float64(sqrtSoft(v))
		want := stdmath.Sqrt(float64(v))
		if rel := stdmath.Abs(x-want) / want; rel > 1e-6 {
			t.Errorf("sqrtSoft(%v) = %v, want %v (relErr=%v)", v, x, want, rel)
		}
	}
}

func TestSqrtSeed(t *testing.T) {
	for _, v := range []float32{1.2e-38, 1e-20, 0.5, 1, 2, 3, 4, 1000, 1e20, 3.4e38} {
		seed := float64(sqrtSeed(v))
		root := stdmath.Sqrt(float64(v))
		if seed < root || seed > 4*root {
			t.Errorf("sqrtSeed(%v) = %v, want in [%v, %v]", v, seed, root, 4*root)
		}
	}

	// Subnormals share the smallest normal exponent, so only the lower bound holds.
	for _, v := range []float32{1e-45, 1e-40} {
		if seed, root := float64(sqrtSeed(v)), stdmath.Sqrt(float64(v)); seed < root {
			t.Errorf("sqrtSeed(%v) = %v, below root %v", v, seed, root)
		}
	}
}
