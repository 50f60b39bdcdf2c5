package math

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fpcore/fpc"
)

func TestSqrtSpecials(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	forEachPath(t, func(t *testing.T) {
		tests := []struct {
			in, want float64
		}{
			{0, 0},
			{negZero, negZero},
			{1, 1},
			{4, 2},
			{2, stdmath.Sqrt2},
			{stdmath.Inf(1), stdmath.Inf(1)},
			{stdmath.SmallestNonzeroFloat64, 0x1p-537},
		}
		for _, tt := range tests {
			if got := Sqrt(tt.in); !sameBits(got, tt.want) {
				t.Errorf("Sqrt(%v): got %v, want %v", tt.in, got, tt.want)
			}
		}
		if !IsNaN(Sqrt(-1.0)) || !IsNaN(Sqrt(stdmath.NaN())) || !IsNaN(Sqrt(stdmath.Inf(-1))) {
			t.Error("Sqrt of negative or NaN should be NaN")
		}
	})
}

func TestSqrtSoftwareCorrectlyRounded(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for range 100000 {
		x := stdmath.Float64frombits(rng.Uint64() >> 1) // positive
		if stdmath.IsNaN(x) {
			continue
		}
		if got, want := sqrtSoft(x), stdmath.Sqrt(x); !sameBits(got, want) {
			t.Fatalf("sqrtSoft(%v): got %v, want %v", x, got, want)
		}
	}

	prev := fpc.SetPath(fpc.PathSoftware)
	defer fpc.SetPath(prev)
	for range 100000 {
		x := stdmath.Float32frombits(rng.Uint32() >> 1)
		if IsNaN(x) {
			continue
		}
		if got, want := Sqrt(x), float32(stdmath.Sqrt(float64(x))); !sameBits(got, want) {
			t.Fatalf("Sqrt(float32(%v)): got %v, want %v", x, got, want)
		}
	}
}

func TestLdexpFrexp(t *testing.T) {
	forEachPath(t, func(t *testing.T) {
		tests := []struct {
			frac float32
			exp  int
			want float32
		}{
			{1, 0, 1},
			{0.75, 3, 6},
			{1, -149, fpc.MinSubnormal[float32]()},
			{1, -150, 0},       // tie rounds to even zero
			{1.5, -150, 0x1p-149}, // above the tie
			{1, 128, float32(stdmath.Inf(1))},
			{-1, -126, -0x1p-126},
			{0, 10, 0},
		}
		for _, tt := range tests {
			if got := Ldexp(tt.frac, tt.exp); !sameBits(got, tt.want) {
				t.Errorf("Ldexp(%v, %d): got %v, want %v", tt.frac, tt.exp, got, tt.want)
			}
		}

		rng := rand.New(rand.NewSource(31))
		for range 20000 {
			x := stdmath.Float64frombits(rng.Uint64())
			if !IsFinite(x) || x == 0 {
				continue
			}
			frac, exp := Frexp(x)
			wantFrac, wantExp := stdmath.Frexp(x)
			if !sameBits(frac, wantFrac) || exp != wantExp {
				t.Fatalf("Frexp(%v): got (%v, %d), want (%v, %d)", x, frac, exp, wantFrac, wantExp)
			}
			if back := Ldexp(frac, exp); !sameBits(back, x) {
				t.Fatalf("Ldexp(Frexp(%v)) = %v", x, back)
			}
		}
	})
}

func TestRoundUpPow2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{3, 4},
		{4, 4},
		{0.3, 0.5},
		{1e-320, 0x1p-1063},
		{0, 0},
		{-3, -3},
	}
	forEachPath(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := RoundUpPow2(tt.in); got != tt.want {
				t.Errorf("RoundUpPow2(%v): got %v, want %v", tt.in, got, tt.want)
			}
		}
	})
}
