package math

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fpcore/fpc"
)

func TestNextFloat32(t *testing.T) {
	minSub := fpc.MinSubnormal[float32]()
	maxF := fpc.MaxFinite[float32]()
	inf := float32(stdmath.Inf(1))
	negZero := float32(stdmath.Copysign(0, -1))

	tests := []struct {
		name     string
		in       float32
		up, down float32
	}{
		{"Zero", 0, minSub, -minSub},
		{"NegZero", negZero, minSub, -minSub},
		{"MinSubnormal", minSub, 2 * minSub, 0},
		{"NegMinSubnormal", -minSub, negZero, -2 * minSub},
		{"One", 1, 1 + 0x1p-23, 1 - 0x1p-24},
		{"NegOne", -1, -1 + 0x1p-24, -1 - 0x1p-23},
		{"MaxFinite", maxF, inf, stdmath.Nextafter32(maxF, 0)},
		{"Inf", inf, inf, maxF},
		{"NegInf", -inf, -maxF, -inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextUp(tt.in); !sameBits(got, tt.up) {
				t.Errorf("NextUp(%v): got %v, want %v", tt.in, got, tt.up)
			}
			if got := NextDown(tt.in); !sameBits(got, tt.down) {
				t.Errorf("NextDown(%v): got %v, want %v", tt.in, got, tt.down)
			}
		})
	}

	nan := float32(stdmath.NaN())
	if !IsNaN(NextUp(nan)) || !IsNaN(NextDown(nan)) {
		t.Error("NextUp/NextDown(NaN) should be NaN")
	}
}

func TestNextFloat64MatchesNextafter(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for range 100000 {
		x := stdmath.Float64frombits(rng.Uint64())
		if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) || x == 0 {
			continue
		}
		if got, want := NextUp(x), stdmath.Nextafter(x, stdmath.Inf(1)); !sameBits(got, want) {
			t.Fatalf("NextUp(%v): got %v, want %v", x, got, want)
		}
		if got, want := NextDown(x), stdmath.Nextafter(x, stdmath.Inf(-1)); !sameBits(got, want) {
			t.Fatalf("NextDown(%v): got %v, want %v", x, got, want)
		}
	}
}

// TestNextOrdering checks NextDown(x) < x < NextUp(x) and that the two are
// inverse to each other on finite values.
func TestNextOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 200000 {
		x := stdmath.Float32frombits(rng.Uint32())
		if !IsFinite(x) {
			continue
		}
		up, down := NextUp(x), NextDown(x)
		if !(down < x && x < up) {
			t.Fatalf("ordering at %v: down=%v up=%v", x, down, up)
		}
		if x != 0 {
			if got := NextUp(down); !sameBits(got, x) {
				t.Fatalf("NextUp(NextDown(%v)) = %v", x, got)
			}
			if got := NextDown(up); !sameBits(got, x) {
				t.Fatalf("NextDown(NextUp(%v)) = %v", x, got)
			}
		}
	}
}
