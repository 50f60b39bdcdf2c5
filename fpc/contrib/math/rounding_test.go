package math

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fpcore/fpc"
)

func TestRoundHalves(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{-0.5, -1},
		{0.49999999999999994, 0},
		{0x1.fffffep-2, 0},
		{1.5, 2},
		{2.5, 2},
		{-2.5, -2},
		{3.5, 4},
		{0.75, 1},
		{-0.25, stdmath.Copysign(0, -1)},
	}
	forEachPath(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := Round(tt.in); !sameBits(got, tt.want) {
				t.Errorf("Round(%v): got %v, want %v", tt.in, got, tt.want)
			}
			if float64(float32(tt.in)) != tt.in {
				// Not a float32 value; the conversion would round onto a tie.
				continue
			}
			if got := Round(float32(tt.in)); !sameBits(got, float32(tt.want)) {
				t.Errorf("Round(float32(%v)): got %v, want %v", tt.in, got, tt.want)
			}
		}
	})
}

// TestRoundingPathsAgree compares the software and hardware paths bit for bit.
func TestRoundingPathsAgree(t *testing.T) {
	ops := map[string]func(float32) float32{
		"Trunc": Trunc[float32],
		"Floor": Floor[float32],
		"Ceil":  Ceil[float32],
		"Round": Round[float32],
		"ModFIntegral": func(x float32) float32 {
			i, _ := ModF(x)
			return i
		},
		"ModFFractional": func(x float32) float32 {
			_, f := ModF(x)
			return f
		},
	}
	rng := rand.New(rand.NewSource(20))
	inputs := []float32{0, float32(stdmath.Copysign(0, -1)), float32(stdmath.Inf(1)), float32(stdmath.Inf(-1)), 0.5, -0.5, 1e30}
	for range 100000 {
		inputs = append(inputs, stdmath.Float32frombits(rng.Uint32()))
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, x := range inputs {
				if IsNaN(x) {
					continue
				}
				soft := onPath(fpc.PathSoftware, func() float32 { return op(x) })
				hard := onPath(fpc.PathHardware, func() float32 { return op(x) })
				if !sameBits(soft, hard) {
					t.Fatalf("%s(%v): software %v, hardware %v", name, x, soft, hard)
				}
			}
		})
	}
}

func TestRoundingIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	forEachPath(t, func(t *testing.T) {
		for range 50000 {
			x := stdmath.Float64frombits(rng.Uint64())
			if tr := Trunc(x); !sameBits(Trunc(tr), tr) {
				t.Fatalf("Trunc(Trunc(%v)) != Trunc(%v)", x, x)
			}
			if r := Round(x); !sameBits(Round(r), r) {
				t.Fatalf("Round(Round(%v)) != Round(%v)", x, x)
			}
		}
	})
}

func TestModFInfinity(t *testing.T) {
	forEachPath(t, func(t *testing.T) {
		i, f := ModF(stdmath.Inf(-1))
		if !stdmath.IsInf(i, -1) || !sameBits(f, stdmath.Copysign(0, -1)) {
			t.Errorf("ModF(-Inf): got (%v, %v)", i, f)
		}
	})
}
