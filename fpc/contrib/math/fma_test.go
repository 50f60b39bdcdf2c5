package math

import (
	stdmath "math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-fpcore/fpc"
)

// exactFMA32 rounds a*b + c to float32 once using big.Float.
func exactFMA32(a, b, c float32) float32 {
	p := new(big.Float).SetPrec(200).SetFloat64(float64(a))
	p.Mul(p, new(big.Float).SetFloat64(float64(b)))
	p.Add(p, new(big.Float).SetFloat64(float64(c)))
	f, _ := p.Float32()
	return f
}

func TestFused32CorrectlyRounded(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for range 200000 {
		a := float32(rng.NormFloat64())
		b := float32(rng.NormFloat64())
		// Keep c close to -a*b so the sum cancels and exposes double rounding.
		c := -float32(float64(a)*float64(b)) * (1 + float32(rng.Intn(3)-1)*0x1p-23)
		if got, want := fused32(a, b, c), exactFMA32(a, b, c); !sameBits(got, want) {
			t.Fatalf("fused32(%v, %v, %v): got %v, want %v", a, b, c, got, want)
		}
	}
}

func TestFused32DoubleRoundingCase(t *testing.T) {
	// a*b + c = 1 + 2^-24 + 2^-57. Rounding to float64 first lands on the
	// float32 tie, which would then round down to 1.
	a := float32(0x1p-24 + 0x1p-35)
	b := float32(1 - 0x1p-11 + 0x1p-22)
	c := float32(1)
	if naive := float32(float64(a)*float64(b) + float64(c)); naive != 1 {
		t.Fatalf("test setup: naive rounding gave %v", naive)
	}
	want := float32(1 + 0x1p-23)
	if got := fused32(a, b, c); got != want {
		t.Errorf("fused32: got %v, want %v", got, want)
	}
	if got := exactFMA32(a, b, c); got != want {
		t.Errorf("big.Float reference: got %v, want %v", got, want)
	}
}

func TestFMAPaths(t *testing.T) {
	// a*b = 1 - 2^-54: rounding the product gives exactly 1.
	a := 1 + 0x1p-27
	b := 1 - 0x1p-27
	c := -1.0

	if got := onPath(fpc.PathSoftware, func() float64 { return FMA(a, b, c) }); got != 0 {
		t.Errorf("software FMA: got %v, want 0", got)
	}
	if got := onPath(fpc.PathHardware, func() float64 { return FMA(a, b, c) }); got != -0x1p-54 {
		t.Errorf("hardware FMA: got %v, want %v", got, -0x1p-54)
	}
	if got := stdmath.FMA(a, b, c); got != -0x1p-54 {
		t.Errorf("math.FMA: got %v", got)
	}
}
