package fpc

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormalizeRoundTrip(t *testing.T) {
	values := []float64{
		1, -1, 0.1, 3.5, -1e-300, 1e300,
		math.SmallestNonzeroFloat64, 3 * math.SmallestNonzeroFloat64,
		math.MaxFloat64, 0x1p-1022, 0x1.fffffffffffffp-1023,
	}
	for _, v := range values {
		n, ok := Normalize(v)
		if !ok {
			t.Fatalf("Normalize(%v): not ok", v)
		}
		if n.Fraction() < 1<<Float64FractionWidth {
			t.Errorf("Normalize(%v): fraction %#x has no leading one", v, n.Fraction())
		}
		if got := n.Float(); got != v {
			t.Errorf("Normalize(%v).Float(): got %v", v, got)
		}
	}
}

func TestNormalizeSpecials(t *testing.T) {
	for _, v := range []float32{0, float32(math.Inf(1)), float32(math.NaN())} {
		if _, ok := Normalize(v); ok {
			t.Errorf("Normalize(%v): want !ok", v)
		}
	}
}

func TestNormalizeSubnormalExponent(t *testing.T) {
	n, _ := Normalize[float32](math.SmallestNonzeroFloat32)
	if n.Exponent() != -149 {
		t.Errorf("Exponent: got %d, want -149", n.Exponent())
	}
	if n.Fraction() != 1<<Float32FractionWidth {
		t.Errorf("Fraction: got %#x", n.Fraction())
	}
}

func TestNormalizedMulPow2(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		k    int
		want float32
	}{
		{"Exact", 3, 4, 48},
		{"IntoSubnormal", 0x1p-120, -20, 0x1p-140},
		{"Underflow", 0x1p-140, -20, 0},
		{"HalfOfMinSubnormalTiesToEven", 0x1p-149, -1, 0},
		{"ThreeHalvesOfMinSubnormalTiesToEven", 0x1.8p-148, -1, 0x1p-148},
		{"Overflow", 0x1p100, 100, float32(math.Inf(1))},
		{"NegativeOverflow", -0x1p127, 1, float32(math.Inf(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Normalize(tt.v)
			if !ok {
				t.Fatalf("Normalize(%v): not ok", tt.v)
			}
			if got := n.MulPow2(tt.k).Float(); got != tt.want {
				t.Errorf("MulPow2(%v, %d): got %v, want %v", tt.v, tt.k, got, tt.want)
			}
		})
	}
}

func TestNormalizedMatchesLdexp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 50000 {
		v := math.Float64frombits(rng.Uint64())
		n, ok := Normalize(v)
		if !ok {
			continue
		}
		k := rng.Intn(4200) - 2100
		want := math.Ldexp(v, k)
		if got := n.MulPow2(k).Float(); math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("MulPow2(%v, %d): got %v, want %v", v, k, got, want)
		}
	}
}

func TestNewNormalizedFloatWideFraction(t *testing.T) {
	// (2^24+1) * 2^(1-23) = 4 + 2^-22 sits halfway between 4 and its
	// successor and rounds to the even fraction.
	n := NewNormalizedFloat[float32](false, 1, 1<<24+1)
	if got := n.Float(); got != 4 {
		t.Errorf("Float: got %v, want 4", got)
	}
	n = NewNormalizedFloat[float32](true, 1, 1<<24+3)
	if got := n.Float(); got != -(4 + 0x1p-20) {
		t.Errorf("Float: got %v, want %v", got, -(4 + 0x1p-20))
	}
}

func TestShiftRightRoundEven(t *testing.T) {
	tests := []struct {
		x    uint64
		s    uint
		want uint64
	}{
		{5, 0, 5},
		{5, 1, 2},  // 2.5 -> 2
		{7, 1, 4},  // 3.5 -> 4
		{9, 2, 2},  // 2.25 -> 2
		{11, 2, 3}, // 2.75 -> 3
		{1 << 63, 64, 0},
		{1<<63 + 1, 64, 1},
		{math.MaxUint64, 65, 0},
	}
	for _, tt := range tests {
		if got := ShiftRightRoundEven(tt.x, tt.s); got != tt.want {
			t.Errorf("ShiftRightRoundEven(%d, %d): got %d, want %d", tt.x, tt.s, got, tt.want)
		}
	}
}
