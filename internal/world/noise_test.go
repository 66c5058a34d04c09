package world

import (
	"math/rand"
	"testing"
)

func TestHash2Deterministic(t *testing.T) {
	first := hash2(10, 20, 42)
	for i := 0; i < 100; i++ {
		if h := hash2(10, 20, 42); h != first {
			t.Fatalf("hash2 not deterministic: %d != %d", h, first)
		}
	}
}

func TestHash2DifferentInputs(t *testing.T) {
	if hash2(1, 0, 42) == hash2(2, 0, 42) {
		t.Error("hash2 should differ for different X")
	}
	if hash2(0, 1, 42) == hash2(0, 2, 42) {
		t.Error("hash2 should differ for different Z")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Error("hash2 should differ for different seed")
	}
}

func TestValueNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x := (rng.Float64() - 0.5) * 2000
		z := (rng.Float64() - 0.5) * 2000
		if v := valueNoise2D(x, z, 7); v < 0 || v > 1 {
			t.Fatalf("valueNoise2D(%v,%v) = %v outside [0,1]", x, z, v)
		}
		if v := octaveNoise2D(x, z, 7, 4, 0.5, 2); v < 0 || v > 1 {
			t.Fatalf("octaveNoise2D(%v,%v) = %v outside [0,1]", x, z, v)
		}
	}
}

func TestValueNoiseMatchesLatticeAtIntegers(t *testing.T) {
	for _, p := range [][2]int64{{0, 0}, {3, -4}, {-17, 9}} {
		got := valueNoise2D(float64(p[0]), float64(p[1]), 11)
		if want := latticeValue(p[0], p[1], 11); got != want {
			t.Errorf("valueNoise2D at lattice %v = %v, want %v", p, got, want)
		}
	}
}

func TestOctaveNoiseZeroOctaves(t *testing.T) {
	if v := octaveNoise2D(1.5, 2.5, 3, 0, 0.5, 2); v != 0 {
		t.Fatalf("zero octaves = %v, want 0", v)
	}
}

func TestNewGenerator(t *testing.T) {
	cases := []struct {
		kind   string
		wantOK bool
		want   string
	}{
		{"", true, "sine"},
		{"sine", true, "sine"},
		{"simplex", true, "simplex"},
		{"value", true, "value"},
		{"perlin", false, "sine"},
	}
	for _, tc := range cases {
		gen, ok := NewGenerator(tc.kind, 1)
		if ok != tc.wantOK {
			t.Errorf("NewGenerator(%q) ok = %v", tc.kind, ok)
		}
		var got string
		switch gen.(type) {
		case *SineGenerator:
			got = "sine"
		case *SimplexGenerator:
			got = "simplex"
		case *ValueGenerator:
			got = "value"
		}
		if got != tc.want {
			t.Errorf("NewGenerator(%q) = %s, want %s", tc.kind, got, tc.want)
		}
	}
}
