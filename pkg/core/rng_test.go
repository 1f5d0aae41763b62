package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		v := r.Range(-2, 5)
		if v < -2 || v >= 5 {
			t.Fatalf("Range produced %f outside [-2,5)", v)
		}
	}
	if r.Range(4, 4) != 4 {
		t.Fatal("empty range should return lo")
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}
