package catch

import "testing"

// scriptedRNG replays a fixed sequence of integers, cycling when exhausted.
// Each value is clamped into the requested range.
type scriptedRNG struct {
	values []int
	pos    int
	calls  int
}

func newScriptedRNG(values ...int) *scriptedRNG {
	return &scriptedRNG{values: values}
}

func (r *scriptedRNG) UniformInt(min, max int) int {
	r.calls++
	if len(r.values) == 0 {
		return min
	}
	v := r.values[r.pos%len(r.values)]
	r.pos++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func TestLCGBoundsInclusive(t *testing.T) {
	rng := NewRNG(7)
	seenMin, seenMax := false, false
	for i := 0; i < 10000; i++ {
		v := rng.UniformInt(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("UniformInt(3, 6) = %d, out of range", v)
		}
		seenMin = seenMin || v == 3
		seenMax = seenMax || v == 6
	}
	if !seenMin || !seenMax {
		t.Errorf("expected both bounds to appear (min=%v, max=%v)", seenMin, seenMax)
	}
}

func TestLCGSwappedBoundsAndSingleValue(t *testing.T) {
	rng := NewRNG(99)
	for i := 0; i < 100; i++ {
		if v := rng.UniformInt(5, 2); v < 2 || v > 5 {
			t.Fatalf("UniformInt(5, 2) = %d, expected within [2, 5]", v)
		}
		if v := rng.UniformInt(4, 4); v != 4 {
			t.Fatalf("UniformInt(4, 4) = %d, expected 4", v)
		}
	}
}

func TestLCGDeterminism(t *testing.T) {
	a, b := NewRNG(12345), NewRNG(12345)
	for i := 0; i < 100; i++ {
		if va, vb := a.UniformInt(0, 999), b.UniformInt(0, 999); va != vb {
			t.Fatalf("step %d: %d != %d", i, va, vb)
		}
	}
}

func TestLCGZeroSeed(t *testing.T) {
	zero, one := NewRNG(0), NewRNG(1)
	if zero.UniformInt(0, 1<<30) != one.UniformInt(0, 1<<30) {
		t.Error("seed 0 should behave like seed 1")
	}
}
