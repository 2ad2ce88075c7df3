package simulate

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSwitchingBernoulli(t *testing.T) {
	out := SwitchingBernoulli(40, 3, 10, []float64{0.1, 0.9}, 5)

	r, c := out.Dims()
	if r != 40 || c != 3 {
		t.Fatalf("dims = %dx%d, want 40x3", r, c)
	}
	for _, x := range out.RawMatrix().Data {
		if x != 0 && x != 1 {
			t.Fatalf("outcome %v is not binary", x)
		}
	}

	again := SwitchingBernoulli(40, 3, 10, []float64{0.1, 0.9}, 5)
	if !mat.Equal(out, again) {
		t.Error("same seed must reproduce the sequence")
	}
}

func TestVolatileRandomWalk(t *testing.T) {
	a := VolatileRandomWalk(100, 2, 0.1, 1, 0.5, 25, 9)

	r, c := a.Dims()
	if r != 100 || c != 2 {
		t.Fatalf("dims = %dx%d, want 100x2", r, c)
	}

	b := VolatileRandomWalk(100, 2, 0.1, 1, 0.5, 25, 9)
	if !mat.Equal(a, b) {
		t.Error("same seed must reproduce the sequence")
	}
	other := VolatileRandomWalk(100, 2, 0.1, 1, 0.5, 25, 10)
	if mat.Equal(a, other) {
		t.Error("different seeds should diverge")
	}
}

// Each cue draws from its own stream, so widening the matrix must not
// perturb the existing columns.
func TestCueStreamsIndependent(t *testing.T) {
	wide := SwitchingBernoulli(60, 3, 20, []float64{0.3, 0.7}, 21)
	narrow := SwitchingBernoulli(60, 2, 20, []float64{0.3, 0.7}, 21)

	for cue := 0; cue < 2; cue++ {
		for tr := 0; tr < 60; tr++ {
			if wide.At(tr, cue) != narrow.At(tr, cue) {
				t.Fatalf("cue %d trial %d changed when a column was added", cue, tr)
			}
		}
	}
}
