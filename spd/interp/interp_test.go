package interp

import (
	"testing"

	"github.com/cwbudde/algo-spectral/spd/core"
)

func TestApplyLinear(t *testing.T) {
	if got := Apply(Linear, 0.25, 2, 4); got != 2.5 {
		t.Fatalf("got %v, want 2.5", got)
	}
}

func TestApplyNearest(t *testing.T) {
	if got := Apply(Nearest, 0.49, 1, 9); got != 1 {
		t.Fatalf("t<0.5 got %v, want left", got)
	}
	if got := Apply(Nearest, 0.5, 1, 9); got != 9 {
		t.Fatalf("t>=0.5 got %v, want right", got)
	}
}

func TestApplyCubicEndpoints(t *testing.T) {
	// Hermite basis must hit the bin values exactly at t=0 and t=1.
	if got := Apply(Cubic, 0, 3, 7); got != 3 {
		t.Fatalf("t=0 got %v, want 3", got)
	}
	if got := Apply(Cubic, 1, 3, 7); got != 7 {
		t.Fatalf("t=1 got %v, want 7", got)
	}
	// Midpoint: h00(0.5) = h01(0.5) = 0.5.
	if got := Apply(Cubic, 0.5, 3, 7); got != 5 {
		t.Fatalf("t=0.5 got %v, want 5", got)
	}
}

func TestApply4MatchesScalar(t *testing.T) {
	ts := core.Float4{0, 0.25, 0.5, 1}
	left := core.Float4{1, 1, 1, 1}
	right := core.Float4{2, 4, 8, 16}
	for _, m := range []Mode{Linear, Nearest, Cubic} {
		got := Apply4(m, ts, left, right)
		for i := range got {
			want := Apply(m, ts[i], left[i], right[i])
			if got[i] != want {
				t.Fatalf("mode %v lane %d: got %v, want %v", m, i, got[i], want)
			}
		}
	}
}
