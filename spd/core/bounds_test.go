package core

import "testing"

func TestNewBounds1DSwapsReversedEnds(t *testing.T) {
	b := NewBounds1D(780, 380)
	if b.Lower != 380 || b.Upper != 780 {
		t.Fatalf("got [%v, %v), want [380, 780)", b.Lower, b.Upper)
	}
}

func TestBoundsSpanAndLerp(t *testing.T) {
	b := NewBounds1D(380, 780)
	if got := b.Span(); got != 400 {
		t.Fatalf("Span = %v, want 400", got)
	}
	if got := b.Lerp(0.5); got != 580 {
		t.Fatalf("Lerp(0.5) = %v, want 580", got)
	}
	if got := b.Sample(0); got != 380 {
		t.Fatalf("Sample(0) = %v, want 380", got)
	}
}

func TestBoundsContainsHalfOpen(t *testing.T) {
	b := NewBounds1D(380, 780)
	for _, tc := range []struct {
		x    float64
		want bool
	}{
		{380, true},
		{579.5, true},
		{780, false},
		{379.999, false},
	} {
		if got := b.Contains(tc.x); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestBoundsIntersectionUnion(t *testing.T) {
	a := NewBounds1D(380, 780)
	b := NewBounds1D(500, 900)

	i := a.Intersection(b)
	if i.Lower != 500 || i.Upper != 780 {
		t.Fatalf("Intersection = [%v, %v), want [500, 780)", i.Lower, i.Upper)
	}

	u := a.Union(b)
	if u.Lower != 380 || u.Upper != 900 {
		t.Fatalf("Union = [%v, %v), want [380, 900)", u.Lower, u.Upper)
	}
}
