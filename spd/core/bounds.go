package core

// Bounds1D is a half-open wavelength interval [Lower, Upper).
type Bounds1D struct {
	Lower float64
	Upper float64
}

// NewBounds1D builds an interval, swapping the ends if they arrive reversed.
func NewBounds1D(lower, upper float64) Bounds1D {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Bounds1D{Lower: lower, Upper: upper}
}

// Span returns the width of the interval.
func (b Bounds1D) Span() float64 {
	return b.Upper - b.Lower
}

// Lerp maps t in [0,1] onto the interval.
func (b Bounds1D) Lerp(t float64) float64 {
	return b.Lower + t*b.Span()
}

// Sample maps a uniform draw x in [0,1) onto the interval.
func (b Bounds1D) Sample(x float64) float64 {
	return b.Lower + x*b.Span()
}

// Contains reports whether value lies in the half-open interval.
func (b Bounds1D) Contains(value float64) bool {
	return b.Lower <= value && value < b.Upper
}

// Intersection returns the overlap of b and other.
func (b Bounds1D) Intersection(other Bounds1D) Bounds1D {
	lower := b.Lower
	if other.Lower > lower {
		lower = other.Lower
	}
	upper := b.Upper
	if other.Upper < upper {
		upper = other.Upper
	}
	return Bounds1D{Lower: lower, Upper: upper}
}

// Union returns the smallest interval covering both b and other.
func (b Bounds1D) Union(other Bounds1D) Bounds1D {
	lower := b.Lower
	if other.Lower < lower {
		lower = other.Lower
	}
	upper := b.Upper
	if other.Upper > upper {
		upper = other.Upper
	}
	return Bounds1D{Lower: lower, Upper: upper}
}
