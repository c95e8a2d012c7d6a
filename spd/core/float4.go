package core

import "math"

// Float4 is a 4-wide batch of values, one per hero wavelength lane.
// All operations are lane-wise and produce the same result as four
// independent scalar evaluations.
type Float4 [4]float64

// Value constrains types that spectral quantities are generic over:
// a single float or a hero batch.
type Value interface {
	float64 | Float4
}

// Splat returns a Float4 with v in every lane.
func Splat(v float64) Float4 {
	return Float4{v, v, v, v}
}

// Add returns a + b.
func (a Float4) Add(b Float4) Float4 {
	return Float4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b.
func (a Float4) Sub(b Float4) Float4 {
	return Float4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the lane-wise product a * b.
func (a Float4) Mul(b Float4) Float4 {
	return Float4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns the lane-wise quotient a / b.
func (a Float4) Div(b Float4) Float4 {
	return Float4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale returns a * s.
func (a Float4) Scale(s float64) Float4 {
	return Float4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// AddScalar returns a + s in every lane.
func (a Float4) AddScalar(s float64) Float4 {
	return Float4{a[0] + s, a[1] + s, a[2] + s, a[3] + s}
}

// SubFrom returns s - a in every lane.
func (a Float4) SubFrom(s float64) Float4 {
	return Float4{s - a[0], s - a[1], s - a[2], s - a[3]}
}

// Max returns the lane-wise maximum of a and s.
func (a Float4) Max(s float64) Float4 {
	return Float4{math.Max(a[0], s), math.Max(a[1], s), math.Max(a[2], s), math.Max(a[3], s)}
}

// Min returns the lane-wise minimum of a and s.
func (a Float4) Min(s float64) Float4 {
	return Float4{math.Min(a[0], s), math.Min(a[1], s), math.Min(a[2], s), math.Min(a[3], s)}
}

// Abs returns lane-wise absolute values.
func (a Float4) Abs() Float4 {
	return Float4{math.Abs(a[0]), math.Abs(a[1]), math.Abs(a[2]), math.Abs(a[3])}
}

// Sum returns the sum of all four lanes.
func (a Float4) Sum() float64 {
	return a[0] + a[1] + a[2] + a[3]
}

// Exp returns lane-wise e**a.
func (a Float4) Exp() Float4 {
	return Float4{math.Exp(a[0]), math.Exp(a[1]), math.Exp(a[2]), math.Exp(a[3])}
}

// Clamp limits every lane to [lo, hi].
func (a Float4) Clamp(lo, hi float64) Float4 {
	return Float4{Clamp(a[0], lo, hi), Clamp(a[1], lo, hi), Clamp(a[2], lo, hi), Clamp(a[3], lo, hi)}
}
