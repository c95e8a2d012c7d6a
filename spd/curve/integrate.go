package curve

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/response"
)

// XYZ is a CIE tristimulus value. Conversion to and from RGB spaces is
// the color module's concern.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Add returns the component-wise sum.
func (a XYZ) Add(b XYZ) XYZ {
	return XYZ{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Scale returns the component-wise product with s.
func (a XYZ) Scale(s float64) XYZ {
	return XYZ{X: a.X * s, Y: a.Y * s, Z: a.Z * s}
}

// Integral approximates the integral of the curve over bounds with the
// trapezoidal rule over sampleCount intervals. This is deliberately a
// different scheme from the left-rule sum used by ToCDF; the two are
// not interchangeable.
func (c Curve) Integral(bounds core.Bounds1D, sampleCount int, clamped bool) float64 {
	if sampleCount < 1 {
		sampleCount = 1
	}
	eval := c.Evaluate
	if clamped {
		eval = c.EvaluateClamped
	}

	h := bounds.Span() / float64(sampleCount)
	sum := (eval(bounds.Lower) + eval(bounds.Upper)) / 2
	for i := 1; i < sampleCount; i++ {
		sum += eval(bounds.Lower + float64(i)*h)
	}
	return sum / float64(sampleCount) * bounds.Span()
}

// ToXYZ integrates the curve against the CIE color-matching fits with a
// left-rule sum of the given step size, producing a tristimulus value.
func (c Curve) ToXYZ(bounds core.Bounds1D, stepSize float64, clamped bool) XYZ {
	if stepSize <= 0 {
		return XYZ{}
	}
	iterations := int(bounds.Span() / stepSize)
	if iterations <= 0 {
		return XYZ{}
	}

	eval := c.Evaluate
	if clamped {
		eval = c.EvaluateClamped
	}

	vals := make([]float64, iterations)
	xs := make([]float64, iterations)
	ys := make([]float64, iterations)
	zs := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		lambda := bounds.Lower + float64(i)*stepSize
		angstroms := lambda * 10
		vals[i] = eval(lambda)
		xs[i] = response.XBar(angstroms)
		ys[i] = response.YBar(angstroms)
		zs[i] = response.ZBar(angstroms)
	}

	vecmath.MulBlockInPlace(xs, vals)
	vecmath.MulBlockInPlace(ys, vals)
	vecmath.MulBlockInPlace(zs, vals)

	return XYZ{
		X: blockSum(xs) * stepSize,
		Y: blockSum(ys) * stepSize,
		Z: blockSum(zs) * stepSize,
	}
}

// XYZFromSingle converts one sampled wavelength into its tristimulus
// contribution.
func XYZFromSingle(sw SingleWavelength) XYZ {
	angstroms := sw.Lambda * 10
	return XYZ{
		X: sw.Energy * response.XBar(angstroms),
		Y: sw.Energy * response.YBar(angstroms),
		Z: sw.Energy * response.ZBar(angstroms),
	}
}

// XYZFromHero converts a hero batch into its summed tristimulus
// contribution.
func XYZFromHero(hw HeroWavelength) XYZ {
	angstroms := hw.Lambda.Scale(10)
	return XYZ{
		X: response.XBar4(angstroms).Mul(hw.Energy).Sum(),
		Y: response.YBar4(angstroms).Mul(hw.Energy).Sum(),
		Z: response.ZBar4(angstroms).Mul(hw.Energy).Sum(),
	}
}

func blockSum(xs []float64) float64 {
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum
}
