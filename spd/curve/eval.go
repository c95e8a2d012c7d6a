package curve

import (
	"sort"

	"github.com/cwbudde/algo-spectral/spd/interp"
	"github.com/cwbudde/algo-spectral/spd/response"
)

// clampCeiling caps reflectance evaluation strictly below 1 so a
// reflecting surface can never add energy.
const clampCeiling = 1.0 - 1e-6

// Evaluate returns the unclamped power of the curve at the given
// wavelength in nanometers. The result is never negative; pathological
// inputs to the analytic variants may still produce non-finite values,
// which callers must screen themselves.
func (c Curve) Evaluate(lambda float64) float64 {
	v := c.evaluateRaw(lambda)
	if v < 0 {
		return 0
	}
	return v
}

// EvaluateClamped returns the curve value clamped into [0, 1) for use as
// a reflectance.
func (c Curve) EvaluateClamped(lambda float64) float64 {
	v := c.Evaluate(lambda)
	if v > clampCeiling {
		return clampCeiling
	}
	return v
}

func (c Curve) evaluateRaw(lambda float64) float64 {
	switch c.kind {
	case kindConst:
		return c.value

	case kindLinear:
		return c.evaluateLinear(lambda)

	case kindTabulated:
		return c.evaluateTabulated(lambda)

	case kindPolynomial:
		rx := (lambda - c.xOffset) / c.xScale
		val := 0.0
		p := rx
		for _, coef := range c.coeffs {
			val += coef * p
			p *= rx
		}
		return c.yOffset + c.yScale*val

	case kindCauchy:
		return c.a + c.b/(lambda*lambda)

	case kindExponential:
		val := 0.0
		for _, g := range c.bumps {
			val += response.Gaussian(lambda, g.Amplitude, g.Center, g.SigmaLower, g.SigmaUpper)
		}
		return val

	case kindInverseExponential:
		val := 1.0
		for _, g := range c.bumps {
			val -= response.Gaussian(lambda, g.Amplitude, g.Center, g.SigmaLower, g.SigmaUpper)
		}
		return val

	case kindBlackbody:
		if c.boost == 0 {
			return response.Blackbody(c.temperature, lambda)
		}
		peak := response.Blackbody(c.temperature, response.PeakWavelength(c.temperature))
		return c.boost * response.Blackbody(c.temperature, lambda) / peak

	case kindMachine:
		val := c.value
		for _, stage := range c.stages {
			eval := stage.Curve.Evaluate(lambda)
			switch stage.Op {
			case OpMul:
				val *= eval
			default:
				val += eval
			}
		}
		return val

	default:
		return 0
	}
}

// evaluateLinear looks up the equal-width bin containing lambda and
// interpolates between the bin value and its right neighbor. Wavelengths
// outside the bounds return the nearest edge sample.
func (c Curve) evaluateLinear(lambda float64) float64 {
	n := len(c.signal)
	if lambda < c.bounds.Lower {
		return c.signal[0]
	}
	if lambda >= c.bounds.Upper {
		return c.signal[n-1]
	}

	binWidth := c.bounds.Span() / float64(n)
	index := int((lambda - c.bounds.Lower) / binWidth)
	if index >= n {
		index = n - 1
	}
	if index+1 >= n {
		// Last bin has no right neighbor.
		return c.signal[index]
	}

	t := (lambda - (c.bounds.Lower + float64(index)*binWidth)) / binWidth
	return interp.Apply(c.mode, t, c.signal[index], c.signal[index+1])
}

// evaluateTabulated binary-searches the sorted points. Wavelengths below
// the first or above the last x return that endpoint's y verbatim.
func (c Curve) evaluateTabulated(lambda float64) float64 {
	index := sort.Search(len(c.table), func(i int) bool {
		return c.table[i].X >= lambda
	})
	if index == 0 {
		return c.table[0].Y
	}
	if index == len(c.table) {
		return c.table[index-1].Y
	}

	left, right := c.table[index-1], c.table[index]
	t := (lambda - left.X) / (right.X - left.X)
	return interp.Apply(c.mode, t, left.Y, right.Y)
}
