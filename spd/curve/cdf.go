package curve

import (
	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/interp"
)

// Distribution pairs a power curve with its cumulative distribution for
// importance sampling. The CDF curve is normalized to end exactly at 1;
// PDFIntegral keeps the pre-normalization total so sampled power can be
// rescaled back into a density.
//
// A Distribution is derived once via [Curve.ToCDF] and is read-only
// afterwards, so it can be sampled from any number of goroutines.
type Distribution struct {
	PDF         Curve
	CDF         Curve
	PDFIntegral float64
}

// ToCDF derives the cumulative distribution of the curve.
//
// A Linear source converts exactly: a left-rule running sum of
// signal[i]*binWidth with a leading zero and a trailing entry beyond the
// last bin, reusing the source's own bounds and interpolation mode (the
// bounds argument is ignored). Every other variant is sampled at
// resolution equally spaced points across bounds and accumulated the
// same way, producing a Linear CDF with Cubic interpolation.
//
// Accuracy of the sampled path is resolution-bound; there is no adaptive
// refinement. A curve whose integral over the chosen domain is not
// strictly positive cannot be sampled and returns ErrZeroIntegral.
func (c Curve) ToCDF(bounds core.Bounds1D, resolution int) (*Distribution, error) {
	if c.kind == kindLinear {
		binWidth := c.bounds.Span() / float64(len(c.signal))
		cdfSignal := make([]float64, len(c.signal)+1)
		sum := 0.0
		for i, v := range c.signal {
			sum += v * binWidth
			cdfSignal[i+1] = sum
		}
		return c.newDistribution(cdfSignal, sum, c.bounds, c.mode)
	}

	if resolution < 2 {
		return nil, ErrResolution
	}

	step := bounds.Span() / float64(resolution)
	cdfSignal := make([]float64, resolution+1)
	sum := 0.0
	for i := 0; i < resolution; i++ {
		sum += c.Evaluate(bounds.Lower+float64(i)*step) * step
		cdfSignal[i+1] = sum
	}
	return c.newDistribution(cdfSignal, sum, bounds, interp.Cubic)
}

func (c Curve) newDistribution(cdfSignal []float64, sum float64, bounds core.Bounds1D, mode interp.Mode) (*Distribution, error) {
	// NaN sums fail here too.
	if !(sum > 0) {
		return nil, ErrZeroIntegral
	}
	inv := 1 / sum
	for i := range cdfSignal {
		cdfSignal[i] *= inv
	}
	// Force the invariant cdf(upper) == 1 against accumulated rounding.
	cdfSignal[len(cdfSignal)-1] = 1

	// The cumulative entries sit on the pdf's bin edges, so the cdf grid
	// carries one bin more than the pdf domain: entry i lands exactly at
	// lower + i*binWidth, and evaluating at the pdf's upper bound hits
	// the trailing entry.
	binWidth := bounds.Span() / float64(len(cdfSignal)-1)
	extended := core.Bounds1D{Lower: bounds.Lower, Upper: bounds.Upper + binWidth}

	return &Distribution{
		PDF:         c,
		CDF:         Curve{kind: kindLinear, mode: mode, bounds: extended, signal: cdfSignal},
		PDFIntegral: sum,
	}, nil
}

// Evaluate returns the power of the underlying pdf curve.
func (d *Distribution) Evaluate(lambda float64) float64 {
	return d.PDF.Evaluate(lambda)
}

// EvaluateClamped returns the clamped reflectance of the underlying pdf
// curve.
func (d *Distribution) EvaluateClamped(lambda float64) float64 {
	return d.PDF.EvaluateClamped(lambda)
}

// EvaluateHero evaluates the underlying pdf curve four lanes at once.
func (d *Distribution) EvaluateHero(lambda core.Float4) core.Float4 {
	return d.PDF.EvaluateHero(lambda)
}

// Integral delegates to the underlying pdf curve.
func (d *Distribution) Integral(bounds core.Bounds1D, sampleCount int, clamped bool) float64 {
	return d.PDF.Integral(bounds, sampleCount, clamped)
}

// ToXYZ delegates to the underlying pdf curve.
func (d *Distribution) ToXYZ(bounds core.Bounds1D, stepSize float64, clamped bool) XYZ {
	return d.PDF.ToXYZ(bounds, stepSize, clamped)
}
