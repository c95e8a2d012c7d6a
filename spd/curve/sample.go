package curve

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/density"
	"github.com/cwbudde/algo-spectral/spd/interp"
)

// SamplePowerAndPDF draws a wavelength uniformly from the range. With no
// CDF there is nothing to importance-sample against, so the density is
// the uniform 1/span.
func (c Curve) SamplePowerAndPDF(wavelengthRange core.Bounds1D, u float64) (SingleWavelength, density.PDF[density.Uniform01]) {
	sw := NewSingleFromRange(u, wavelengthRange)
	sw.Energy = c.Evaluate(sw.Lambda)
	return sw, density.New[density.Uniform01](1 / wavelengthRange.Span())
}

// SamplePowerAndPDFHero draws four hero wavelengths uniformly from the
// range.
func (c Curve) SamplePowerAndPDFHero(wavelengthRange core.Bounds1D, u float64) (HeroWavelength, density.PDF4[density.Uniform01]) {
	hw := NewHeroFromRange(u, wavelengthRange)
	hw.Energy = c.EvaluateHero(hw.Lambda)
	return hw, density.Splat4[density.Uniform01](1 / wavelengthRange.Span())
}

// SamplePowerAndPDF importance-samples a wavelength by inverting the
// CDF, restricted to the intersection of the CDF's own domain and the
// requested range. The returned energy is the pdf curve's power at the
// sampled wavelength and the returned density is power/PDFIntegral.
//
// Sampling a distribution whose integral is not positive is a
// precondition violation and panics, as does a non-monotone CDF signal.
func (d *Distribution) SamplePowerAndPDF(wavelengthRange core.Bounds1D, u float64) (SingleWavelength, density.PDF[density.Uniform01]) {
	if !(d.PDFIntegral > 0) {
		panic("curve: sampling a distribution with non-positive pdf integral")
	}

	// The fallback for CDF shapes ToCDF never produces: sample the pdf
	// curve uniformly instead.
	if d.CDF.kind != kindLinear {
		return d.PDF.SamplePowerAndPDF(wavelengthRange, u)
	}

	// Constant sources are uniform by construction; skip the search.
	if d.PDF.kind == kindConst {
		sw := NewSingleFromRange(u, wavelengthRange)
		sw.Energy = d.PDF.Evaluate(sw.Lambda)
		return sw, density.New[density.Uniform01](sw.Energy / d.PDFIntegral)
	}

	bounds := d.CDF.bounds
	restricted := bounds.Intersection(wavelengthRange)

	// Remap the draw into the CDF values of the restricted range, so a
	// CDF built over a wider domain still samples the sub-range
	// correctly.
	lowerCDF := d.CDF.Evaluate(restricted.Lower)
	upperCDF := d.CDF.Evaluate(restricted.Upper)
	u = lowerCDF + u*(upperCDF-lowerCDF)

	signal := d.CDF.signal
	index := sort.SearchFloat64s(signal, u)

	var lambda float64
	if index == 0 {
		// No interpolation below the first sample.
		lambda = bounds.Lower
	} else {
		if index >= len(signal) {
			index = len(signal) - 1
		}
		n := float64(len(signal))
		left := bounds.Lower + (float64(index)-1)*bounds.Span()/n
		right := bounds.Lower + float64(index)*bounds.Span()/n

		v0, v1 := signal[index-1], signal[index]
		t := 0.0
		if v0 != v1 {
			t = (u - v0) / (v1 - v0)
		}
		if !(t >= 0 && t <= 1) {
			panic(fmt.Sprintf("curve: inverse-cdf fraction %v outside [0,1] (u=%v v0=%v v1=%v); cdf signal is not monotone", t, u, v0, v1))
		}

		// Linear inverts exactly; Nearest and Cubic reuse the forward
		// basis weights against the inverse map as an approximation.
		lambda = core.Clamp(interp.Apply(d.CDF.mode, t, left, right), bounds.Lower, bounds.Upper)
	}

	power := d.PDF.Evaluate(lambda)
	return SingleWavelength{Lambda: lambda, Energy: power},
		density.New[density.Uniform01](power / d.PDFIntegral)
}

// SamplePowerAndPDFHero importance-samples the hero lane via
// SamplePowerAndPDF, derives three more lanes at the hero stride and
// re-evaluates their power from the pdf curve. All four lanes report the
// hero lane's density; per-lane densities are a known open question and
// the broadcast is kept deliberately.
func (d *Distribution) SamplePowerAndPDFHero(wavelengthRange core.Bounds1D, u float64) (HeroWavelength, density.PDF4[density.Uniform01]) {
	sw, pdf := d.SamplePowerAndPDF(wavelengthRange, u)

	t := (sw.Lambda - wavelengthRange.Lower) / wavelengthRange.Span()
	hw := NewHeroFromRange(t, wavelengthRange)
	hw.Energy[0] = sw.Energy
	for i := 1; i < 4; i++ {
		hw.Energy[i] = d.PDF.Evaluate(hw.Lambda[i])
	}

	return hw, density.Splat4[density.Uniform01](pdf.Value())
}
