package curve

import (
	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/response"
)

// EvaluateHero evaluates four hero wavelengths at once. Lane i always
// equals Evaluate(lambda[i]) up to rounding; the batch form only saves
// dispatch and loop overhead, it is not a different algorithm.
func (c Curve) EvaluateHero(lambda core.Float4) core.Float4 {
	return c.evaluateHeroRaw(lambda).Max(0)
}

// EvaluateClampedHero is the hero-batch form of EvaluateClamped.
func (c Curve) EvaluateClampedHero(lambda core.Float4) core.Float4 {
	return c.evaluateHeroRaw(lambda).Clamp(0, clampCeiling)
}

func (c Curve) evaluateHeroRaw(lambda core.Float4) core.Float4 {
	switch c.kind {
	case kindConst:
		return core.Splat(c.value)

	case kindPolynomial:
		rx := lambda.AddScalar(-c.xOffset).Scale(1 / c.xScale)
		val := core.Float4{}
		p := rx
		for _, coef := range c.coeffs {
			val = val.Add(p.Scale(coef))
			p = p.Mul(rx)
		}
		return val.Scale(c.yScale).AddScalar(c.yOffset)

	case kindCauchy:
		return core.Splat(c.b).Div(lambda.Mul(lambda)).AddScalar(c.a)

	case kindExponential:
		val := core.Float4{}
		for _, g := range c.bumps {
			val = val.Add(response.Gaussian4(lambda, g.Amplitude, g.Center, g.SigmaLower, g.SigmaUpper))
		}
		return val

	case kindInverseExponential:
		val := core.Float4{}
		for _, g := range c.bumps {
			val = val.Add(response.Gaussian4(lambda, g.Amplitude, g.Center, g.SigmaLower, g.SigmaUpper))
		}
		return val.SubFrom(1)

	case kindBlackbody:
		bbd := response.Blackbody4(c.temperature, lambda)
		if c.boost == 0 {
			return bbd
		}
		peak := response.Blackbody(c.temperature, response.PeakWavelength(c.temperature))
		return bbd.Scale(c.boost / peak)

	default:
		// Linear, Tabulated and Machine need per-lane lookups anyway.
		var out core.Float4
		for i := range lambda {
			out[i] = c.evaluateRaw(lambda[i])
		}
		return out
	}
}
