package curve

import "github.com/cwbudde/algo-spectral/spd/core"

// WavelengthEnergy pairs a sampled wavelength with the power carried at
// it, either as single scalars or as hero batches.
type WavelengthEnergy[T core.Value] struct {
	Lambda T
	Energy T
}

// SingleWavelength is a scalar wavelength/energy pair.
type SingleWavelength = WavelengthEnergy[float64]

// HeroWavelength is a batch of four correlated wavelengths derived from
// one uniform draw, with per-lane energies.
type HeroWavelength = WavelengthEnergy[core.Float4]

// NewSingleFromRange places a uniform draw x in [0,1) into bounds, with
// zero energy.
func NewSingleFromRange(x float64, bounds core.Bounds1D) SingleWavelength {
	return SingleWavelength{Lambda: bounds.Sample(x)}
}

// NewHeroFromRange derives four wavelengths from one uniform draw: the
// hero wavelength plus three more offset by a quarter of the span each,
// wrapped back into bounds when they pass the upper end.
func NewHeroFromRange(x float64, bounds core.Bounds1D) HeroWavelength {
	span := bounds.Span()
	hero := x * span
	delta := span / 4

	var lambda core.Float4
	for i := range lambda {
		l := bounds.Lower + hero + float64(i)*delta
		if l > bounds.Upper {
			l -= span
		}
		lambda[i] = l
	}
	return HeroWavelength{Lambda: lambda}
}
