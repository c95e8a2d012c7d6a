package interp

import "github.com/cwbudde/algo-spectral/spd/core"

// Mode identifies a two-point interpolation basis.
type Mode int

const (
	Linear Mode = iota
	Nearest
	Cubic
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Apply blends left and right at fraction t in [0,1] using mode m.
// Unknown modes fall back to Linear.
func Apply(m Mode, t, left, right float64) float64 {
	switch m {
	case Nearest:
		if t < 0.5 {
			return left
		}
		return right
	case Cubic:
		h00, h01 := hermiteWeights(t)
		return h00*left + h01*right
	default:
		return (1-t)*left + t*right
	}
}

// Apply4 is the hero-batch form of Apply; lane i equals
// Apply(m, t[i], left[i], right[i]).
func Apply4(m Mode, t, left, right core.Float4) core.Float4 {
	var out core.Float4
	for i := range out {
		out[i] = Apply(m, t[i], left[i], right[i])
	}
	return out
}

// hermiteWeights returns the h00/h01 Hermite basis values at t.
func hermiteWeights(t float64) (h00, h01 float64) {
	t2 := 2 * t
	oneSubT := 1 - t
	h00 = (1 + t2) * oneSubT * oneSubT
	h01 = t * t * (3 - t2)
	return h00, h01
}
