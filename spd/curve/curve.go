package curve

import (
	"errors"

	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/interp"
)

// Errors returned by curve constructors and CDF construction.
var (
	ErrEmptySignal      = errors.New("curve: signal must not be empty")
	ErrUnsortedTable    = errors.New("curve: tabulated points must be sorted by x")
	ErrNonPositiveScale = errors.New("curve: polynomial x scale must be positive")
	ErrZeroIntegral     = errors.New("curve: pdf integral must be positive")
	ErrResolution       = errors.New("curve: cdf resolution must be at least 2")
)

// Op is a Machine fold operator.
type Op int

const (
	OpAdd Op = iota
	OpMul
)

// Point is one (x, y) pair of a tabulated curve.
type Point struct {
	X float64
	Y float64
}

// GaussianBump describes one asymmetric Gaussian term of an Exponential
// curve: amplitude centered at Center, with SigmaLower applied below the
// center and SigmaUpper above it.
type GaussianBump struct {
	Center     float64
	SigmaLower float64
	SigmaUpper float64
	Amplitude  float64
}

// MachineStage is one step of a Machine fold: apply Op between the
// running value and the stage curve's evaluation.
type MachineStage struct {
	Op    Op
	Curve Curve
}

type curveKind uint8

const (
	kindConst curveKind = iota
	kindLinear
	kindTabulated
	kindPolynomial
	kindCauchy
	kindExponential
	kindInverseExponential
	kindBlackbody
	kindMachine
)

// Curve is a 1D spectral function over wavelength in nanometers. It is a
// closed union of the variants below, dispatched by a kind discriminant
// so the sampling hot path stays allocation-free. A Curve is immutable
// once built and owns its signal data; it can be shared freely across
// goroutines.
type Curve struct {
	kind   curveKind
	mode   interp.Mode
	bounds core.Bounds1D

	signal []float64      // Linear
	table  []Point        // Tabulated
	bumps  []GaussianBump // Exponential, InverseExponential
	stages []MachineStage // Machine

	coeffs                           [8]float64 // Polynomial
	xOffset, xScale, yOffset, yScale float64    // Polynomial domain/range remap

	a, b        float64 // Cauchy
	temperature float64 // Blackbody
	boost       float64 // Blackbody
	value       float64 // Const value, Machine seed
}

// Const returns a constant curve.
func Const(v float64) Curve {
	return Curve{kind: kindConst, value: v}
}

// NewLinear builds a curve from signal values spread over equal-width
// bins across bounds. The signal is copied.
func NewLinear(signal []float64, bounds core.Bounds1D, mode interp.Mode) (Curve, error) {
	if len(signal) == 0 {
		return Curve{}, ErrEmptySignal
	}
	s := make([]float64, len(signal))
	copy(s, signal)
	return Curve{kind: kindLinear, mode: mode, bounds: bounds, signal: s}, nil
}

// NewTabulated builds a curve from explicit (x, y) pairs, which must be
// sorted by x. The points are copied.
func NewTabulated(points []Point, mode interp.Mode) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, ErrEmptySignal
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return Curve{}, ErrUnsortedTable
		}
	}
	p := make([]Point, len(points))
	copy(p, points)
	return Curve{kind: kindTabulated, mode: mode, table: p}, nil
}

// NewPolynomial builds the curve
//
//	y(x) = max(0, yOffset + yScale * sum(coefficients[i] * rx^(i+1)))
//
// with rx = (x - xOffset) / xScale. xScale must be positive.
func NewPolynomial(xOffset, xScale, yOffset, yScale float64, coefficients [8]float64) (Curve, error) {
	if xScale <= 0 {
		return Curve{}, ErrNonPositiveScale
	}
	return Curve{
		kind:    kindPolynomial,
		coeffs:  coefficients,
		xOffset: xOffset,
		xScale:  xScale,
		yOffset: yOffset,
		yScale:  yScale,
	}, nil
}

// NewCauchy returns the dispersion curve a + b/x^2.
func NewCauchy(a, b float64) Curve {
	return Curve{kind: kindCauchy, a: a, b: b}
}

// NewExponential returns a sum of asymmetric Gaussian bumps. The bump
// list is copied.
func NewExponential(bumps []GaussianBump) Curve {
	s := make([]GaussianBump, len(bumps))
	copy(s, bumps)
	return Curve{kind: kindExponential, bumps: s}
}

// NewInverseExponential returns 1 minus a sum of asymmetric Gaussian
// bumps, floored at zero. The bump list is copied.
func NewInverseExponential(bumps []GaussianBump) Curve {
	s := make([]GaussianBump, len(bumps))
	copy(s, bumps)
	return Curve{kind: kindInverseExponential, bumps: s}
}

// NewBlackbody returns a Planck radiance curve for the given temperature
// in kelvin. A boost of zero keeps raw radiance; any other value
// renormalizes the curve so its Wien peak equals boost.
func NewBlackbody(temperature, boost float64) Curve {
	return Curve{kind: kindBlackbody, temperature: temperature, boost: boost}
}

// NewMachine returns a fold expression over sub-curves: starting from
// seed, each stage adds or multiplies its curve's evaluation, and the
// final value is floored at zero. The stage list is copied.
func NewMachine(seed float64, stages []MachineStage) Curve {
	s := make([]MachineStage, len(stages))
	copy(s, stages)
	return Curve{kind: kindMachine, value: seed, stages: s}
}

// YBar returns the CIE luminosity fit as an Exponential curve over
// wavelength in nanometers.
func YBar() Curve {
	return NewExponential([]GaussianBump{
		{Center: 568.0, SigmaLower: 46.9, SigmaUpper: 40.5, Amplitude: 0.821},
		{Center: 530.9, SigmaLower: 16.3, SigmaUpper: 31.1, Amplitude: 0.286},
	})
}

// Bounds returns the domain of a Linear curve, or the zero interval for
// every other variant (which are defined for all reachable reals).
func (c Curve) Bounds() core.Bounds1D {
	return c.bounds
}

// Mode returns the interpolation mode of a Linear or Tabulated curve.
func (c Curve) Mode() interp.Mode {
	return c.mode
}
