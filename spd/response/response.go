// Package response provides the physical response functions consumed by
// spectral curve evaluation: asymmetric Gaussian bumps, Planck blackbody
// radiance, and the CIE color-matching fits.
//
// All constants are process-wide immutable data.
package response

import (
	"math"

	"github.com/cwbudde/algo-spectral/spd/core"
)

// Planck's-law constants, with wavelength expressed in meters.
const (
	// HCC2 is 2*h*c*c.
	HCC2 = 1.1910429723971884140794892e-29
	// HKC is h*c/kB.
	HKC = 1.438777085924334052222404423195819240925e-2
	// WienDisplacement is Wien's displacement constant b in m*K.
	WienDisplacement = 2.8977721e-3
)

// Visible wavelength ranges in nanometers.
var (
	BoundedVisibleRange  = core.NewBounds1D(380, 780)
	ExtendedVisibleRange = core.NewBounds1D(370, 790)
)

// Gaussian evaluates an asymmetric Gaussian bump: amplitude alpha centered
// at mu, with sigma1 applied below the center and sigma2 above it.
func Gaussian(x, alpha, mu, sigma1, sigma2 float64) float64 {
	sigma := sigma2
	if x < mu {
		sigma = sigma1
	}
	d := (x - mu) / sigma
	return alpha * math.Exp(-d*d/2)
}

// Gaussian4 is the hero-batch form of Gaussian.
func Gaussian4(x core.Float4, alpha, mu, sigma1, sigma2 float64) core.Float4 {
	var out core.Float4
	for i := range x {
		out[i] = Gaussian(x[i], alpha, mu, sigma1, sigma2)
	}
	return out
}

// Blackbody returns Planck spectral radiance for the given temperature in
// kelvin and wavelength in nanometers.
func Blackbody(temperature, lambda float64) float64 {
	l := lambda * 1e-9
	return math.Pow(l, -5) * HCC2 / (math.Exp(HKC/(l*temperature)) - 1)
}

// Blackbody4 is the hero-batch form of Blackbody.
func Blackbody4(temperature float64, lambda core.Float4) core.Float4 {
	var out core.Float4
	for i := range lambda {
		out[i] = Blackbody(temperature, lambda[i])
	}
	return out
}

// PeakWavelength returns the wavelength in nanometers at which a blackbody
// of the given temperature radiates most strongly (Wien's law).
func PeakWavelength(temperature float64) float64 {
	return WienDisplacement / (temperature * 1e-9)
}

// CIE color-matching functions, fit as sums of asymmetric Gaussians.
// The argument is in angstroms (10 angstroms per nanometer).

func XBar(angstroms float64) float64 {
	return Gaussian(angstroms, 1.056, 5998, 379, 310) +
		Gaussian(angstroms, 0.362, 4420, 160, 267) +
		Gaussian(angstroms, -0.065, 5011, 204, 262)
}

func YBar(angstroms float64) float64 {
	return Gaussian(angstroms, 0.821, 5688, 469, 405) +
		Gaussian(angstroms, 0.286, 5309, 163, 311)
}

func ZBar(angstroms float64) float64 {
	return Gaussian(angstroms, 1.217, 4370, 118, 360) +
		Gaussian(angstroms, 0.681, 4590, 260, 138)
}

func XBar4(angstroms core.Float4) core.Float4 {
	return Gaussian4(angstroms, 1.056, 5998, 379, 310).
		Add(Gaussian4(angstroms, 0.362, 4420, 160, 267)).
		Add(Gaussian4(angstroms, -0.065, 5011, 204, 262))
}

func YBar4(angstroms core.Float4) core.Float4 {
	return Gaussian4(angstroms, 0.821, 5688, 469, 405).
		Add(Gaussian4(angstroms, 0.286, 5309, 163, 311))
}

func ZBar4(angstroms core.Float4) core.Float4 {
	return Gaussian4(angstroms, 1.217, 4370, 118, 360).
		Add(Gaussian4(angstroms, 0.681, 4590, 260, 138))
}
