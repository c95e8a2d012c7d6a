// Package curve represents 1D spectral power and reflectance
// distributions over wavelength, and turns them into cumulative
// distributions for importance sampling.
//
// A [Curve] is a closed union of evaluation strategies: constant,
// binned ([NewLinear]) and tabulated ([NewTabulated]) signals, a
// remapped polynomial, Cauchy dispersion, sums of asymmetric Gaussians,
// Planck blackbody radiance, and a composing fold ([NewMachine]).
// Curves are built once, never mutated, and safe to share across
// goroutines.
//
// [Curve.ToCDF] derives a [Distribution], whose SamplePowerAndPDF
// inverts the CDF to importance-sample a wavelength, optionally
// restricted to a narrower range than the CDF was built over. Hero
// variants evaluate and sample four correlated wavelengths per draw.
//
// Out-of-domain evaluation never fails: binned and tabulated curves
// return their edge samples, the analytic forms are defined for all
// reachable reals. Non-finite results at pathological inputs are the
// caller's to screen.
package curve
