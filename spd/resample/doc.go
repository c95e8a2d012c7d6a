// Package resample prepares measured spectral data for sampling.
//
// Tabulated spectra usually arrive on irregular wavelength grids;
// importance sampling wants uniform bins so the discrete CDF path stays
// exact. ToLinear re-bins a tabulated curve onto n uniform bins, and
// SmoothGaussian suppresses measurement noise with an FFT-domain
// Gaussian kernel before the data is turned into a distribution.
//
// Common workflow:
//   - ToLinear(points, bounds, n, mode, opts...)
//   - ToLinear(..., WithSmoothing(sigma)) to denoise while re-binning
//   - SmoothGaussian(signal, sigma) on an already uniform signal
package resample
