package resample

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/curve"
	"github.com/cwbudde/algo-spectral/spd/interp"
)

var (
	// ErrBinCount indicates a non-positive target bin count.
	ErrBinCount = errors.New("resample: bin count must be positive")
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("resample: signal must not be empty")
	// ErrSigma indicates a negative smoothing sigma.
	ErrSigma = errors.New("resample: smoothing sigma must not be negative")
)

type config struct {
	sigmaBins float64
}

// Option configures ToLinear.
type Option func(*config)

// WithSmoothing applies Gaussian smoothing with the given sigma, in
// bins, to the re-binned signal. Zero disables smoothing.
func WithSmoothing(sigmaBins float64) Option {
	return func(cfg *config) {
		cfg.sigmaBins = sigmaBins
	}
}

// ToLinear re-bins tabulated points onto n uniform bins across bounds,
// evaluating the tabulated curve at each bin's left edge, where a Linear
// curve anchors its samples. The result is a Linear curve in the given
// interpolation mode, ready for an exact discrete CDF conversion.
func ToLinear(points []curve.Point, bounds core.Bounds1D, n int, mode interp.Mode, opts ...Option) (curve.Curve, error) {
	if n < 1 {
		return curve.Curve{}, ErrBinCount
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	tab, err := curve.NewTabulated(points, mode)
	if err != nil {
		return curve.Curve{}, err
	}

	binWidth := bounds.Span() / float64(n)
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = tab.Evaluate(bounds.Lower + float64(i)*binWidth)
	}

	if cfg.sigmaBins != 0 {
		signal, err = SmoothGaussian(signal, cfg.sigmaBins)
		if err != nil {
			return curve.Curve{}, err
		}
	}

	return curve.NewLinear(signal, bounds, mode)
}

// SmoothGaussian convolves a uniformly binned signal with a normalized
// Gaussian kernel of the given sigma, in bins, via the frequency
// domain. Edges are handled by replication, so constant signals pass
// through unchanged. A zero sigma returns a copy of the input.
func SmoothGaussian(signal []float64, sigmaBins float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sigmaBins < 0 {
		return nil, ErrSigma
	}
	if sigmaBins == 0 {
		out := make([]float64, len(signal))
		copy(out, signal)
		return out, nil
	}

	n := len(signal)
	// Replicated padding keeps the kernel tail away from the wraparound
	// that circular FFT convolution introduces.
	pad := int(math.Ceil(6*sigmaBins)) + 1
	fftSize := nextPowerOf2(n + 2*pad)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("resample: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i := 0; i < n+2*pad; i++ {
		j := i - pad
		if j < 0 {
			j = 0
		}
		if j > n-1 {
			j = n - 1
		}
		padded[i] = complex(signal[j], 0)
	}

	// Time-domain kernel centered at index 0, wrapped, unit mass.
	kernel := make([]complex128, fftSize)
	kernelSum := 0.0
	for i := 0; i < fftSize; i++ {
		d := float64(i)
		if i > fftSize/2 {
			d = float64(fftSize - i)
		}
		k := math.Exp(-d * d / (2 * sigmaBins * sigmaBins))
		kernel[i] = complex(k, 0)
		kernelSum += k
	}
	for i := range kernel {
		kernel[i] /= complex(kernelSum, 0)
	}

	signalFreq := make([]complex128, fftSize)
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(signalFreq, padded); err != nil {
		return nil, fmt.Errorf("resample: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kernelFreq, kernel); err != nil {
		return nil, fmt.Errorf("resample: forward FFT failed: %w", err)
	}

	for i := range signalFreq {
		signalFreq[i] *= kernelFreq[i]
	}

	smoothed := make([]complex128, fftSize)
	if err := plan.Inverse(smoothed, signalFreq); err != nil {
		return nil, fmt.Errorf("resample: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(smoothed[pad+i])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
