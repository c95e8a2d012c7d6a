package resample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/curve"
	"github.com/cwbudde/algo-spectral/spd/interp"
)

func TestToLinearBinEdges(t *testing.T) {
	points := []curve.Point{
		{X: 400, Y: 0},
		{X: 500, Y: 1},
		{X: 700, Y: 0.5},
	}
	bounds := core.NewBounds1D(400, 700)

	c, err := ToLinear(points, bounds, 30, interp.Linear)
	if err != nil {
		t.Fatalf("ToLinear: %v", err)
	}
	if c.Bounds() != bounds {
		t.Fatalf("bounds = %v, want %v", c.Bounds(), bounds)
	}

	tab, err := curve.NewTabulated(points, interp.Linear)
	if err != nil {
		t.Fatalf("NewTabulated: %v", err)
	}

	// A Linear curve anchors signal[i] at the left edge of bin i, so
	// evaluating the result at any grid point must reproduce the
	// tabulated value there exactly.
	binWidth := bounds.Span() / 30
	for i := 0; i < 30; i++ {
		edge := bounds.Lower + float64(i)*binWidth
		want := tab.Evaluate(edge)
		if got := c.Evaluate(edge); got != want {
			t.Fatalf("bin %d edge = %v, want %v", i, got, want)
		}
	}
}

func TestToLinearDoesNotShiftRamp(t *testing.T) {
	// y = x - 400: any half-bin shift shows up as a constant offset.
	points := []curve.Point{{X: 400, Y: 0}, {X: 700, Y: 300}}
	c, err := ToLinear(points, core.NewBounds1D(400, 700), 30, interp.Linear)
	if err != nil {
		t.Fatalf("ToLinear: %v", err)
	}
	for _, lambda := range []float64{400, 500, 600, 690} {
		if got, want := c.Evaluate(lambda), lambda-400; got != want {
			t.Fatalf("Evaluate(%v) = %v, want %v", lambda, got, want)
		}
	}
}

func TestToLinearValidation(t *testing.T) {
	points := []curve.Point{{X: 400, Y: 1}, {X: 700, Y: 2}}
	bounds := core.NewBounds1D(400, 700)

	if _, err := ToLinear(points, bounds, 0, interp.Linear); err != ErrBinCount {
		t.Fatalf("err = %v, want ErrBinCount", err)
	}
	if _, err := ToLinear(nil, bounds, 10, interp.Linear); err != curve.ErrEmptySignal {
		t.Fatalf("err = %v, want curve.ErrEmptySignal", err)
	}
	unsorted := []curve.Point{{X: 700, Y: 1}, {X: 400, Y: 2}}
	if _, err := ToLinear(unsorted, bounds, 10, interp.Linear); err != curve.ErrUnsortedTable {
		t.Fatalf("err = %v, want curve.ErrUnsortedTable", err)
	}
}

func TestToLinearWithSmoothing(t *testing.T) {
	points := []curve.Point{
		{X: 400, Y: 0},
		{X: 550, Y: 10},
		{X: 551, Y: 0},
		{X: 700, Y: 0},
	}
	bounds := core.NewBounds1D(400, 700)

	sharp, err := ToLinear(points, bounds, 60, interp.Linear)
	if err != nil {
		t.Fatalf("ToLinear: %v", err)
	}
	smooth, err := ToLinear(points, bounds, 60, interp.Linear, WithSmoothing(2))
	if err != nil {
		t.Fatalf("ToLinear smoothed: %v", err)
	}

	if got, want := curveMax(smooth, bounds, 600), curveMax(sharp, bounds, 600); got >= want {
		t.Fatalf("smoothed peak %v not below sharp peak %v", got, want)
	}
}

func TestSmoothGaussianConstant(t *testing.T) {
	signal := make([]float64, 37)
	for i := range signal {
		signal[i] = 0.75
	}
	out, err := SmoothGaussian(signal, 3)
	if err != nil {
		t.Fatalf("SmoothGaussian: %v", err)
	}
	for _, v := range out {
		testutil.RequireNear(t, v, 0.75, 1e-9)
	}
}

func TestSmoothGaussianDelta(t *testing.T) {
	const n, center = 64, 32
	signal := make([]float64, n)
	signal[center] = 1

	out, err := SmoothGaussian(signal, 2)
	if err != nil {
		t.Fatalf("SmoothGaussian: %v", err)
	}

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	testutil.RequireNear(t, sum, 1, 1e-6)

	for k := 1; k < 12; k++ {
		testutil.RequireNear(t, out[center-k], out[center+k], 1e-9)
	}
	if out[center] <= out[center+1] {
		t.Fatalf("smoothed delta not peaked at center: %v vs %v", out[center], out[center+1])
	}
	if out[center] >= 1 {
		t.Fatalf("smoothing did not spread the delta: peak %v", out[center])
	}
}

func TestSmoothGaussianPreservesLinearInterior(t *testing.T) {
	signal := testutil.Ramp(0, 1, 50)
	out, err := SmoothGaussian(signal, 2)
	if err != nil {
		t.Fatalf("SmoothGaussian: %v", err)
	}
	// A symmetric kernel leaves a linear signal unchanged away from the
	// replicated edges.
	for i := 15; i < 35; i++ {
		testutil.RequireNear(t, out[i], signal[i], 1e-6)
	}
}

func TestSmoothGaussianZeroSigmaCopies(t *testing.T) {
	signal := testutil.SpikySignal()
	out, err := SmoothGaussian(signal, 0)
	if err != nil {
		t.Fatalf("SmoothGaussian: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, signal, 0)
	out[0] = -1
	if signal[0] == -1 {
		t.Fatal("zero-sigma output aliases the input")
	}
}

func TestSmoothGaussianValidation(t *testing.T) {
	if _, err := SmoothGaussian(nil, 1); err != ErrEmptySignal {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
	if _, err := SmoothGaussian([]float64{1}, -1); err != ErrSigma {
		t.Fatalf("err = %v, want ErrSigma", err)
	}
}

func curveMax(c curve.Curve, bounds core.Bounds1D, samples int) float64 {
	max := math.Inf(-1)
	for i := 0; i < samples; i++ {
		if v := c.Evaluate(bounds.Lerp(float64(i) / float64(samples))); v > max {
			max = v
		}
	}
	return max
}
