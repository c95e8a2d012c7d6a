package curve

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/interp"
	"github.com/cwbudde/algo-spectral/spd/response"
)

func TestToCDFLinearExact(t *testing.T) {
	bounds := response.BoundedVisibleRange
	signal := testutil.SpikySignal()
	c := mustLinear(t, signal, bounds, interp.Cubic)

	d, err := c.ToCDF(bounds, 0) // resolution unused on the exact path
	if err != nil {
		t.Fatalf("ToCDF: %v", err)
	}

	binWidth := bounds.Span() / float64(len(signal))
	wantIntegral := 0.0
	for _, v := range signal {
		wantIntegral += v * binWidth
	}
	testutil.RequireNear(t, d.PDFIntegral, wantIntegral, 1e-9)

	cdf := d.CDF.signal
	if len(cdf) != len(signal)+1 {
		t.Fatalf("cdf signal length %d, want %d", len(cdf), len(signal)+1)
	}
	if cdf[0] != 0 {
		t.Fatalf("cdf starts at %v, want 0", cdf[0])
	}
	if cdf[len(cdf)-1] != 1 {
		t.Fatalf("cdf ends at %v, want exactly 1", cdf[len(cdf)-1])
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i] < cdf[i-1] {
			t.Fatalf("cdf decreases at %d: %v -> %v", i, cdf[i-1], cdf[i])
		}
	}

	// The exact path reuses the source's mode and lower bound; the grid
	// runs one bin past the source domain so entries sit on bin edges.
	want := core.Bounds1D{Lower: bounds.Lower, Upper: bounds.Upper + binWidth}
	if d.CDF.Bounds() != want {
		t.Fatalf("cdf bounds = %v, want %v", d.CDF.Bounds(), want)
	}
	if d.CDF.Mode() != interp.Cubic {
		t.Fatalf("cdf mode = %v, want source mode", d.CDF.Mode())
	}
}

func TestToCDFSampledPath(t *testing.T) {
	bounds := response.BoundedVisibleRange
	c := NewExponential([]GaussianBump{
		{Center: 400, SigmaLower: 200, SigmaUpper: 200, Amplitude: 0.9},
		{Center: 600, SigmaLower: 200, SigmaUpper: 300, Amplitude: 1.0},
	})

	d, err := c.ToCDF(bounds, 100)
	if err != nil {
		t.Fatalf("ToCDF: %v", err)
	}

	// Sampled CDFs are Linear with Cubic interpolation hard-coded.
	if d.CDF.Mode() != interp.Cubic {
		t.Fatalf("cdf mode = %v, want cubic", d.CDF.Mode())
	}

	testutil.RequireFinite(t, d.CDF.signal)
	testutil.RequireNear(t, d.CDF.Evaluate(bounds.Lower), 0, 1e-5)
	testutil.RequireNear(t, d.CDF.Evaluate(bounds.Upper), 1, 1e-5)

	prev := -1.0
	for i := 0; i <= 200; i++ {
		v := d.CDF.Evaluate(bounds.Lerp(float64(i) / 200))
		if v < prev-1e-9 {
			t.Fatalf("cdf not non-decreasing at step %d: %v -> %v", i, prev, v)
		}
		prev = v
	}

	// Left-rule total tracks the trapezoidal integral at this resolution.
	want := c.Integral(bounds, 1000, false)
	if diff := d.PDFIntegral - want; diff < -0.05*want || diff > 0.05*want {
		t.Fatalf("PDFIntegral = %v, trapezoidal integral = %v", d.PDFIntegral, want)
	}
}

func TestToCDFZeroIntegral(t *testing.T) {
	if _, err := Const(0).ToCDF(response.BoundedVisibleRange, 64); err != ErrZeroIntegral {
		t.Fatalf("err = %v, want ErrZeroIntegral", err)
	}

	zeroLinear := mustLinear(t, []float64{0, 0, 0}, core.NewBounds1D(400, 700), interp.Linear)
	if _, err := zeroLinear.ToCDF(core.Bounds1D{}, 0); err != ErrZeroIntegral {
		t.Fatalf("linear err = %v, want ErrZeroIntegral", err)
	}
}

func TestToCDFResolutionValidation(t *testing.T) {
	if _, err := Const(1).ToCDF(response.BoundedVisibleRange, 1); err != ErrResolution {
		t.Fatalf("err = %v, want ErrResolution", err)
	}
}
