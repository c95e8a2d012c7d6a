// Command spdinfo prints radiometric properties of spectral power
// distributions.
//
// Usage:
//
//	spdinfo [flags] [curve-name ...]
//
// Without arguments it prints info for all known curves.
//
// Examples:
//
//	spdinfo blackbody
//	spdinfo -temp 2856 blackbody
//	spdinfo -samples 4 cie-y
//	spdinfo -all
//	spdinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/spd/core"
	"github.com/cwbudde/algo-spectral/spd/curve"
	"github.com/cwbudde/algo-spectral/spd/response"
)

type curveEntry struct {
	name    string
	build   func(temperature float64) curve.Curve
	hasTemp bool
	defTemp float64
}

var registry = []curveEntry{
	{"flat", func(float64) curve.Curve { return curve.Const(1) }, false, 0},
	{"blackbody", func(t float64) curve.Curve { return curve.NewBlackbody(t, 1) }, true, 6504},
	{"cie-x", func(float64) curve.Curve {
		return curve.NewExponential([]curve.GaussianBump{
			{Center: 599.8, SigmaLower: 37.9, SigmaUpper: 31.0, Amplitude: 1.056},
			{Center: 442.0, SigmaLower: 16.0, SigmaUpper: 26.7, Amplitude: 0.362},
			{Center: 501.1, SigmaLower: 20.4, SigmaUpper: 26.2, Amplitude: -0.065},
		})
	}, false, 0},
	{"cie-y", func(float64) curve.Curve { return curve.YBar() }, false, 0},
	{"cie-z", func(float64) curve.Curve {
		return curve.NewExponential([]curve.GaussianBump{
			{Center: 437.0, SigmaLower: 11.8, SigmaUpper: 36.0, Amplitude: 1.217},
			{Center: 459.0, SigmaLower: 26.0, SigmaUpper: 13.8, Amplitude: 0.681},
		})
	}, false, 0},
}

func main() {
	temp := flag.Float64("temp", math.NaN(), "temperature in kelvin for parametric curves (blackbody)")
	extended := flag.Bool("extended", false, "use the extended visible range instead of the bounded one")
	step := flag.Float64("step", 1, "step size in nanometers for the XYZ integration")
	samples := flag.Int("samples", 0, "print this many importance-sampled draws per curve")
	all := flag.Bool("all", false, "show all curves")
	list := flag.Bool("list", false, "list available curve names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spdinfo [flags] [curve-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints radiometric properties of spectral power distributions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all curves.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spdinfo blackbody cie-y\n")
		fmt.Fprintf(os.Stderr, "  spdinfo -temp 2856 blackbody\n")
		fmt.Fprintf(os.Stderr, "  spdinfo -samples 4 cie-y\n")
		fmt.Fprintf(os.Stderr, "  spdinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *temp)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching curves\n")
		os.Exit(1)
	}

	bounds := response.BoundedVisibleRange
	if *extended {
		bounds = response.ExtendedVisibleRange
	}

	printAnalysis(entries, bounds, *step)

	if *samples > 0 {
		for _, e := range entries {
			if err := printSamples(e, bounds, *samples); err != nil {
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.label(), err)
				os.Exit(1)
			}
		}
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	curveEntry
	temperature float64
}

func (e resolvedEntry) label() string {
	if e.hasTemp {
		return fmt.Sprintf("%s (T=%.0fK)", e.name, e.temperature)
	}
	return e.name
}

func (e resolvedEntry) curve() curve.Curve {
	return e.build(e.temperature)
}

func resolveEntries(names []string, tempFlag float64) []resolvedEntry {
	byName := make(map[string]curveEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown curve %q (use -list to see available)\n", name)
			continue
		}
		t := e.defTemp
		if e.hasTemp && !math.IsNaN(tempFlag) {
			t = tempFlag
		}
		result = append(result, resolvedEntry{e, t})
	}
	return result
}

func printAnalysis(entries []resolvedEntry, bounds core.Bounds1D, step float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Curve\tPeak [nm]\tIntegral\tX\tY\tZ\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t---------\t--------\t-\t-\t-\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		c := e.curve()
		xyz := c.ToXYZ(bounds, step, false)

		if _, err := fmt.Fprintf(tw, "%s\t%.1f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			e.label(),
			peakWavelength(c, bounds),
			c.Integral(bounds, 1000, false),
			xyz.X,
			xyz.Y,
			xyz.Z,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSamples(e resolvedEntry, bounds core.Bounds1D, n int) error {
	d, err := e.curve().ToCDF(bounds, 256)
	if err != nil {
		return fmt.Errorf("cdf: %w", err)
	}

	fmt.Printf("\n%s, %d stratified draws:\n", e.label(), n)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "u\tlambda [nm]\tpower\tpdf\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		u := (float64(i) + 0.5) / float64(n)
		sw, pdf := d.SamplePowerAndPDF(bounds, u)
		if _, err := fmt.Fprintf(tw, "%.4f\t%.2f\t%.5f\t%.6f\n", u, sw.Lambda, sw.Energy, pdf.Value()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// peakWavelength scans the curve on a 1nm grid; the result is only used
// for display.
func peakWavelength(c curve.Curve, bounds core.Bounds1D) float64 {
	best, bestVal := bounds.Lower, math.Inf(-1)
	for l := bounds.Lower; l <= bounds.Upper; l++ {
		if v := c.Evaluate(l); v > bestVal {
			best, bestVal = l, v
		}
	}
	return best
}
