package density

import (
	"math"

	"github.com/cwbudde/algo-spectral/spd/core"
)

// PDF is a probability density under measure M. The measure exists only
// in the type; the value is a bare float64.
type PDF[M Measure] struct {
	v float64
}

// New wraps a density value under measure M.
func New[M Measure](v float64) PDF[M] {
	return PDF[M]{v: v}
}

// Value returns the raw density.
func (p PDF[M]) Value() float64 { return p.v }

// Add sums two densities under the same measure, e.g. when mixing
// sampling techniques that share a measure.
func (p PDF[M]) Add(q PDF[M]) PDF[M] { return PDF[M]{v: p.v + q.v} }

// Mul multiplies two densities under the same measure.
func (p PDF[M]) Mul(q PDF[M]) PDF[M] { return PDF[M]{v: p.v * q.v} }

// Div divides two densities under the same measure.
func (p PDF[M]) Div(q PDF[M]) PDF[M] { return PDF[M]{v: p.v / q.v} }

// Scale multiplies the density by a dimensionless factor.
func (p PDF[M]) Scale(s float64) PDF[M] { return PDF[M]{v: p.v * s} }

// PDF4 is the hero-batch counterpart of PDF: one density per lane, all
// under the same measure.
type PDF4[M Measure] struct {
	v core.Float4
}

// New4 wraps a batch of densities under measure M.
func New4[M Measure](v core.Float4) PDF4[M] {
	return PDF4[M]{v: v}
}

// Splat4 broadcasts a single density across all four lanes.
func Splat4[M Measure](v float64) PDF4[M] {
	return PDF4[M]{v: core.Splat(v)}
}

// Value returns the raw per-lane densities.
func (p PDF4[M]) Value() core.Float4 { return p.v }

// Lane returns the density of lane i.
func (p PDF4[M]) Lane(i int) float64 { return p.v[i] }

// Add sums two batches under the same measure.
func (p PDF4[M]) Add(q PDF4[M]) PDF4[M] { return PDF4[M]{v: p.v.Add(q.v)} }

// Mul multiplies two batches under the same measure.
func (p PDF4[M]) Mul(q PDF4[M]) PDF4[M] { return PDF4[M]{v: p.v.Mul(q.v)} }

// Div divides two batches under the same measure.
func (p PDF4[M]) Div(q PDF4[M]) PDF4[M] { return PDF4[M]{v: p.v.Div(q.v)} }

// Scale multiplies every lane by a dimensionless factor.
func (p PDF4[M]) Scale(s float64) PDF4[M] { return PDF4[M]{v: p.v.Scale(s)} }

// AreaToSolidAngle reinterprets an area density as seen from a receiving
// point: multiply by |cos(theta)| at the sampled point and divide by the
// squared distance between the points.
func AreaToSolidAngle(p PDF[Area], cosTheta, distanceSquared float64) PDF[SolidAngle] {
	return PDF[SolidAngle]{v: p.v * math.Abs(cosTheta) / distanceSquared}
}

// AreaToProjectedSolidAngle converts an area density directly to the
// projected-solid-angle measure. It equals AreaToSolidAngle followed by
// SolidAngleToProjectedSolidAngle, in one step.
func AreaToProjectedSolidAngle(p PDF[Area], cosI, cosO, distanceSquared float64) PDF[ProjectedSolidAngle] {
	return PDF[ProjectedSolidAngle]{v: p.v * math.Abs(cosI*cosO) / distanceSquared}
}

// SolidAngleToProjectedSolidAngle weights a solid-angle density by
// |cos(theta)| at the receiving surface.
func SolidAngleToProjectedSolidAngle(p PDF[SolidAngle], cosTheta float64) PDF[ProjectedSolidAngle] {
	return PDF[ProjectedSolidAngle]{v: p.v * math.Abs(cosTheta)}
}

// ToThroughput combines a projected-solid-angle density with an area
// density into a density under the throughput measure.
func ToThroughput(p PDF[ProjectedSolidAngle], area PDF[Area]) PDF[Throughput] {
	return PDF[Throughput]{v: p.v * area.v}
}

// Hero-batch forms of the measure conversions.

func AreaToSolidAngle4(p PDF4[Area], cosTheta, distanceSquared core.Float4) PDF4[SolidAngle] {
	return PDF4[SolidAngle]{v: p.v.Mul(cosTheta.Abs()).Div(distanceSquared)}
}

func AreaToProjectedSolidAngle4(p PDF4[Area], cosI, cosO, distanceSquared core.Float4) PDF4[ProjectedSolidAngle] {
	return PDF4[ProjectedSolidAngle]{v: p.v.Mul(cosI.Mul(cosO).Abs()).Div(distanceSquared)}
}

func SolidAngleToProjectedSolidAngle4(p PDF4[SolidAngle], cosTheta core.Float4) PDF4[ProjectedSolidAngle] {
	return PDF4[ProjectedSolidAngle]{v: p.v.Mul(cosTheta.Abs())}
}

func ToThroughput4(p PDF4[ProjectedSolidAngle], area PDF4[Area]) PDF4[Throughput] {
	return PDF4[Throughput]{v: p.v.Mul(area.v)}
}
