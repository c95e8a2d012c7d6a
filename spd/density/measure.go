package density

// Measure is the differential domain a probability density is expressed
// under. The interface is sealed: the five measures defined here are the
// only ones, and they carry no data.
type Measure interface {
	measureName() string
}

// Uniform01 is the measure of a density over a unit parameter interval,
// e.g. a wavelength drawn by inverting a CDF.
type Uniform01 struct{}

// Area is the differential-area measure (dA).
type Area struct{}

// SolidAngle is the differential-solid-angle measure,
// sin(theta) d[theta] d[phi].
type SolidAngle struct{}

// ProjectedSolidAngle is the solid-angle measure weighted by |cos(theta)|.
type ProjectedSolidAngle struct{}

// Throughput is the product measure dA x projected solid angle.
type Throughput struct{}

func (Uniform01) measureName() string           { return "uniform01" }
func (Area) measureName() string                { return "area" }
func (SolidAngle) measureName() string          { return "solid-angle" }
func (ProjectedSolidAngle) measureName() string { return "projected-solid-angle" }
func (Throughput) measureName() string          { return "throughput" }
