// Package density carries probability densities together with the
// differential measure they are expressed under.
//
// A [PDF] value is tagged at the type level with one of the measure
// types ([Uniform01], [Area], [SolidAngle], [ProjectedSolidAngle],
// [Throughput]). Arithmetic is only defined between densities under the
// same measure, so mixing incompatible measures fails to compile rather
// than silently producing a wrong Monte Carlo weight. Converting between
// measures is always an explicit call that takes the geometric terms the
// conversion needs.
//
// The measure tags occupy no storage; a PDF is exactly one float64 wide
// ([PDF4]: one hero batch wide).
package density
