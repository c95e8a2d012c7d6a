// Package interp provides the two-point interpolation bases used by
// spectral curves.
//
// Available modes, from cheapest to smoothest:
//
//   - [Linear]:  straight lerp between the two bin values
//   - [Nearest]: picks the closer bin value (t < 0.5 takes the left)
//   - [Cubic]:   Hermite h00/h01 blend of the two bin values, no
//     external tangents
//
// The same basis weights are reused during inverse-CDF sampling: Linear
// inverts exactly, Nearest and Cubic apply the forward weights to the
// inverse map as a deliberate approximation.
package interp
