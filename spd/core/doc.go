// Package core provides the shared numeric primitives of the spectral
// library: half-open wavelength intervals ([Bounds1D]), the 4-wide hero
// batch type ([Float4]), and small float helpers.
//
// Everything here is a plain value type; nothing allocates or mutates
// shared state, so all of it is safe to use from any number of goroutines.
package core
