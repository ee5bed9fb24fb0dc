// Package geom provides the planar geometry primitives shared by the rest
// of latticedraw: a 2D point/vector type, the integer-rounding helpers used
// by the feasibility drivers, and polar-angle ordering for rotation systems.
//
// All coordinates are plain float64 pairs; there is no notion of a
// coordinate reference system here, only Euclidean R^2.
package geom
