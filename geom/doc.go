// Package geom provides the geometry kernel shared by the level-line
// tracer and the extraction driver: 2D point arithmetic, bilinear
// saddle solving over a 2×2 dual pixel, and hyperbola-branch sampling.
//
// What:
//
//   - Point: a pair of real coordinates in image space.
//   - SaddleInSquare: detects and locates the bilinear saddle of a
//     dual pixel from its four corner values.
//   - HyperbolaFrom: derives the num/denom/saddle/vertex/δ parameters
//     of the level set through a dual pixel at a given level.
//   - SampleHyperbolaBranch: uniformly samples interior points of one
//     hyperbola branch between two boundary points.
//
// Why:
//
//   - The tracer and the extraction driver both need to know, for a
//     given dual pixel, whether the bilinear interpolant has a saddle
//     and where — this package is the single source of that formula,
//     so both callers agree on it bit-for-bit.
//
// Errors:
//
//	This package reports "no saddle" as a boolean/ok return, not an
//	error — a dual pixel legitimately has no saddle (the level set is
//	a line segment there). There are no sentinel errors here.
package geom
