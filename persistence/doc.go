// Package persistence computes topological persistence maps over a
// bilinear surface: for every pixel, the maximum level drop reachable
// along a monotone path within its component in the merge tree built
// from real pixel samples and virtual saddle samples interleaved
// between them.
//
// The engine runs seven stages: build the virtual saddle grid, sort
// the combined real+virtual samples, merge components with a
// path-compressed union-find, canonicalize plateaus, build the
// resulting node tree, propagate contrast up and down it, and emit
// one value per pixel. PersistenceMin and PersistenceMax run the same
// seven stages with the image and its complement respectively.
package persistence
