// Package geo provides the planar distance model used by the tour optimizer:
// 2-D points, Euclidean distance, and a precomputed dense distance matrix.
//
// The matrix is built once from a fixed set of points and is read-only
// afterwards, so the optimizer's hot loop performs nothing but table lookups.
//
// Use this package to turn parsed city coordinates into the Metric consumed
// by package anneal.
package geo
