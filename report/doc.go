// Package report implements the output collaborators of the optimizer:
// a console/structured-log reporter, a 2-D route plotter, and summary
// statistics over multi-run searches.
//
// Nothing in this package feeds back into the search; it consumes finished
// results only.
package report
