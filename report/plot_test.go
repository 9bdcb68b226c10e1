// Package report_test smoke-tests the route diagram renderer.
package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satour/satour/geo"
	"github.com/satour/satour/report"
)

func TestSaveRoutePlot_WritesPNG(t *testing.T) {
	pts := []geo.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	path := filepath.Join(t.TempDir(), "route.png")

	require.NoError(t, report.SaveRoutePlot(path, pts, []int{0, 1, 2, 3}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestSaveRoutePlot_Rejects(t *testing.T) {
	pts := []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	path := filepath.Join(t.TempDir(), "route.png")

	// Tour length must match the city count.
	require.Error(t, report.SaveRoutePlot(path, pts, []int{0}))

	// Indices must stay in range.
	require.Error(t, report.SaveRoutePlot(path, pts, []int{0, 5}))

	// Fewer than two cities cannot form a route.
	require.Error(t, report.SaveRoutePlot(path, pts[:1], []int{0}))
}
