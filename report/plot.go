package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/satour/satour/geo"
)

// SaveRoutePlot renders the cities as a scatter and the tour as a closed
// polyline, and saves the diagram as a PNG at path.
//
// tour must be a permutation over pts (the optimizer's output); the closing
// edge back to the first city is drawn explicitly.
func SaveRoutePlot(path string, pts []geo.Point, tour []int) error {
	if len(tour) != len(pts) || len(pts) < 2 {
		return fmt.Errorf("report: plot: tour length %d does not match %d cities", len(tour), len(pts))
	}

	p := plot.New()
	p.Title.Text = "Best route"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	cityPts := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		cityPts[i].X = pt.X
		cityPts[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(cityPts)
	if err != nil {
		return fmt.Errorf("report: plot cities: %w", err)
	}

	// Route polyline in visiting order, closed back to the start.
	routePts := make(plotter.XYs, len(tour)+1)
	for i, idx := range tour {
		if idx < 0 || idx >= len(pts) {
			return fmt.Errorf("report: plot: city index %d out of range", idx)
		}
		routePts[i].X = pts[idx].X
		routePts[i].Y = pts[idx].Y
	}
	routePts[len(tour)] = routePts[0]

	line, err := plotter.NewLine(routePts)
	if err != nil {
		return fmt.Errorf("report: plot route: %w", err)
	}

	p.Add(scatter, line)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot %s: %w", path, err)
	}

	return nil
}
