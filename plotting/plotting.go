package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
)

var (
	// ErrNoData indicates an empty tour or history.
	ErrNoData = errors.New("plotting: nothing to plot")

	// ErrNilCity indicates a nil city in a tour.
	ErrNilCity = errors.New("plotting: nil city in tour")
)

// Figure size of every saved plot.
const (
	Width  = 6 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	routeColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	startColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	meanColor  = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// Tour draws cities in tour order as a closed polyline with a marker per
// city; the first city is highlighted as the start.
//
// Errors: ErrNoData, ErrNilCity, gonum/plot errors (non-finite
// coordinates, unknown file extension, I/O).
func Tour(cities []*city.City, title, path string) error {
	if len(cities) == 0 {
		return ErrNoData
	}

	pts := make(plotter.XYs, len(cities)+1)
	for i, c := range cities {
		if c == nil {
			return ErrNilCity
		}
		pts[i].X, pts[i].Y = c.X(), c.Y()
	}
	pts[len(cities)] = pts[0]

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	route, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("plotting: route: %w", err)
	}
	route.Color = routeColor
	points.Color = routeColor
	points.Shape = draw.CircleGlyph{}

	start, err := plotter.NewScatter(pts[:1])
	if err != nil {
		return fmt.Errorf("plotting: start: %w", err)
	}
	start.Color = startColor
	start.Shape = draw.SquareGlyph{}
	start.Radius = vg.Points(4)

	p.Add(route, points, start)
	p.Legend.Add("route", route, points)
	p.Legend.Add("start", start)
	p.Legend.Top = true

	if err = p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}

	return nil
}

// Convergence draws the best and mean length of every recorded generation.
//
// Errors: ErrNoData, gonum/plot errors.
func Convergence(history []ga.GenerationStats, title, path string) error {
	if len(history) == 0 {
		return ErrNoData
	}

	best := make(plotter.XYs, len(history))
	mean := make(plotter.XYs, len(history))
	for i, gs := range history {
		best[i].X, best[i].Y = float64(gs.Generation), gs.Best
		mean[i].X, mean[i].Y = float64(gs.Generation), gs.Mean
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Length"

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("plotting: best: %w", err)
	}
	bestLine.Color = routeColor

	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return fmt.Errorf("plotting: mean: %w", err)
	}
	meanLine.Color = meanColor
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	if err = p.Save(Width, Height*2/3, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}

	return nil
}
