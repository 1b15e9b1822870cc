package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

func xys(s Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range pts {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}

// NewPlot builds a gridded line plot with a legend entry per series.
func NewPlot(fig Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Add(plotter.NewGrid())

	for i, s := range fig.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %d x values, %d y values", s.Label, len(s.X), len(s.Y))
		}
		line, points, err := plotter.NewLinePoints(xys(s))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Radius = vg.Points(1)
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	p.Legend.Top = true

	return p, nil
}

func WritePNG(w io.Writer, fig Figure, width, height vg.Length) error {
	p, err := NewPlot(fig)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePNGs writes every figure of trace to dir as <prefix>_<figure>.png and
// returns the written paths.
func SavePNGs(dir, prefix string, trace *projectile.Trace) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, fig := range Figures(trace) {
		p, err := NewPlot(fig)
		if err != nil {
			return paths, fmt.Errorf("%s: %w", fig.Name, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, fig.Name))
		if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
			return paths, fmt.Errorf("%s: %w", fig.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
