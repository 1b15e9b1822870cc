// Package export renders finished traces to files: PNG figures through
// gonum/plot and standalone SVG paths.
package export

import (
	"github.com/san-kum/trajsim/internal/projectile"
)

type Series struct {
	Label string
	X, Y  []float64
}

// Figure is one chart of a trace: a set of series sharing axes.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Figures returns the standard charts of a trace: position against time,
// the trajectory, flight-path angle, both velocity components and, when the
// scheme tracks it, both acceleration components.
func Figures(trace *projectile.Trace) []Figure {
	figs := []Figure{
		{
			Name: "position", Title: "Position", XLabel: "time (s)", YLabel: "displacement (m)",
			Series: []Series{{"x", trace.T, trace.X}, {"y", trace.T, trace.Y}},
		},
		{
			Name: "trajectory", Title: "Trajectory", XLabel: "x (m)", YLabel: "y (m)",
			Series: []Series{{"position", trace.X, trace.Y}},
		},
		{
			Name: "angle", Title: "Flight-path angle", XLabel: "time (s)", YLabel: "angle (deg)",
			Series: []Series{{"theta", trace.T, trace.AngleDeg()}},
		},
		{
			Name: "vx", Title: "Horizontal velocity", XLabel: "time (s)", YLabel: "vx (m/s)",
			Series: []Series{{"x velocity", trace.T, trace.VX}},
		},
		{
			Name: "vy", Title: "Vertical velocity", XLabel: "time (s)", YLabel: "vy (m/s)",
			Series: []Series{{"y velocity", trace.T, trace.VY}},
		},
	}

	if trace.HasAcceleration {
		figs = append(figs,
			Figure{
				Name: "ax", Title: "Horizontal acceleration", XLabel: "time (s)", YLabel: "ax (m/s²)",
				Series: []Series{{"x acceleration", trace.T, trace.AX}},
			},
			Figure{
				Name: "ay", Title: "Vertical acceleration", XLabel: "time (s)", YLabel: "ay (m/s²)",
				Series: []Series{{"y acceleration", trace.T, trace.AY}},
			},
		)
	}
	return figs
}

// Lookup returns the named figure of trace.
func Lookup(trace *projectile.Trace, name string) (Figure, bool) {
	for _, f := range Figures(trace) {
		if f.Name == name {
			return f, true
		}
	}
	return Figure{}, false
}
