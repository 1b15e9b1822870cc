package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/projectile"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
}

// Chart renders one figure. Samples are spread evenly along the x axis,
// which holds exactly for time-based figures.
func Chart(fig export.Figure, width, height int) string {
	data := make([][]float64, len(fig.Series))
	labels := make([]string, len(fig.Series))
	for i, s := range fig.Series {
		data[i] = s.Y
		labels[i] = s.Label
	}

	caption := fmt.Sprintf("%s: %s vs %s", fig.Title, fig.YLabel, fig.XLabel)
	if len(labels) > 1 {
		caption += " [" + strings.Join(labels, ", ") + "]"
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(seriesColors[:min(len(data), len(seriesColors))]...),
		asciigraph.Caption(caption),
	)
}

// Charts renders every standard figure of a trace, or only those named.
func Charts(trace *projectile.Trace, width, height int, only ...string) []string {
	want := make(map[string]bool, len(only))
	for _, n := range only {
		want[n] = true
	}

	var out []string
	for _, fig := range export.Figures(trace) {
		if len(want) > 0 && !want[fig.Name] {
			continue
		}
		if trace.Len() < 2 {
			continue
		}
		out = append(out, Chart(fig, width, height))
	}
	return out
}
