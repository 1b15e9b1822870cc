package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !canvas.IsSet(col*2+dx, row*4+dy) {
						continue
					}
					cx := float64(col*2+dx)*scale + scale/2
					cy := float64(row*4+dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG draws the flight path with the ground line at y = 0.
// Apex and impact are marked when present.
func TrajectoryToSVG(trace *projectile.Trace, width, height int, strokeColor string) string {
	points := trace.Points()
	if len(points) < 2 {
		return ""
	}

	b := viz.BoundsOf(points).Pad(0.1)
	sx := func(x float64) float64 { return (x - b.MinX) / b.Width() * float64(width) }
	sy := func(y float64) float64 { return float64(height) - (y-b.MinY)/b.Height()*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, sy(0), width, sy(0), strokeColor))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx(p.X), sy(p.Y)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", sx(p.X), sy(p.Y)))
		}
	}
	sb.WriteString("\"/>\n")

	if apex := trace.ApexIndex(); apex >= 0 {
		p := points[apex]
		sb.WriteString(fmt.Sprintf("<circle class=\"apex\" cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"#ffff00\"/>\n", sx(p.X), sy(p.Y)))
	}
	if trace.Complete {
		p := points[len(points)-1]
		sb.WriteString(fmt.Sprintf("<circle class=\"impact\" cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"#ff4444\"/>\n", sx(p.X), sy(p.Y)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
