package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/sweep"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Summary writes the headline numbers of a run. runErr is the error the run
// returned, if any; a runaway is shown as a warning, anything else as a
// failure.
func Summary(w io.Writer, cfg projectile.Config, s metrics.Summary, runErr error) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(s.Scheme)) + "  ")
	switch {
	case runErr == nil:
		b.WriteString(okStyle.Render("landed"))
	case errors.Is(runErr, projectile.ErrRunaway):
		b.WriteString(warnStyle.Render("incomplete: step cap reached"))
	default:
		b.WriteString(errStyle.Render("failed: " + runErr.Error()))
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("launch", fmt.Sprintf("%.2f m/s at %.2f°", cfg.Speed, cfg.Angle*180/math.Pi))
	row("drag", fmt.Sprintf("ρ=%.3f Cd=%.3f A=%.3f m=%.3f", cfg.Density, cfg.DragCoefficient, cfg.Area, cfg.Mass))
	dyn := physics.NewDragProjectile(cfg.Mass, cfg.Density, cfg.DragCoefficient, cfg.Area, cfg.Gravity)
	if vt := dyn.TerminalSpeed(); !math.IsInf(vt, 1) {
		row("terminal", fmt.Sprintf("%.4f m/s", vt))
	} else {
		row("terminal", "-")
	}
	row("steps", fmt.Sprintf("%d (dt=%g)", s.Steps, cfg.Dt))
	row("range", fmt.Sprintf("%.4f m", s.Range))
	row("flight time", fmt.Sprintf("%.4f s", s.FlightTime))
	row("max height", fmt.Sprintf("%.4f m", s.MaxHeight))
	if s.ApexTime >= 0 {
		row("apex time", fmt.Sprintf("%.4f s", s.ApexTime))
	} else {
		row("apex time", "-")
	}
	row("impact speed", fmt.Sprintf("%.4f m/s", s.ImpactSpeed))
	row("energy loss", fmt.Sprintf("%.2f%%", 100*s.EnergyLoss))

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

// CompareRow is one scheme's result against a shared configuration.
type CompareRow struct {
	Summary metrics.Summary
	Err     error
}

// Compare writes a table of schemes. Deviations are relative to the row
// named reference, when present.
func Compare(w io.Writer, rows []CompareRow, reference string) error {
	var ref *metrics.Summary
	for i := range rows {
		if rows[i].Summary.Scheme == reference && rows[i].Err == nil {
			ref = &rows[i].Summary
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCHEME\tSTEPS\tRANGE\tFLIGHT\tMAX_H\tIMPACT\tΔRANGE\tSTATUS")

	for _, r := range rows {
		s := r.Summary
		if r.Err != nil && !errors.Is(r.Err, projectile.ErrRunaway) {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\t%v\n", s.Scheme, r.Err)
			continue
		}
		dev := "-"
		if ref != nil && ref.Range != 0 {
			dev = fmt.Sprintf("%+.3f%%", 100*(s.Range-ref.Range)/ref.Range)
		}
		status := "ok"
		if !s.Complete {
			status = "incomplete"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\n",
			s.Scheme, s.Steps, s.Range, s.FlightTime, s.MaxHeight, s.ImpactSpeed, dev, status)
	}

	return tw.Flush()
}

// Sweep writes the best angle of a sweep, followed by every every-th sample
// when every > 0.
func Sweep(w io.Writer, res *sweep.Result, every int) error {
	if every > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ANGLE_DEG\tANGLE_RAD\tRANGE\tSTEPS")
		for i, s := range res.Samples {
			if i%every != 0 && i != res.BestIndex {
				continue
			}
			fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%d\n", s.Angle*180/math.Pi, s.Angle, s.Range, s.Steps)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "%s %s\n%s %s\n",
		labelStyle.Render("best range"), valueStyle.Render(fmt.Sprintf("%.6f m", res.BestRange)),
		labelStyle.Render("best angle"), valueStyle.Render(fmt.Sprintf("%.6f rad (%.4f°)", res.BestAngle, res.BestAngle*180/math.Pi)))
	return err
}
