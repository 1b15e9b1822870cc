package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/projectile"
)

// Standard returns the metrics recorded for every run of cfg.
func Standard(cfg projectile.Config) []projectile.Metric {
	dyn := physics.NewDragProjectile(cfg.Mass, cfg.Density, cfg.DragCoefficient, cfg.Area, cfg.Gravity)
	return []projectile.Metric{
		NewRange(),
		NewFlightTime(),
		NewMaxHeight(),
		NewApexTime(),
		NewImpactSpeed(),
		NewEnergyLoss(dyn),
		NewStability(StabilityThreshold(cfg)),
	}
}

// StabilityThreshold is ten times the largest speed the projectile can
// legitimately reach: its launch speed or, with drag, its terminal speed.
func StabilityThreshold(cfg projectile.Config) float64 {
	dyn := physics.NewDragProjectile(cfg.Mass, cfg.Density, cfg.DragCoefficient, cfg.Area, cfg.Gravity)
	limit := cfg.Speed
	if vt := dyn.TerminalSpeed(); !math.IsInf(vt, 1) {
		limit = math.Max(limit, vt)
	}
	return 10 * limit
}

type Summary struct {
	Scheme      string  `json:"scheme"`
	Steps       int     `json:"steps"`
	Complete    bool    `json:"complete"`
	Range       float64 `json:"range"`
	FlightTime  float64 `json:"flight_time"`
	MaxHeight   float64 `json:"max_height"`
	ApexTime    float64 `json:"apex_time"`
	ImpactSpeed float64 `json:"impact_speed"`
	EnergyLoss  float64 `json:"energy_loss"`
	Stability   float64 `json:"stability"`
}

// Summarize replays a finished trace through the standard metrics.
func Summarize(trace *projectile.Trace, cfg projectile.Config) Summary {
	ms := Standard(cfg)
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < trace.Len(); i++ {
		s := trace.At(i)
		for _, m := range ms {
			m.Observe(s)
		}
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	return Summary{
		Scheme:      trace.Scheme,
		Steps:       trace.Len() - 1,
		Complete:    trace.Complete,
		Range:       values["range"],
		FlightTime:  values["flight_time"],
		MaxHeight:   values["max_height"],
		ApexTime:    values["apex_time"],
		ImpactSpeed: values["impact_speed"],
		EnergyLoss:  values["energy_loss"],
		Stability:   values["stability"],
	}
}
