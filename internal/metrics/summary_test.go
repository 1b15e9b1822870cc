package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/projectile"
)

func vacuumConfig() projectile.Config {
	return projectile.Config{
		Mass:    1,
		Speed:   30,
		Angle:   math.Pi / 4,
		Density: 1.225,
		Area:    0.05,
		Dt:      0.005,
		Gravity: 9.8,
	}
}

func TestSummarize_Vacuum(t *testing.T) {
	cfg := vacuumConfig()
	trace, err := projectile.New(projectile.NewEuler()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(trace, cfg)

	if !s.Complete || s.Scheme != "euler" {
		t.Errorf("unexpected header: %+v", s)
	}
	if s.Steps != trace.Len()-1 {
		t.Errorf("steps = %d, want %d", s.Steps, trace.Len()-1)
	}
	if math.Abs(s.Range-91.84) > 0.5 {
		t.Errorf("range = %f, want ~91.84", s.Range)
	}
	if math.Abs(s.ApexTime-2.1646) > 0.01 {
		t.Errorf("apex time = %f, want ~2.1646", s.ApexTime)
	}
	if math.Abs(s.MaxHeight-22.96) > 0.2 {
		t.Errorf("max height = %f, want ~22.96", s.MaxHeight)
	}
	// no drag: only the discretization error shows up as energy change
	if math.Abs(s.EnergyLoss) > 0.01 {
		t.Errorf("energy loss = %f, want ~0 without drag", s.EnergyLoss)
	}
	if s.Stability != 1 {
		t.Errorf("stability = %f, want 1", s.Stability)
	}
}

func TestSummarize_MatchesRunMetrics(t *testing.T) {
	cfg := vacuumConfig()
	cfg.DragCoefficient = 0.5

	sim := projectile.New(projectile.NewAnalytic())
	for _, m := range Standard(cfg) {
		sim.AddMetric(m)
	}
	trace, err := sim.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(trace, cfg)
	if s.Range != trace.Metrics["range"] || s.ImpactSpeed != trace.Metrics["impact_speed"] {
		t.Errorf("summary %+v disagrees with run metrics %v", s, trace.Metrics)
	}
	if s.EnergyLoss <= 0 || s.EnergyLoss >= 1 {
		t.Errorf("energy loss = %f, want in (0, 1) with drag", s.EnergyLoss)
	}
	if s.Range != trace.Range() {
		t.Errorf("range metric %f differs from trace range %f", s.Range, trace.Range())
	}
}

func TestStabilityThreshold(t *testing.T) {
	vacuum := vacuumConfig()
	if got := StabilityThreshold(vacuum); got != 10*vacuum.Speed {
		t.Errorf("drag-free threshold = %f, want %f", got, 10*vacuum.Speed)
	}

	// slow launch: terminal speed is the larger limit
	slow := vacuumConfig()
	slow.DragCoefficient = 0.5
	slow.Area = 0.01
	slow.Speed = 5
	vt := math.Sqrt(slow.Mass * slow.Gravity / (0.5 * slow.Density * slow.DragCoefficient * slow.Area))
	if got := StabilityThreshold(slow); math.Abs(got-10*vt) > 1e-9 {
		t.Errorf("threshold = %f, want %f", got, 10*vt)
	}
}
