package projectile

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestClassifyRegime(t *testing.T) {
	tests := []struct {
		vy   float64
		want Regime
	}{
		{5, Ascending},
		{1e-300, Ascending},
		{-5, Descending},
		{0, AtPeak},
		{math.Copysign(0, -1), AtPeak},
	}
	for _, tt := range tests {
		if got := ClassifyRegime(tt.vy); got != tt.want {
			t.Errorf("ClassifyRegime(%g) = %s, want %s", tt.vy, got, tt.want)
		}
	}
}

func TestAnalytic_Singularities(t *testing.T) {
	cfg := ballConfig()

	tests := []struct {
		name  string
		state State
		axis  string
	}{
		{
			name:  "horizontal launch",
			state: State{Vel: Vec2{X: 30}, Angle: 0},
			axis:  "y",
		},
		{
			name:  "vertical flight",
			state: State{Step: 4, Vel: Vec2{X: 1e-15, Y: 20}, Angle: math.Pi / 2},
			axis:  "x",
		},
		{
			name:  "zero horizontal velocity",
			state: State{Step: 4, Vel: Vec2{X: 0, Y: 20}, Angle: math.Pi / 4},
			axis:  "x",
		},
		{
			name:  "beyond terminal velocity",
			state: State{Step: 7, Vel: Vec2{X: 1, Y: -100}, Angle: math.Atan(-100)},
			axis:  "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalytic().Advance(cfg, tt.state)
			if !errors.Is(err, ErrSingularity) {
				t.Fatalf("expected ErrSingularity, got %v", err)
			}
			var se *SingularityError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SingularityError, got %T", err)
			}
			if se.Axis != tt.axis {
				t.Errorf("axis = %q, want %q", se.Axis, tt.axis)
			}
			if se.Step != tt.state.Step+1 {
				t.Errorf("step = %d, want %d", se.Step, tt.state.Step+1)
			}
			if want := float64(se.Step) * cfg.Dt; se.Time != want {
				t.Errorf("time = %g, want %g (time of step %d)", se.Time, want, se.Step)
			}
		})
	}
}

func TestAnalytic_AtPeakFallback(t *testing.T) {
	cfg := ballConfig()
	s := State{Step: 300, T: 1.5, Pos: Vec2{X: 20, Y: 10}, Vel: Vec2{X: 12, Y: 0}, Angle: 0}

	next, err := NewAnalytic().Advance(cfg, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := -cfg.Gravity * cfg.Dt; math.Abs(next.Vel.Y-want) > 1e-15 {
		t.Errorf("vy = %g, want %g", next.Vel.Y, want)
	}
	if next.Vel.X >= s.Vel.X {
		t.Errorf("horizontal drag not applied: vx %f -> %f", s.Vel.X, next.Vel.X)
	}
}

func TestAnalytic_ApexCrossingFallsBackToAtPeak(t *testing.T) {
	cfg := ballConfig()
	s := State{Step: 7, T: 0.035, Vel: Vec2{X: 1, Y: 1e-3}, Angle: 1e-9}

	next, err := NewAnalytic().Advance(cfg, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := s.Vel.Y - cfg.Gravity*cfg.Dt; math.Abs(next.Vel.Y-want) > 1e-15 {
		t.Errorf("vy = %g, want %g", next.Vel.Y, want)
	}
}

func TestAnalytic_HighDragLaunchesLand(t *testing.T) {
	for _, deg := range []float64{29, 43.11, 60} {
		cfg := ballConfig()
		cfg.Area = 1
		cfg.Angle = deg * math.Pi / 180

		trace, err := New(NewAnalytic()).Run(context.Background(), cfg)
		if err != nil {
			t.Fatalf("%.2f°: %v", deg, err)
		}
		if !trace.Complete {
			t.Errorf("%.2f°: run did not land", deg)
		}
	}
}

func TestAnalytic_DragFreeIsKinematic(t *testing.T) {
	cfg := ballConfig()
	cfg.DragCoefficient = 0

	a := NewAnalytic()
	s, err := a.Init(cfg)
	if err != nil {
		t.Fatal(err)
	}
	next, err := a.Advance(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	if next.Vel.X != s.Vel.X {
		t.Errorf("vx changed without drag: %f -> %f", s.Vel.X, next.Vel.X)
	}
	if want := s.Vel.Y - cfg.Gravity*cfg.Dt; next.Vel.Y != want {
		t.Errorf("vy = %f, want %f", next.Vel.Y, want)
	}
	if want := next.Vel.Y * cfg.Dt; next.Pos.Y != want {
		t.Errorf("first-order position update: y = %g, want %g", next.Pos.Y, want)
	}
}

func TestAnalytic_HorizontalReciprocal(t *testing.T) {
	cfg := ballConfig()
	s := State{Step: 10, Vel: Vec2{X: 20, Y: 5}, Angle: 0.3}

	next, err := NewAnalytic().Advance(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	c := cfg.Density * cfg.Area * cfg.DragCoefficient
	want := 1 / (1/20.0 + c/(2*cfg.Mass*math.Cos(0.3))*cfg.Dt)
	if math.Abs(next.Vel.X-want) > 1e-12 {
		t.Errorf("vx = %.12f, want %.12f", next.Vel.X, want)
	}
	if math.Abs(next.Angle-math.Atan(next.Vel.Y/next.Vel.X)) > 1e-15 {
		t.Errorf("angle should be atan(vy/vx), got %f", next.Angle)
	}
}

func TestAnalytic_VerticalRegimesDecelerate(t *testing.T) {
	cfg := ballConfig()
	a := NewAnalytic()

	up := State{Step: 3, Vel: Vec2{X: 20, Y: 15}, Angle: math.Atan2(15, 20)}
	next, err := a.Advance(cfg, up)
	if err != nil {
		t.Fatal(err)
	}
	// gravity and drag both slow the climb
	if drop := up.Vel.Y - next.Vel.Y; drop <= cfg.Gravity*cfg.Dt {
		t.Errorf("ascending: vy dropped by %g, want > %g", drop, cfg.Gravity*cfg.Dt)
	}

	down := State{Step: 3, Vel: Vec2{X: 20, Y: -15}, Angle: math.Atan2(-15, 20)}
	next, err = a.Advance(cfg, down)
	if err != nil {
		t.Fatal(err)
	}
	// drag partly cancels gravity on the way down
	gain := down.Vel.Y - next.Vel.Y
	if gain <= 0 || gain >= cfg.Gravity*cfg.Dt {
		t.Errorf("descending: vy gained %g, want in (0, %g)", gain, cfg.Gravity*cfg.Dt)
	}
}

func TestFlightAngle(t *testing.T) {
	tests := []struct {
		vx, vy, want float64
	}{
		{1, 1, math.Pi / 4},
		{0, 3, math.Pi / 2},
		{0, -3, -math.Pi / 2},
		{0, 0, 0},
		// quadrant is not recovered
		{-1, 1, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := flightAngle(tt.vx, tt.vy); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("flightAngle(%g, %g) = %g, want %g", tt.vx, tt.vy, got, tt.want)
		}
	}
}
