package projectile

import (
	"errors"
	"math"
	"testing"
)

func ballConfig() Config {
	return Config{
		Mass:            1,
		Speed:           30,
		Angle:           math.Pi / 4,
		Density:         1.225,
		DragCoefficient: 0.5,
		Area:            0.05,
		Dt:              0.005,
		Gravity:         9.8,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative speed", func(c *Config) { c.Speed = -1 }, "speed"},
		{"zero mass", func(c *Config) { c.Mass = 0 }, "mass"},
		{"negative mass", func(c *Config) { c.Mass = -2 }, "mass"},
		{"zero density", func(c *Config) { c.Density = 0 }, "density"},
		{"zero area", func(c *Config) { c.Area = 0 }, "area"},
		{"zero dt", func(c *Config) { c.Dt = 0 }, "dt"},
		{"negative dt", func(c *Config) { c.Dt = -0.01 }, "dt"},
		{"negative drag coefficient", func(c *Config) { c.DragCoefficient = -0.1 }, "drag_coefficient"},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }, "gravity"},
		{"NaN angle", func(c *Config) { c.Angle = math.NaN() }, "angle"},
		{"infinite speed", func(c *Config) { c.Speed = math.Inf(1) }, "speed"},
		{"negative step cap", func(c *Config) { c.MaxSteps = -1 }, "max_steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ballConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestConfigValidate_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default ball", func(c *Config) {}},
		{"drag free", func(c *Config) { c.DragCoefficient = 0 }},
		{"at rest", func(c *Config) { c.Speed = 0 }},
		{"negative angle", func(c *Config) { c.Angle = -0.3 }},
		{"obtuse angle", func(c *Config) { c.Angle = 2.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ballConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := ballConfig()
	if cfg.Steps() != DefaultMaxSteps {
		t.Errorf("Steps() = %d, want %d", cfg.Steps(), DefaultMaxSteps)
	}
	if got, want := cfg.DragFactor(), 0.5*1.225*0.5*0.05; math.Abs(got-want) > 1e-15 {
		t.Errorf("DragFactor() = %g, want %g", got, want)
	}
	if c := cfg.WithAngle(0.1); c.Angle != 0.1 || cfg.Angle != math.Pi/4 {
		t.Error("WithAngle must return a modified copy")
	}
}

func TestInitialize(t *testing.T) {
	cfg := ballConfig()

	s, err := Initialize(cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	if s.Step != 0 || s.T != 0 || s.Pos != (Vec2{}) {
		t.Errorf("initial state not at origin: %+v", s)
	}

	vx, vy := 30*math.Cos(math.Pi/4), 30*math.Sin(math.Pi/4)
	if math.Abs(s.Vel.X-vx) > 1e-12 || math.Abs(s.Vel.Y-vy) > 1e-12 {
		t.Errorf("velocity = %+v, want (%f, %f)", s.Vel, vx, vy)
	}

	drag := cfg.DragFactor() * 900 / cfg.Mass
	wantAx := -drag * math.Cos(math.Pi/4)
	wantAy := -9.8 - drag*math.Sin(math.Pi/4)
	if math.Abs(s.Acc.X-wantAx) > 1e-9 || math.Abs(s.Acc.Y-wantAy) > 1e-9 {
		t.Errorf("acceleration = %+v, want (%f, %f)", s.Acc, wantAx, wantAy)
	}

	plain, err := Initialize(cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Acc != (Vec2{}) {
		t.Errorf("acceleration should be unset, got %+v", plain.Acc)
	}

	bad := cfg
	bad.Speed = -1
	if _, err := Initialize(bad, true); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
