package projectile

import "math"

// DefaultMaxSteps caps a run that never reaches the ground.
const DefaultMaxSteps = 100000

// Config holds the immutable parameters of one run. Angles are radians,
// everything else SI.
type Config struct {
	Mass            float64 `json:"mass"`
	Speed           float64 `json:"speed"`
	Angle           float64 `json:"angle"`
	Density         float64 `json:"density"`
	DragCoefficient float64 `json:"drag_coefficient"`
	Area            float64 `json:"area"`
	Dt              float64 `json:"dt"`
	Gravity         float64 `json:"gravity"`
	MaxSteps        int     `json:"max_steps,omitempty"`
}

// DragFactor is ½·ρ·Cd·A.
func (c Config) DragFactor() float64 {
	return 0.5 * c.Density * c.DragCoefficient * c.Area
}

func (c Config) Steps() int {
	if c.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}

// WithAngle returns a copy of c launched at angle (radians).
func (c Config) WithAngle(angle float64) Config {
	c.Angle = angle
	return c
}

func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"mass", c.Mass},
		{"speed", c.Speed},
		{"angle", c.Angle},
		{"density", c.Density},
		{"drag_coefficient", c.DragCoefficient},
		{"area", c.Area},
		{"dt", c.Dt},
		{"gravity", c.Gravity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	switch {
	case c.Speed < 0:
		return &ConfigError{Field: "speed", Value: c.Speed, Reason: "must not be negative"}
	case c.Mass <= 0:
		return &ConfigError{Field: "mass", Value: c.Mass, Reason: "must be positive"}
	case c.Density <= 0:
		return &ConfigError{Field: "density", Value: c.Density, Reason: "must be positive"}
	case c.Area <= 0:
		return &ConfigError{Field: "area", Value: c.Area, Reason: "must be positive"}
	case c.Dt <= 0:
		return &ConfigError{Field: "dt", Value: c.Dt, Reason: "must be positive"}
	case c.DragCoefficient < 0:
		return &ConfigError{Field: "drag_coefficient", Value: c.DragCoefficient, Reason: "must not be negative"}
	case c.Gravity <= 0:
		return &ConfigError{Field: "gravity", Value: c.Gravity, Reason: "must be positive"}
	case c.MaxSteps < 0:
		return &ConfigError{Field: "max_steps", Value: float64(c.MaxSteps), Reason: "must not be negative"}
	}
	return nil
}
