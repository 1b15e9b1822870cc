package projectile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a parameter outside its valid range.
	ErrInvalidConfig = errors.New("projectile: invalid config")

	// ErrSingularity indicates a closed-form update that is mathematically undefined.
	ErrSingularity = errors.New("projectile: singular update")

	// ErrRunaway indicates the step cap was reached without ground contact.
	ErrRunaway = errors.New("projectile: step cap reached without ground contact")

	// ErrUnstable indicates the state diverged to NaN or Inf.
	ErrUnstable = errors.New("projectile: simulation unstable (state diverged)")

	// ErrTraceFrozen indicates a write to a trace whose run has finished.
	ErrTraceFrozen = errors.New("projectile: trace is frozen")
)

type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s, got %g", ErrInvalidConfig, e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

type SingularityError struct {
	Step   int
	Time   float64
	Axis   string
	Regime Regime
	Reason string
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("%v: %s-axis at step %d (t=%.4f, %s): %s", ErrSingularity, e.Axis, e.Step, e.Time, e.Regime, e.Reason)
}

func (e *SingularityError) Unwrap() error {
	return ErrSingularity
}

// RunawayError is soft: the run that returns it also returns its trace.
type RunawayError struct {
	Steps int
	Final State
}

func (e *RunawayError) Error() string {
	return fmt.Sprintf("%v after %d steps (y=%.4f)", ErrRunaway, e.Steps, e.Final.Pos.Y)
}

func (e *RunawayError) Unwrap() error {
	return ErrRunaway
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
