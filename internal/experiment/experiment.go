package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/trajsim/internal/projectile"
)

// Config names the scheme to run alongside the physical parameters.
type Config struct {
	Scheme     string
	Projectile projectile.Config
}

type Experiment struct {
	cfg       Config
	simulator *projectile.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(adv projectile.Advancer, metrics []projectile.Metric) error {
	if adv == nil {
		return fmt.Errorf("experiment: nil advancer")
	}
	e.simulator = projectile.New(adv)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

// Run simulates the configured projectile. Errors carry the scheme name;
// the trace is returned whenever the simulator produced one.
func (e *Experiment) Run(ctx context.Context) (*projectile.Trace, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	trace, err := e.simulator.Run(ctx, e.cfg.Projectile)
	if err != nil {
		return trace, fmt.Errorf("%s: %w", e.cfg.Scheme, err)
	}
	return trace, nil
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *projectile.Simulator {
	return e.simulator
}

func (e *Experiment) Config() Config {
	return e.cfg
}
