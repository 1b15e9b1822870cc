package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/projectile"
)

type Registry struct {
	advancers map[string]func() projectile.Advancer
}

func NewRegistry() *Registry {
	r := &Registry{
		advancers: make(map[string]func() projectile.Advancer),
	}

	r.advancers["euler"] = func() projectile.Advancer { return projectile.NewEuler() }
	r.advancers["analytic"] = func() projectile.Advancer { return projectile.NewAnalytic() }
	r.advancers["ode-euler"] = func() projectile.Advancer {
		return projectile.NewReference("ode-euler", integrators.NewEuler())
	}
	r.advancers["rk4"] = func() projectile.Advancer {
		return projectile.NewReference("rk4", integrators.NewRK4())
	}
	r.advancers["rk45"] = func() projectile.Advancer {
		return projectile.NewReference("rk45", integrators.NewRK45())
	}

	return r
}

func (r *Registry) GetAdvancer(name string) (projectile.Advancer, error) {
	fn, ok := r.advancers[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListAdvancers() []string {
	names := make([]string, 0, len(r.advancers))
	for name := range r.advancers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(cfg projectile.Config) []projectile.Metric {
	return metrics.Standard(cfg)
}

// Build returns an experiment for scheme wired with the default metrics.
func (r *Registry) Build(scheme string, cfg projectile.Config) (*Experiment, error) {
	adv, err := r.GetAdvancer(scheme)
	if err != nil {
		return nil, err
	}
	exp := New(Config{Scheme: scheme, Projectile: cfg})
	if err := exp.Setup(adv, r.DefaultMetrics(cfg)); err != nil {
		return nil, err
	}
	return exp, nil
}

// Factory adapts the registry to callers that need a fresh advancer per run.
func (r *Registry) Factory(scheme string) (func() projectile.Advancer, error) {
	fn, ok := r.advancers[scheme]
	if !ok {
		return nil, fmt.Errorf("unknown scheme: %s", scheme)
	}
	return fn, nil
}

// RunScheme builds and runs scheme against cfg in one call.
func (r *Registry) RunScheme(ctx context.Context, scheme string, cfg projectile.Config) (*projectile.Trace, error) {
	exp, err := r.Build(scheme, cfg)
	if err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}
