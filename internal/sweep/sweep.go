// Package sweep runs one projectile configuration over a range of launch
// angles and reports the angle with the greatest range.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/trajsim/internal/projectile"
)

// Sweep visits Count angles starting at Start (radians), Step apart.
// Workers > 1 runs samples concurrently.
type Sweep struct {
	Start   float64
	Step    float64
	Count   int
	Workers int
}

// Default is 350 angles from 25° in 0.001 rad increments.
func Default() Sweep {
	return Sweep{
		Start: 25 * math.Pi / 180,
		Step:  0.001,
		Count: 350,
	}
}

type Sample struct {
	Angle    float64 `json:"angle"`
	Range    float64 `json:"range"`
	Steps    int     `json:"steps"`
	Complete bool    `json:"complete"`
}

type Result struct {
	Samples   []Sample `json:"samples"`
	BestAngle float64  `json:"best_angle"`
	BestRange float64  `json:"best_range"`
	BestIndex int      `json:"best_index"`
}

// Factory returns a fresh advancer; it is called once per sample.
type Factory func() projectile.Advancer

func (s Sweep) Angles() []float64 {
	angles := make([]float64, s.Count)
	theta := s.Start
	for i := range angles {
		angles[i] = theta
		theta += s.Step
	}
	return angles
}

// Run simulates base at every angle of the sweep. A run that hits the step
// cap still contributes its final position and is marked incomplete; any
// other failure aborts the sweep.
func (s Sweep) Run(ctx context.Context, base projectile.Config, factory Factory) (*Result, error) {
	if s.Count <= 0 {
		return nil, fmt.Errorf("sweep: count must be positive, got %d", s.Count)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	angles := s.Angles()
	samples := make([]Sample, len(angles))

	g, gctx := errgroup.WithContext(ctx)
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, theta := range angles {
		i, theta := i, theta
		g.Go(func() error {
			sample, err := runOne(gctx, base.WithAngle(theta), factory())
			if err != nil {
				return fmt.Errorf("angle %.4f rad: %w", theta, err)
			}
			samples[i] = sample
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return best(samples), nil
}

func runOne(ctx context.Context, cfg projectile.Config, adv projectile.Advancer) (Sample, error) {
	trace, err := projectile.New(adv).Run(ctx, cfg)
	if err != nil && !errors.Is(err, projectile.ErrRunaway) {
		return Sample{}, err
	}
	return Sample{
		Angle:    cfg.Angle,
		Range:    trace.Range(),
		Steps:    trace.Len() - 1,
		Complete: trace.Complete,
	}, nil
}

// best keeps the first sample unless a later one is strictly farther.
func best(samples []Sample) *Result {
	res := &Result{
		Samples:   samples,
		BestAngle: samples[0].Angle,
		BestRange: samples[0].Range,
	}
	for i, s := range samples[1:] {
		if s.Range > res.BestRange {
			res.BestRange = s.Range
			res.BestAngle = s.Angle
			res.BestIndex = i + 1
		}
	}
	return res
}
