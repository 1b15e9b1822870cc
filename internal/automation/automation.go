package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/projectile"
)

// Scenario defines a scripted batch of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Params override the preset
// (or the defaults) by name; angles are in degrees.
type ScenarioStep struct {
	Name     string             `yaml:"name"`
	Preset   string             `yaml:"preset"`
	Scheme   string             `yaml:"scheme"`
	MaxSteps int                `yaml:"max_steps"`
	Params   map[string]float64 `yaml:"params"`
	Save     bool               `yaml:"save"`
}

// StepResult is the outcome of one scenario step. Err holds a runaway;
// any other failure aborts the scenario.
type StepResult struct {
	Name    string
	Config  *config.Config
	Trace   *projectile.Trace
	Summary metrics.Summary
	RunID   string
	Err     error
}

// Saver persists a finished run and returns its id.
type Saver interface {
	Save(cfg projectile.Config, trace *projectile.Trace) (string, error)
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Resolve builds the config of a step: preset, then scheme and params.
func (s ScenarioStep) Resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Scheme != "" {
		cfg.Scheme = s.Scheme
	}
	if s.MaxSteps != 0 {
		cfg.MaxSteps = s.MaxSteps
	}
	for k, v := range s.Params {
		if err := cfg.Set(k, v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// RunScenario executes all steps in a scenario, reporting progress to w.
// saver may be nil, in which case nothing is persisted.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, saver Saver, w io.Writer) ([]StepResult, error) {
	if w == nil {
		w = io.Discard
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", cfg.Scheme, i+1)
		}
		fmt.Fprintf(w, "running step %d/%d: %s (%s)\n", i+1, len(scenario.Steps), name, cfg.Scheme)

		pc := cfg.Projectile()
		trace, err := registry.RunScheme(ctx, cfg.Scheme, pc)
		if err != nil && !errors.Is(err, projectile.ErrRunaway) {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		res := StepResult{
			Name:    name,
			Config:  cfg,
			Trace:   trace,
			Summary: metrics.Summarize(trace, pc),
			Err:     err,
		}
		if step.Save && saver != nil {
			id, err := saver.Save(pc, trace)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			res.RunID = id
		}
		results = append(results, res)
	}

	return results, nil
}

// ParameterSweep runs one scheme across evenly spaced values of a named
// parameter.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds one point of a parameter sweep
type SweepResult struct {
	ParamValue float64
	Summary    metrics.Summary
	Complete   bool
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry, w io.Writer) ([]SweepResult, error) {
	if w == nil {
		w = io.Discard
	}
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if _, err := sweep.Base.Get(sweep.ParamName); err != nil {
		return nil, err
	}

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := sweep.Base.Clone()
		if err := cfg.Set(sweep.ParamName, paramVal); err != nil {
			return nil, err
		}

		pc := cfg.Projectile()
		trace, err := registry.RunScheme(ctx, cfg.Scheme, pc)
		if err != nil && !errors.Is(err, projectile.ErrRunaway) {
			return nil, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Summary:    metrics.Summarize(trace, pc),
			Complete:   trace.Complete,
		})

		fmt.Fprintf(w, "sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}

// MonteCarloConfig perturbs the launch of Base uniformly by up to
// SpeedJitter (m/s) and AngleJitter (degrees).
type MonteCarloConfig struct {
	Base        *config.Config
	SpeedJitter float64
	AngleJitter float64
	NumTrials   int
	Seed        int64
}

// MonteCarloResult holds one perturbed launch
type MonteCarloResult struct {
	TrialID  int
	Speed    float64
	AngleDeg float64
	Range    float64
	Complete bool
}

// RunMonteCarlo executes multiple trials with random launch perturbations
func RunMonteCarlo(ctx context.Context, mc *MonteCarloConfig, registry *experiment.Registry, w io.Writer) ([]MonteCarloResult, error) {
	if w == nil {
		w = io.Discard
	}

	seed := mc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]MonteCarloResult, 0, mc.NumTrials)
	for trial := 0; trial < mc.NumTrials; trial++ {
		cfg := mc.Base.Clone()
		cfg.Launch.Speed += (rng.Float64() - 0.5) * 2 * mc.SpeedJitter
		cfg.Launch.Angle += (rng.Float64() - 0.5) * 2 * mc.AngleJitter

		trace, err := registry.RunScheme(ctx, cfg.Scheme, cfg.Projectile())
		if err != nil && !errors.Is(err, projectile.ErrRunaway) {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}

		results = append(results, MonteCarloResult{
			TrialID:  trial,
			Speed:    cfg.Launch.Speed,
			AngleDeg: cfg.Launch.Angle,
			Range:    trace.Range(),
			Complete: trace.Complete,
		})

		if (trial+1)%10 == 0 {
			fmt.Fprintf(w, "monte carlo: %d/%d trials complete\n", trial+1, mc.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats summarizes the landed trials: mean and standard deviation
// of the range, and how many trials never landed.
func MonteCarloStats(results []MonteCarloResult) (mean, stddev float64, landed, incomplete int) {
	for _, r := range results {
		if !r.Complete {
			incomplete++
			continue
		}
		landed++
		mean += r.Range
	}
	if landed == 0 {
		return 0, 0, 0, incomplete
	}
	mean /= float64(landed)

	for _, r := range results {
		if r.Complete {
			stddev += (r.Range - mean) * (r.Range - mean)
		}
	}
	stddev = math.Sqrt(stddev / float64(landed))
	return
}
