package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/sweep"
)

const (
	DefaultScheme   = "euler"
	DefaultDt       = 0.005
	DefaultSpeed    = 30.0
	DefaultAngleDeg = 45.0
	DefaultMass     = 1.0
	DefaultArea     = 0.05
	DefaultCd       = 0.5
	DefaultDensity  = 1.225
	DefaultGravity  = 9.8
)

// Config is the on-disk form of a run. Angles are in degrees here and in
// radians everywhere past Projectile().
type Config struct {
	Scheme      string            `yaml:"scheme"`
	Dt          float64           `yaml:"dt"`
	MaxSteps    int               `yaml:"max_steps"`
	Launch      LaunchConfig      `yaml:"launch"`
	Body        BodyConfig        `yaml:"body"`
	Environment EnvironmentConfig `yaml:"environment"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

type LaunchConfig struct {
	Speed float64 `yaml:"speed"`
	Angle float64 `yaml:"angle"`
}

type BodyConfig struct {
	Mass            float64 `yaml:"mass"`
	Area            float64 `yaml:"area"`
	DragCoefficient float64 `yaml:"drag_coefficient"`
}

type EnvironmentConfig struct {
	Density float64 `yaml:"density"`
	Gravity float64 `yaml:"gravity"`
}

type SweepConfig struct {
	Start   float64 `yaml:"start"`
	Step    float64 `yaml:"step"`
	Count   int     `yaml:"count"`
	Workers int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme: DefaultScheme,
		Dt:     DefaultDt,
		Launch: LaunchConfig{
			Speed: DefaultSpeed,
			Angle: DefaultAngleDeg,
		},
		Body: BodyConfig{
			Mass:            DefaultMass,
			Area:            DefaultArea,
			DragCoefficient: DefaultCd,
		},
		Environment: EnvironmentConfig{
			Density: DefaultDensity,
			Gravity: DefaultGravity,
		},
		Sweep: SweepConfig{
			Start: 25,
			Step:  0.001,
			Count: 350,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOnto reads path over a copy of base; keys absent from the file keep
// base's values.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Projectile converts to the simulator's config. It does not validate.
func (c *Config) Projectile() projectile.Config {
	return projectile.Config{
		Mass:            c.Body.Mass,
		Speed:           c.Launch.Speed,
		Angle:           c.Launch.Angle * math.Pi / 180,
		Density:         c.Environment.Density,
		DragCoefficient: c.Body.DragCoefficient,
		Area:            c.Body.Area,
		Dt:              c.Dt,
		Gravity:         c.Environment.Gravity,
		MaxSteps:        c.MaxSteps,
	}
}

// SweepSpec converts the sweep block; Start is in degrees, Step in radians.
func (c *Config) SweepSpec() sweep.Sweep {
	return sweep.Sweep{
		Start:   c.Sweep.Start * math.Pi / 180,
		Step:    c.Sweep.Step,
		Count:   c.Sweep.Count,
		Workers: c.Sweep.Workers,
	}
}
