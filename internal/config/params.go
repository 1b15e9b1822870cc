package config

import (
	"fmt"
	"sort"
)

// param names accepted by Set, as written in scenario files and on the
// command line.
var params = map[string]func(c *Config) *float64{
	"dt":               func(c *Config) *float64 { return &c.Dt },
	"speed":            func(c *Config) *float64 { return &c.Launch.Speed },
	"angle":            func(c *Config) *float64 { return &c.Launch.Angle },
	"mass":             func(c *Config) *float64 { return &c.Body.Mass },
	"area":             func(c *Config) *float64 { return &c.Body.Area },
	"drag_coefficient": func(c *Config) *float64 { return &c.Body.DragCoefficient },
	"density":          func(c *Config) *float64 { return &c.Environment.Density },
	"gravity":          func(c *Config) *float64 { return &c.Environment.Gravity },
}

// Set assigns a named scalar parameter. Angles are in degrees.
func (c *Config) Set(name string, v float64) error {
	field, ok := params[name]
	if !ok {
		return fmt.Errorf("unknown parameter: %s", name)
	}
	*field(c) = v
	return nil
}

// Get reads a named scalar parameter.
func (c *Config) Get(name string) (float64, error) {
	field, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("unknown parameter: %s", name)
	}
	return *field(c), nil
}

func ParamNames() []string {
	names := make([]string, 0, len(params))
	for n := range params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
