package optim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

func builder(t *testing.T, preset string) func(map[string]float64) (*experiment.Experiment, error) {
	t.Helper()
	reg := experiment.NewRegistry()
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := config.GetPreset(preset)
		for k, v := range params {
			if err := cfg.Set(k, v); err != nil {
				return nil, err
			}
		}
		return reg.Build(cfg.Scheme, cfg.Projectile())
	}
}

func TestGridSearchVacuumOptimum(t *testing.T) {
	gs := NewGridSearch([]string{"angle"}, [][]float64{Linspace(30, 60, 7)}, true)
	assert.Equal(t, 7, gs.Evaluated())

	params, best, err := gs.Search(context.Background(), builder(t, "vacuum"), "range")
	require.NoError(t, err)
	assert.Equal(t, 45.0, params["angle"])
	assert.InDelta(t, 30*30/9.8, best, 0.5)
}

func TestGridSearchMinimize(t *testing.T) {
	gs := NewGridSearch(
		[]string{"angle", "drag_coefficient"},
		[][]float64{{30, 45}, {0.2, 0.5, 1.0}},
		false,
	)
	params, _, err := gs.Search(context.Background(), builder(t, "ball"), "max_height")
	require.NoError(t, err)
	assert.Equal(t, 30.0, params["angle"])
	assert.Equal(t, 1.0, params["drag_coefficient"])
}

func TestGridSearchErrors(t *testing.T) {
	gs := NewGridSearch([]string{"spin"}, [][]float64{{1}}, true)
	_, _, err := gs.Search(context.Background(), builder(t, "ball"), "range")
	assert.ErrorContains(t, err, "unknown parameter")

	gs = NewGridSearch([]string{"angle"}, [][]float64{{45}}, true)
	_, _, err = gs.Search(context.Background(), builder(t, "ball"), "wobble")
	assert.ErrorContains(t, err, "unknown metric")

	gs = NewGridSearch([]string{"angle", "speed"}, [][]float64{{45}}, true)
	_, _, err = gs.Search(context.Background(), builder(t, "ball"), "range")
	assert.Error(t, err)
}

func TestParseAxis(t *testing.T) {
	name, vals, err := ParseAxis("angle=20:60:5")
	require.NoError(t, err)
	assert.Equal(t, "angle", name)
	assert.Equal(t, []float64{20, 30, 40, 50, 60}, vals)

	for _, bad := range []string{"angle", "=1:2:3", "angle=1:2", "angle=a:2:3", "angle=1:2:0"} {
		_, _, err := ParseAxis(bad)
		assert.Error(t, err, bad)
	}
}
