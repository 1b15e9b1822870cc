package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/trajsim/internal/projectile"
)

func ballConfig() projectile.Config {
	return projectile.Config{
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

func runTrace(t *testing.T, adv projectile.Advancer) *projectile.Trace {
	t.Helper()
	trace, err := projectile.New(adv).Run(context.Background(), ballConfig())
	require.NoError(t, err)
	trace.Metrics["range"] = trace.Range()
	return trace
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	trace := runTrace(t, projectile.NewEuler())
	runID, err := st.Save(ballConfig(), trace)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "euler_"))

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "euler", meta.Scheme)
	assert.Equal(t, ballConfig(), meta.Config)
	assert.Equal(t, trace.Len()-1, meta.Steps)
	assert.True(t, meta.Complete)
	assert.Equal(t, trace.Range(), meta.Metrics["range"])

	loaded, _, err := st.LoadTrace(runID)
	require.NoError(t, err)
	assert.True(t, loaded.Frozen())
	assert.Equal(t, trace.T, loaded.T)
	assert.Equal(t, trace.X, loaded.X)
	assert.Equal(t, trace.Y, loaded.Y)
	assert.Equal(t, trace.VY, loaded.VY)
	assert.Equal(t, trace.AX, loaded.AX)
	assert.Equal(t, trace.Angle, loaded.Angle)
	assert.Equal(t, trace.ApexIndex(), loaded.ApexIndex())
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(ballConfig(), runTrace(t, projectile.NewEuler()))
	require.NoError(t, err)
	_, err = st.Save(ballConfig(), runTrace(t, projectile.NewAnalytic()))
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "euler", runs[0].Scheme)
	assert.Equal(t, "analytic", runs[1].Scheme)
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runID, err := st.Save(ballConfig(), runTrace(t, projectile.NewEuler()))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, runID, "metadata.json"))
	assert.FileExists(t, filepath.Join(dir, runID, "states.csv"))

	require.NoError(t, st.Delete(runID))
	assert.NoDirExists(t, filepath.Join(dir, runID))
	assert.Error(t, st.Delete(runID))
}

func TestLoadTraceRejectsCorruptRows(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runID, err := st.Save(ballConfig(), runTrace(t, projectile.NewEuler()))
	require.NoError(t, err)

	csvPath := filepath.Join(dir, runID, "states.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("t,x,y,vx,vy,speed,angle,ax,ay\n0,0,0,1,1,abc,0,0,0\n"), 0644))

	_, _, err = st.LoadTrace(runID)
	assert.ErrorContains(t, err, "speed")
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	trace := runTrace(t, projectile.NewAnalytic())
	require.NoError(t, ExportJSON(&buf, ballConfig(), trace))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "analytic", data.Scheme)
	assert.Len(t, data.X, trace.Len())
	assert.Nil(t, data.AX, "analytic traces carry no acceleration")
	assert.Equal(t, trace.Len()-1, data.Steps)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	trace := runTrace(t, projectile.NewEuler())
	require.NoError(t, WriteCSV(&buf, trace))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "t,x,y,vx,vy,speed,angle,ax,ay", lines[0])
	assert.Len(t, lines, trace.Len()+1)
}
