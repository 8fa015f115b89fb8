package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/flowstation/internal/config"
	"github.com/san-kum/flowstation/internal/experiment"
)

func runPreset(t *testing.T, category, name string, opts ...experiment.Option) *experiment.Result {
	t.Helper()
	res, err := experiment.New(config.GetPreset(category, name), opts...).Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestStore_SaveLoad(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "runs"))
	require.NoError(t, store.Init())

	res := runPreset(t, "combustor", "bleed")
	id, err := store.Save(res)
	require.NoError(t, err)
	assert.Equal(t, res.ID, id)

	meta, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "combustor/bleed", meta.Name)
	assert.Equal(t, 3, meta.Steps)
	assert.Equal(t, 112.5, meta.Final.W)
	require.NotNil(t, meta.Final.Total)
	assert.InEpsilon(t, res.Final().Total.Tt, meta.Final.Total.Tt, 1e-12)
	require.NotNil(t, meta.Scenario)
	assert.Equal(t, "keep_pressure", meta.Scenario.Solver.MixPolicy)

	labels, rows, err := store.LoadStations(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"inlet", "burn cxhy", "mix 0"}, labels)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], len(StationColumns))
	assert.InEpsilon(t, 1100, rows[0][3], 1e-9)
	assert.True(t, math.IsNaN(rows[0][9]), "no static state recorded")

	_, err = os.Stat(filepath.Join(store.baseDir, id, "sweep.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_StagnantArea(t *testing.T) {
	store := New(t.TempDir())

	cfg := config.GetPreset("nozzle", "subsonic")
	cfg.Static = config.StaticConfig{By: "mach", Value: 0}
	res, err := experiment.New(cfg).Run(context.Background())
	require.NoError(t, err)
	id, err := store.Save(res)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.baseDir, id, "stations.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "+Inf")

	_, rows, err := store.LoadStations(id)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, math.IsInf(rows[1][15], 1), "area at Mach 0")
	assert.Zero(t, rows[1][14])
}

func TestStore_SweepAndList(t *testing.T) {
	store := New(t.TempDir())

	first := runPreset(t, "nozzle", "subsonic")
	second := runPreset(t, "nozzle", "supersonic", experiment.WithSweep())
	_, err := store.Save(first)
	require.NoError(t, err)
	_, err = store.Save(second)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(store.baseDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(store.baseDir, "scratch"), 0755))

	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, len(second.Sweep), runs[0].SweepSize)

	data, err := os.ReadFile(filepath.Join(store.baseDir, second.ID, "sweep.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "value,ts,ps,mach,area,vflow,error")
}

func TestStore_Errors(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"))

	runs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = store.Load("../etc")
	assert.ErrorIs(t, err, ErrInvalidRunID)
	_, _, err = store.LoadStations("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidRunID)

	_, err = store.Save(&experiment.Result{ID: "bad"})
	assert.ErrorIs(t, err, ErrInvalidRunID)
}

func TestExportJSON(t *testing.T) {
	cfg := config.GetPreset("nozzle", "subsonic")
	cfg.Sweep.MachFrom = 0
	cfg.Sweep.Points = 4
	res, err := experiment.New(cfg, experiment.WithSweep()).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportJSONTo(&buf, res))

	var back ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, res.ID, back.ID)
	require.Len(t, back.Sweep, 4)
	assert.Zero(t, back.Sweep[0].Area, "stagnant point has no finite area")
	assert.Len(t, back.Steps, 2)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, ExportJSON(path, res))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
