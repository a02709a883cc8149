package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cartsim/cartsim/sim"
	"github.com/cartsim/cartsim/sim/trace"
)

func defaultOptions() runOptions {
	return runOptions{CartCells: sim.CartCellRaw, TraceLevel: trace.TraceLevelNone, PrintSnapshots: true}
}

func TestRunSimulation_PrintsSnapshotsAndResults(t *testing.T) {
	// GIVEN a loop with two carts meeting on tick 2
	track := "/->---<-\\\n|       |\n\\-------/\n"
	var out bytes.Buffer

	// WHEN the simulation runs with snapshots on
	err := runSimulation(defaultOptions(), strings.NewReader(track), &out)
	require.NoError(t, err)

	// THEN each tick prints a snapshot line, then both results
	assert.Equal(t, "[3,0 5,0]\n[]\nfirst collision: 4,0\nlast cart: none\n", out.String())
}

func TestRunSimulation_SurvivorPrinted(t *testing.T) {
	track := "/->-<-\\\n|     |\n\\--<--/\n"
	opts := defaultOptions()
	opts.PrintSnapshots = false
	var out bytes.Buffer

	require.NoError(t, runSimulation(opts, strings.NewReader(track), &out))

	assert.Equal(t, "first collision: 3,0\nlast cart: 2,2\n", out.String())
}

func TestRunSimulation_OffTrack_ReturnsError(t *testing.T) {
	var out bytes.Buffer
	err := runSimulation(defaultOptions(), strings.NewReader("->-->--\n"), &out)
	assert.ErrorIs(t, err, sim.ErrOffTrack)
}

func TestRunSimulation_NoCarts_ReturnsError(t *testing.T) {
	var out bytes.Buffer
	err := runSimulation(defaultOptions(), strings.NewReader("/-\\\n\\-/\n"), &out)
	assert.ErrorIs(t, err, sim.ErrNoCarts)
}

func TestRunSimulation_WritesResultsFile(t *testing.T) {
	// GIVEN a results path and collision tracing
	path := filepath.Join(t.TempDir(), "results.json")
	opts := defaultOptions()
	opts.PrintSnapshots = false
	opts.TraceLevel = trace.TraceLevelCollisions
	opts.ResultsPath = path
	var out bytes.Buffer

	// WHEN the simulation runs
	require.NoError(t, runSimulation(opts, strings.NewReader("->-<-\n"), &out))

	// THEN the JSON report carries results, metrics and the trace summary
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report struct {
		Results struct {
			FirstCollision *struct{ X, Y int } `json:"first_collision"`
			LastSurvivor   *struct{ X, Y int } `json:"last_survivor"`
			StopReason     string              `json:"stop_reason"`
		} `json:"results"`
		Metrics struct {
			Collisions int `json:"collisions"`
		} `json:"metrics"`
		Trace struct {
			TotalCollisions int `json:"total_collisions"`
			CartsLost       int `json:"carts_lost"`
		} `json:"trace_summary"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotNil(t, report.Results.FirstCollision)
	assert.Equal(t, 2, report.Results.FirstCollision.X)
	assert.Nil(t, report.Results.LastSurvivor)
	assert.Equal(t, "no-survivors", report.Results.StopReason)
	assert.Equal(t, 1, report.Metrics.Collisions)
	assert.Equal(t, 1, report.Trace.TotalCollisions)
	assert.Equal(t, 2, report.Trace.CartsLost)
}

func TestRunSimulation_MetricsPrintedAtDebug(t *testing.T) {
	old := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() { logrus.SetLevel(old) })

	var out bytes.Buffer
	opts := defaultOptions()
	opts.PrintSnapshots = false
	require.NoError(t, runSimulation(opts, strings.NewReader("->-<-\n"), &out))

	assert.Contains(t, out.String(), "=== Simulation Metrics ===")
}

func TestApplyRunConfig_FlagsOverrideFile(t *testing.T) {
	// GIVEN a config file value for every option
	ticks, render := 100, 7
	strict, snaps := true, false
	cfg := &sim.RunConfig{
		MaxTicks:       &ticks,
		CartCells:      "track",
		StrictTrack:    &strict,
		TraceLevel:     "ticks",
		PrintSnapshots: &snaps,
		RenderEvery:    &render,
	}
	opts := defaultOptions()
	opts.MaxTicks = 5

	// WHEN only --max-ticks was set on the command line
	applyRunConfig(&opts, cfg, func(name string) bool { return name == "max-ticks" })

	// THEN the flag wins for max-ticks and the file wins elsewhere
	assert.Equal(t, 5, opts.MaxTicks)
	assert.Equal(t, sim.CartCellTrack, opts.CartCells)
	assert.True(t, opts.StrictTrack)
	assert.Equal(t, trace.TraceLevelTicks, opts.TraceLevel)
	assert.False(t, opts.PrintSnapshots)
	assert.Equal(t, 7, opts.RenderEvery)
}

func TestApplyRunConfig_UnsetFieldsKeepDefaults(t *testing.T) {
	opts := defaultOptions()
	applyRunConfig(&opts, &sim.RunConfig{}, func(string) bool { return false })
	assert.Equal(t, defaultOptions(), opts)
}

func TestFormatCoord_NilIsNone(t *testing.T) {
	assert.Equal(t, "none", formatCoord(nil))
	assert.Equal(t, "7,3", formatCoord(&sim.Coord{X: 7, Y: 3}))
}
