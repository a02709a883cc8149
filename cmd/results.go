package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	sim "github.com/cartsim/cartsim/sim"
	"github.com/cartsim/cartsim/sim/trace"
)

// RunReport is the JSON document written by --results.
type RunReport struct {
	Results    *sim.Result             `json:"results"`
	Metrics    *sim.Metrics            `json:"metrics"`
	Trace      *trace.TraceSummary     `json:"trace_summary,omitempty"`
	Collisions []trace.CollisionRecord `json:"collisions,omitempty"`
}

// SaveResults writes the run outcome as indented JSON to path.
// The trace may be nil when tracing is off.
func SaveResults(path string, res *sim.Result, metrics *sim.Metrics, st *trace.SimulationTrace) error {
	report := RunReport{Results: res, Metrics: metrics}
	if st != nil {
		report.Trace = trace.Summarize(st)
		report.Collisions = st.Collisions
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
