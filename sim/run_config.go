package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cartsim/cartsim/sim/trace"
)

// RunConfig holds run configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML"; they leave CLI defaults alone.
// String fields use empty string for "not set".
type RunConfig struct {
	MaxTicks       *int   `yaml:"max_ticks"`
	CartCells      string `yaml:"cart_cells"`
	StrictTrack    *bool  `yaml:"strict_track"`
	TraceLevel     string `yaml:"trace_level"`
	PrintSnapshots *bool  `yaml:"print_snapshots"`
	RenderEvery    *int   `yaml:"render_every"`
}

// LoadRunConfig reads and parses a YAML run configuration file.
// Unknown keys are rejected so typos surface as errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Validate checks names and ranges in the config.
func (c *RunConfig) Validate() error {
	if !ValidCartCellPolicies[CartCellPolicy(c.CartCells)] {
		return fmt.Errorf("unknown cart_cells %q", c.CartCells)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace_level %q", c.TraceLevel)
	}
	if c.MaxTicks != nil && *c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", *c.MaxTicks)
	}
	if c.RenderEvery != nil && *c.RenderEvery < 0 {
		return fmt.Errorf("render_every must be non-negative, got %d", *c.RenderEvery)
	}
	return nil
}
