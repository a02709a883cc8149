package sim

import (
	"github.com/cartsim/cartsim/sim/trace"
)

// Config groups the knobs a Simulator honours.
type Config struct {
	MaxTicks    int              // stop after this many ticks; 0 means run until a terminal state
	StrictTrack bool             // landing on a blank cell is fatal, like landing outside the grid
	RenderEvery int              // log the rendered grid at trace level every N ticks (0 = never)
	Trace       trace.TraceLevel // collision / tick recording
	OnSnapshot  func(Snapshot)   // called after every completed tick (optional)
}

// NewConfig returns a Config with every field set explicitly.
func NewConfig(maxTicks int, strictTrack bool, renderEvery int, level trace.TraceLevel) Config {
	return Config{
		MaxTicks:    maxTicks,
		StrictTrack: strictTrack,
		RenderEvery: renderEvery,
		Trace:       level,
	}
}
