package trace

// TraceLevel controls the verbosity of simulation tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelCollisions captures every collision.
	TraceLevelCollisions TraceLevel = "collisions"
	// TraceLevelTicks captures collisions and every end-of-tick snapshot.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelCollisions: true,
	TraceLevelTicks:      true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects records during a cart simulation.
type SimulationTrace struct {
	Config     TraceConfig
	Collisions []CollisionRecord
	Ticks      []TickRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Collisions: make([]CollisionRecord, 0),
		Ticks:      make([]TickRecord, 0),
	}
}

// Enabled reports whether anything is recorded at all.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level != TraceLevelNone && st.Config.Level != ""
}

// RecordCollision appends a collision record.
func (st *SimulationTrace) RecordCollision(record CollisionRecord) {
	if !st.Enabled() {
		return
	}
	st.Collisions = append(st.Collisions, record)
}

// RecordTick appends a tick snapshot. Only kept at TraceLevelTicks.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	if st == nil || st.Config.Level != TraceLevelTicks {
		return
	}
	st.Ticks = append(st.Ticks, record)
}
