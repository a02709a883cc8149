// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cartsim/cartsim/sim/trace"
)

var (
	// ErrSimulationDone is returned by Tick once a terminal state was reached.
	ErrSimulationDone = errors.New("simulation already finished")
	// ErrNoCarts is returned by Run when the track holds no carts.
	ErrNoCarts = errors.New("no carts on the track")
)

// StopReason explains why a run ended.
type StopReason string

const (
	StopSingleSurvivor StopReason = "single-survivor"
	StopNoSurvivors    StopReason = "no-survivors"
	StopTickLimit      StopReason = "tick-limit"
	StopOffTrack       StopReason = "off-track"
)

// Snapshot is the list of alive cart positions at the end of a tick, in list order.
type Snapshot struct {
	Tick      int
	Positions []Coord
}

func (s Snapshot) String() string {
	parts := make([]string, len(s.Positions))
	for i, p := range s.Positions {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Result is the outcome of a run. Nil coordinates mean "not observed".
type Result struct {
	FirstCollision *Coord     `json:"first_collision"`
	LastSurvivor   *Coord     `json:"last_survivor"`
	Ticks          int        `json:"ticks"`
	Reason         StopReason `json:"stop_reason"`
}

// Simulator owns the live cart list and advances it one tick at a time.
// It is single-threaded: the per-tick move order is part of the result.
type Simulator struct {
	Grid    *Grid
	Metrics *Metrics
	// Trace is nil unless Config.Trace asks for recording.
	Trace *trace.SimulationTrace

	cfg            Config
	carts          []*Cart
	tick           int
	firstCollision *Coord
	lastSurvivor   *Coord
	done           bool
	reason         StopReason
}

// NewSimulator creates a simulator over grid. The carts slice is copied;
// the Cart values themselves become owned by the simulator.
func NewSimulator(grid *Grid, carts []*Cart, cfg Config) *Simulator {
	s := &Simulator{
		Grid:    grid,
		Metrics: NewMetrics(len(carts)),
		cfg:     cfg,
		carts:   append([]*Cart(nil), carts...),
	}
	if cfg.Trace != "" && cfg.Trace != trace.TraceLevelNone {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.Trace})
	}
	return s
}

// Tick advances every alive cart by one cell in row-major order, resolving
// collisions after each individual move.
func (sim *Simulator) Tick() (Snapshot, error) {
	if sim.done {
		return Snapshot{}, ErrSimulationDone
	}
	sim.tick++
	logrus.Debugf("[tick %07d] Moving %d carts", sim.tick, len(sim.carts))

	sort.SliceStable(sim.carts, func(i, j int) bool {
		return sim.carts[i].Position.Less(sim.carts[j].Position)
	})

	for _, cart := range sim.carts {
		// killed earlier in this tick by a cart that moved before it
		if !cart.Alive {
			continue
		}
		seg, err := cart.step(sim.Grid, sim.cfg.StrictTrack)
		if err != nil {
			sim.done = true
			sim.reason = StopOffTrack
			return Snapshot{}, fmt.Errorf("tick %d: %w", sim.tick, err)
		}
		sim.Metrics.recordMove(seg)
		sim.resolveCollision(cart)
	}

	alive := make([]*Cart, 0, len(sim.carts))
	for _, cart := range sim.carts {
		if cart.Alive {
			alive = append(alive, cart)
		}
	}
	sim.carts = alive
	sim.Metrics.Ticks++

	snap := Snapshot{Tick: sim.tick, Positions: make([]Coord, len(alive))}
	for i, cart := range alive {
		snap.Positions[i] = cart.Position
	}
	sim.recordTick(snap)
	if sim.cfg.RenderEvery > 0 && sim.tick%sim.cfg.RenderEvery == 0 && logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("[tick %07d] Track\n%s", sim.tick, sim.Grid.Render(alive))
	}
	if sim.cfg.OnSnapshot != nil {
		sim.cfg.OnSnapshot(snap)
	}

	switch len(alive) {
	case 1:
		pos := alive[0].Position
		sim.lastSurvivor = &pos
		sim.finish(StopSingleSurvivor)
	case 0:
		sim.finish(StopNoSurvivors)
	}
	return snap, nil
}

// resolveCollision kills mover and every alive cart sharing its cell.
func (sim *Simulator) resolveCollision(mover *Cart) {
	var hit []int
	for _, other := range sim.carts {
		if mover.hits(other) {
			other.Alive = false
			hit = append(hit, other.ID)
		}
	}
	if len(hit) == 0 {
		return
	}
	mover.Alive = false

	first := false
	if sim.firstCollision == nil {
		pos := mover.Position
		sim.firstCollision = &pos
		first = true
	}
	ids := append([]int{mover.ID}, hit...)
	sim.Metrics.recordCollision(len(ids))
	logrus.Infof("[tick %07d] Collision at %v between carts %v", sim.tick, mover.Position, ids)
	if sim.Trace != nil {
		sim.Trace.RecordCollision(trace.CollisionRecord{
			Tick:     sim.tick,
			Position: trace.Cell{X: mover.Position.X, Y: mover.Position.Y},
			CartIDs:  ids,
			First:    first,
		})
	}
}

func (sim *Simulator) recordTick(snap Snapshot) {
	if sim.Trace == nil {
		return
	}
	cells := make([]trace.Cell, len(snap.Positions))
	for i, p := range snap.Positions {
		cells[i] = trace.Cell{X: p.X, Y: p.Y}
	}
	sim.Trace.RecordTick(trace.TickRecord{Tick: snap.Tick, Positions: cells})
}

func (sim *Simulator) finish(reason StopReason) {
	sim.done = true
	sim.reason = reason
	logrus.Infof("[tick %07d] Simulation ended: %s", sim.tick, reason)
}

// Run ticks until a terminal state is reached, or until Config.MaxTicks
// ticks have run when that is positive.
func (sim *Simulator) Run() (*Result, error) {
	if len(sim.carts) == 0 && sim.tick == 0 {
		return nil, ErrNoCarts
	}
	for !sim.done {
		if sim.cfg.MaxTicks > 0 && sim.tick >= sim.cfg.MaxTicks {
			sim.reason = StopTickLimit
			logrus.Infof("[tick %07d] Tick limit reached with %d carts left", sim.tick, len(sim.carts))
			break
		}
		if _, err := sim.Tick(); err != nil {
			return sim.Result(), err
		}
	}
	return sim.Result(), nil
}

// Result reports the outcome so far.
func (sim *Simulator) Result() *Result {
	res := &Result{Ticks: sim.tick, Reason: sim.reason}
	if pos, ok := sim.FirstCollision(); ok {
		res.FirstCollision = &pos
	}
	if pos, ok := sim.LastSurvivor(); ok {
		res.LastSurvivor = &pos
	}
	return res
}

// FirstCollision returns the position of the first collision, if any.
func (sim *Simulator) FirstCollision() (Coord, bool) {
	if sim.firstCollision == nil {
		return Coord{}, false
	}
	return *sim.firstCollision, true
}

// LastSurvivor returns the position of the only remaining cart, if the run
// ended with exactly one.
func (sim *Simulator) LastSurvivor() (Coord, bool) {
	if sim.lastSurvivor == nil {
		return Coord{}, false
	}
	return *sim.lastSurvivor, true
}

// Done reports whether the simulation reached a terminal state.
func (sim *Simulator) Done() bool { return sim.done }

// TickCount is the number of ticks started so far.
func (sim *Simulator) TickCount() int { return sim.tick }

// Carts returns the live cart list in its current order.
func (sim *Simulator) Carts() []*Cart {
	return append([]*Cart(nil), sim.carts...)
}
