package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalCollisions int         `json:"total_collisions"`
	CartsLost       int         `json:"carts_lost"`
	LastCrashTick   int         `json:"last_crash_tick"`
	HottestCell     *Cell       `json:"hottest_cell,omitempty"` // cell with the most collisions; earliest wins ties
	TicksRecorded   int         `json:"ticks_recorded"`
	CrashesPerTick  map[int]int `json:"crashes_per_tick"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CrashesPerTick: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalCollisions = len(st.Collisions)
	summary.TicksRecorded = len(st.Ticks)

	perCell := make(map[Cell]int)
	best := 0
	for _, c := range st.Collisions {
		summary.CartsLost += len(c.CartIDs)
		summary.CrashesPerTick[c.Tick]++
		if c.Tick > summary.LastCrashTick {
			summary.LastCrashTick = c.Tick
		}
		perCell[c.Position]++
		if perCell[c.Position] > best {
			best = perCell[c.Position]
			cell := c.Position
			summary.HottestCell = &cell
		}
	}

	return summary
}
