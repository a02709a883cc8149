// Tracks simulation-wide counters such as moves, turns and collisions.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation
// for final reporting. Useful for checking track coverage and
// debugging behavior over time.
type Metrics struct {
	InitialCarts       int `json:"initial_carts"`       // Carts found in the input
	Ticks              int `json:"ticks"`               // Completed ticks
	Moves              int `json:"moves"`               // Single-cell cart moves
	IntersectionVisits int `json:"intersection_visits"` // Moves that landed on '+'
	CurveTurns         int `json:"curve_turns"`         // Moves that landed on '/' or '\'
	Collisions         int `json:"collisions"`          // Collision events (one per crashing move)
	CartsLost          int `json:"carts_lost"`          // Carts removed by collisions
}

// NewMetrics creates a Metrics for a run starting with n carts.
func NewMetrics(n int) *Metrics {
	return &Metrics{InitialCarts: n}
}

func (m *Metrics) recordMove(seg SegmentKind) {
	m.Moves++
	switch seg {
	case SegmentIntersection:
		m.IntersectionVisits++
	case SegmentForwardCurve, SegmentBackCurve:
		m.CurveTurns++
	}
}

func (m *Metrics) recordCollision(carts int) {
	m.Collisions++
	m.CartsLost += carts
}

// Print writes the aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Initial Carts        : %d\n", m.InitialCarts)
	fmt.Fprintf(w, "Ticks                : %d\n", m.Ticks)
	fmt.Fprintf(w, "Moves                : %d\n", m.Moves)
	fmt.Fprintf(w, "Intersection Visits  : %d\n", m.IntersectionVisits)
	fmt.Fprintf(w, "Curve Turns          : %d\n", m.CurveTurns)
	fmt.Fprintf(w, "Collisions           : %d\n", m.Collisions)
	fmt.Fprintf(w, "Carts Lost           : %d\n", m.CartsLost)
}
