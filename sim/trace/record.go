// Package trace provides collision and tick recording for cart simulations.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Cell is a grid coordinate as recorded in a trace.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CollisionRecord captures a single collision.
type CollisionRecord struct {
	Tick     int   `json:"tick"`
	Position Cell  `json:"position"`
	CartIDs  []int `json:"cart_ids"` // mover first, then every cart it hit
	First    bool  `json:"first"`    // true for the collision reported as the first crash
}

// TickRecord captures the alive cart positions at the end of a tick.
type TickRecord struct {
	Tick      int    `json:"tick"`
	Positions []Cell `json:"positions"`
}
