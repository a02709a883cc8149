// Package sim provides the cart track simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - track.go: Coord, SegmentKind and the immutable Grid parsed from text
//   - heading.go: Headings and the turn tables (intersections, '/' and '\' curves)
//   - cart.go: Cart state and the single-cell move-then-turn step
//   - simulator.go: The tick loop, collision resolution and run termination
//
// # Tick protocol
//
// Each tick sorts the alive carts in row-major order (y, then x), then moves
// them one at a time. After every individual move the mover is compared with
// all other alive carts; every cart sharing its cell dies together with it.
// Dead carts are dropped at the end of the tick and the remaining positions
// form the tick's Snapshot. The first collision position and the last
// surviving cart are reported as optional results.
//
// Sub-packages:
//   - sim/trace/: collision and tick recording
package sim
