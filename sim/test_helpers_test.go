package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustParse builds a grid and its carts from literal rows.
func mustParse(t *testing.T, policy CartCellPolicy, rows ...string) (*Grid, []*Cart) {
	t.Helper()
	g, carts, err := ParseGrid(strings.NewReader(strings.Join(rows, "\n")), policy)
	require.NoError(t, err)
	return g, carts
}

// runToEnd runs a simulator with no tick limit and collects its snapshots.
func runToEnd(t *testing.T, g *Grid, carts []*Cart) (*Simulator, *Result, []Snapshot) {
	t.Helper()
	var snaps []Snapshot
	s := NewSimulator(g, carts, Config{OnSnapshot: func(snap Snapshot) { snaps = append(snaps, snap) }})
	res, err := s.Run()
	require.NoError(t, err)
	return s, res, snaps
}

// cloneCarts deep-copies carts so two simulators never share state.
func cloneCarts(carts []*Cart) []*Cart {
	out := make([]*Cart, len(carts))
	for i, c := range carts {
		cp := *c
		out[i] = &cp
	}
	return out
}
