package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Step_TurnIndexAdvancesOnlyAtIntersections(t *testing.T) {
	// GIVEN a cart heading right over straight, curve and intersection cells
	g, carts := mustParse(t, CartCellRaw,
		">-+-\\",
		"    |",
	)
	cart := carts[0]

	// WHEN it moves onto straight track
	seg, err := cart.step(g, false)
	require.NoError(t, err)
	assert.Equal(t, SegmentStraight, seg)
	assert.Zero(t, cart.TurnIndex)

	// WHEN it moves onto an intersection it turns left (up) and counts the visit
	seg, err = cart.step(g, false)
	require.NoError(t, err)
	assert.Equal(t, SegmentIntersection, seg)
	assert.Equal(t, Up, cart.Heading)
	assert.Equal(t, 1, cart.TurnIndex)
}

func TestCart_Step_CurveDoesNotAdvanceTurnIndex(t *testing.T) {
	g, carts := mustParse(t, CartCellRaw,
		">\\",
		" |",
	)
	cart := carts[0]
	seg, err := cart.step(g, false)
	require.NoError(t, err)
	assert.Equal(t, SegmentBackCurve, seg)
	assert.Equal(t, Down, cart.Heading)
	assert.Zero(t, cart.TurnIndex)
}

func TestCart_Step_OffGrid_ReturnsErrOffTrack(t *testing.T) {
	g, carts := mustParse(t, CartCellRaw, "->")
	_, err := carts[0].step(g, false)
	assert.ErrorIs(t, err, ErrOffTrack)
}

func TestCart_Step_StrictTrack_RejectsBlankCell(t *testing.T) {
	// GIVEN a cart facing a blank cell that is present in the grid
	g, carts := mustParse(t, CartCellRaw, "> -")

	// WHEN strict mode is on, the move is fatal
	c := *carts[0]
	_, err := c.step(g, true)
	assert.ErrorIs(t, err, ErrOffTrack)

	// WHEN strict mode is off, the blank behaves as straight track
	seg, err := carts[0].step(g, false)
	require.NoError(t, err)
	assert.Equal(t, SegmentEmpty, seg)
	assert.Equal(t, Right, carts[0].Heading)
}

func TestCart_Hits(t *testing.T) {
	a := NewCart(0, Coord{1, 1}, Up)
	b := NewCart(1, Coord{1, 1}, Down)
	assert.True(t, a.hits(b))
	assert.False(t, a.hits(a), "a cart never hits itself")
	b.Alive = false
	assert.False(t, a.hits(b), "dead carts are not hit")
	b.Alive = true
	b.Position = Coord{2, 1}
	assert.False(t, a.hits(b))
}
