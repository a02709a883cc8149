// Defines the Cart struct that models a single vehicle on the track.
// Tracks position, heading, the intersection turn counter, and liveness.

package sim

import "fmt"

// Cart is a vehicle moving on the track.
type Cart struct {
	ID        int     // Scan order index, stable for the cart's lifetime
	Position  Coord   // Current cell
	Heading   Heading // Direction of the next move
	TurnIndex int     // Number of intersections visited; selects the next intersection turn
	Alive     bool    // Cleared the moment the cart is involved in a collision
}

// NewCart creates an alive cart at pos heading h.
func NewCart(id int, pos Coord, h Heading) *Cart {
	return &Cart{ID: id, Position: pos, Heading: h, Alive: true}
}

// step moves the cart one cell and applies the turn for the segment it lands on.
// The returned segment kind is the one looked up at the new position.
func (c *Cart) step(g *Grid, strict bool) (SegmentKind, error) {
	c.Position = c.Position.Add(c.Heading)
	seg, err := g.SegmentAt(c.Position)
	if err != nil {
		return seg, fmt.Errorf("cart %d: %w", c.ID, err)
	}
	if strict && seg == SegmentEmpty {
		return seg, fmt.Errorf("cart %d: blank cell at %v: %w", c.ID, c.Position, ErrOffTrack)
	}
	c.Heading = Turn(c.Heading, seg, c.TurnIndex)
	if seg == SegmentIntersection {
		c.TurnIndex++
	}
	return seg, nil
}

// hits reports whether c and other are distinct alive carts sharing a cell.
func (c *Cart) hits(other *Cart) bool {
	return c != other && c.Alive && other.Alive && c.Position == other.Position
}

func (c *Cart) String() string {
	return fmt.Sprintf("cart %d at %v heading %v", c.ID, c.Position, c.Heading)
}
