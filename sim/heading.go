package sim

import "fmt"

// Heading is the unit direction a cart travels in.
type Heading struct {
	DX, DY int
}

var (
	Up    = Heading{0, -1}
	Down  = Heading{0, 1}
	Left  = Heading{-1, 0}
	Right = Heading{1, 0}
)

// headingGlyphs maps input characters to cart headings.
var headingGlyphs = map[rune]Heading{
	'^': Up,
	'v': Down,
	'<': Left,
	'>': Right,
}

// HeadingFromGlyph returns the heading drawn by a cart glyph.
func HeadingFromGlyph(c rune) (Heading, bool) {
	h, ok := headingGlyphs[c]
	return h, ok
}

// Glyph returns the character used to draw a cart with this heading.
func (h Heading) Glyph() rune {
	switch h {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}
	return '?'
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("heading(%d,%d)", h.DX, h.DY)
}

// Turn tables, keyed by current heading.
var (
	straightTurn     = map[Heading]Heading{Up: Up, Down: Down, Left: Left, Right: Right}
	leftTurn         = map[Heading]Heading{Up: Left, Down: Right, Left: Down, Right: Up}
	rightTurn        = map[Heading]Heading{Up: Right, Down: Left, Left: Up, Right: Down}
	forwardCurveTurn = map[Heading]Heading{Up: Right, Down: Left, Left: Down, Right: Up}
	backCurveTurn    = map[Heading]Heading{Up: Left, Down: Right, Left: Up, Right: Down}
)

// intersectionCycle is the order of turns taken at successive intersections.
var intersectionCycle = [3]map[Heading]Heading{leftTurn, straightTurn, rightTurn}

// Turn returns the heading after landing on seg. phase is the cart's
// intersection counter and only matters for SegmentIntersection.
func Turn(h Heading, seg SegmentKind, phase int) Heading {
	switch seg {
	case SegmentIntersection:
		return intersectionCycle[phase%len(intersectionCycle)][h]
	case SegmentForwardCurve:
		return forwardCurveTurn[h]
	case SegmentBackCurve:
		return backCurveTurn[h]
	default:
		return h
	}
}
