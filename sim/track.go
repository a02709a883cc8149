package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOffTrack is returned when a cart lands on a coordinate that holds no track.
var ErrOffTrack = errors.New("cart left the track")

// Coord is an integer grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the coordinate one step along h.
func (c Coord) Add(h Heading) Coord {
	return Coord{X: c.X + h.DX, Y: c.Y + h.DY}
}

// Less reports whether c comes before o in row-major order.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// SegmentKind classifies the track symbol stored at a grid cell.
type SegmentKind int

const (
	SegmentNone SegmentKind = iota
	SegmentStraight
	SegmentIntersection
	SegmentForwardCurve
	SegmentBackCurve
	// SegmentCartStart is a cart glyph left in the grid under CartCellRaw.
	SegmentCartStart
	SegmentEmpty
)

var segmentNames = map[SegmentKind]string{
	SegmentNone:         "none",
	SegmentStraight:     "straight",
	SegmentIntersection: "intersection",
	SegmentForwardCurve: "forward-curve",
	SegmentBackCurve:    "back-curve",
	SegmentCartStart:    "cart-start",
	SegmentEmpty:        "empty",
}

func (k SegmentKind) String() string {
	if name, ok := segmentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("segment(%d)", int(k))
}

func classify(c rune) SegmentKind {
	switch c {
	case '-', '|':
		return SegmentStraight
	case '+':
		return SegmentIntersection
	case '/':
		return SegmentForwardCurve
	case '\\':
		return SegmentBackCurve
	}
	if _, ok := headingGlyphs[c]; ok {
		return SegmentCartStart
	}
	return SegmentEmpty
}

// CartCellPolicy decides what the grid stores at a cart's starting cell.
type CartCellPolicy string

const (
	// CartCellRaw keeps the cart glyph in the grid. This matches the
	// reference outputs; the glyph never turns a cart.
	CartCellRaw CartCellPolicy = "raw"
	// CartCellTrack stores the straight track implied by the glyph.
	CartCellTrack CartCellPolicy = "track"
)

// ValidCartCellPolicies is the set of recognized cart cell policies.
var ValidCartCellPolicies = map[CartCellPolicy]bool{"": true, CartCellRaw: true, CartCellTrack: true}

// Grid is the immutable track layout. It is never modified after ParseGrid.
type Grid struct {
	cells  map[Coord]rune
	width  int
	height int
}

// ParseGrid reads one grid row per line from r. Every character is stored at
// (column, row); every cart glyph also yields a cart, in scan order.
func ParseGrid(r io.Reader, policy CartCellPolicy) (*Grid, []*Cart, error) {
	if !ValidCartCellPolicies[policy] {
		return nil, nil, fmt.Errorf("unknown cart cell policy %q", policy)
	}
	g := &Grid{cells: make(map[Coord]rune)}
	var carts []*Cart

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	y := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		x := 0
		for _, c := range line {
			pos := Coord{X: x, Y: y}
			if h, ok := HeadingFromGlyph(c); ok {
				carts = append(carts, NewCart(len(carts), pos, h))
				if policy == CartCellTrack {
					c = trackBeneath(h)
				}
			}
			g.cells[pos] = c
			x++
		}
		g.width = max(g.width, x)
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading track: %w", err)
	}
	g.height = y
	return g, carts, nil
}

func trackBeneath(h Heading) rune {
	if h == Up || h == Down {
		return '|'
	}
	return '-'
}

// SegmentAt returns the segment kind stored at c.
func (g *Grid) SegmentAt(c Coord) (SegmentKind, error) {
	r, ok := g.cells[c]
	if !ok {
		return SegmentNone, fmt.Errorf("no cell at %v: %w", c, ErrOffTrack)
	}
	return classify(r), nil
}

// Width is the length of the longest input line.
func (g *Grid) Width() int { return g.width }

// Height is the number of input lines.
func (g *Grid) Height() int { return g.height }

// Render draws the track with alive carts on top. Cells holding more than
// one alive cart are drawn as 'X'.
func (g *Grid) Render(carts []*Cart) string {
	overlay := make(map[Coord]rune)
	for _, c := range carts {
		if !c.Alive {
			continue
		}
		if _, taken := overlay[c.Position]; taken {
			overlay[c.Position] = 'X'
		} else {
			overlay[c.Position] = c.Heading.Glyph()
		}
	}

	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		row := make([]rune, 0, g.width)
		for x := 0; x < g.width; x++ {
			pos := Coord{X: x, Y: y}
			if c, ok := overlay[pos]; ok {
				row = append(row, c)
			} else if c, ok := g.cells[pos]; ok {
				row = append(row, c)
			} else {
				row = append(row, ' ')
			}
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
