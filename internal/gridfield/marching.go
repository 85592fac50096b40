package gridfield

import (
	"fmt"

	"chameleon/internal/core"
)

// CellState packs the four corners of a 2x2 block as a*8 + b*4 + c*2 + d,
// where a is the top-left corner and the rest follow clockwise.
type CellState uint8

// Edge names one of the four edge midpoints of a cell.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// EdgePair is one isoline segment expressed as the two edges it joins.
type EdgePair [2]Edge

// segmentTable maps every CellState to the segments crossing the cell.
// Complementary states share segments; 5 and 10 are saddles and always
// produce two.
var segmentTable = [16][]EdgePair{
	0:  nil,
	1:  {{EdgeBottom, EdgeLeft}},
	2:  {{EdgeRight, EdgeBottom}},
	3:  {{EdgeRight, EdgeLeft}},
	4:  {{EdgeTop, EdgeRight}},
	5:  {{EdgeTop, EdgeLeft}, {EdgeRight, EdgeBottom}},
	6:  {{EdgeTop, EdgeBottom}},
	7:  {{EdgeTop, EdgeLeft}},
	8:  {{EdgeTop, EdgeLeft}},
	9:  {{EdgeTop, EdgeBottom}},
	10: {{EdgeTop, EdgeRight}, {EdgeBottom, EdgeLeft}},
	11: {{EdgeTop, EdgeRight}},
	12: {{EdgeRight, EdgeLeft}},
	13: {{EdgeRight, EdgeBottom}},
	14: {{EdgeBottom, EdgeLeft}},
	15: nil,
}

// EdgePairs returns the segments the table assigns to state.
func EdgePairs(state CellState) []EdgePair {
	if state > 15 {
		return nil
	}
	return segmentTable[state]
}

// Segment is one isoline piece in world coordinates.
type Segment struct {
	A, B  core.Point
	State CellState
}

// Midpoint returns the world position of edge e on cell (x, y).
func Midpoint(e Edge, x, y int, resolution float64) core.Point {
	fx, fy := float64(x), float64(y)
	var p core.Point
	switch e {
	case EdgeTop:
		p = core.Pt(fx+0.5, fy)
	case EdgeRight:
		p = core.Pt(fx+1, fy+0.5)
	case EdgeBottom:
		p = core.Pt(fx+0.5, fy+1)
	case EdgeLeft:
		p = core.Pt(fx, fy+0.5)
	}
	return core.Pt(p.X*resolution, p.Y*resolution)
}

// CellSegments returns the segments for state on cell (x, y).
func CellSegments(state CellState, x, y int, resolution float64) []Segment {
	pairs := EdgePairs(state)
	if len(pairs) == 0 {
		return nil
	}
	out := make([]Segment, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, segmentFor(state, pair, x, y, resolution))
	}
	return out
}

func segmentFor(state CellState, pair EdgePair, x, y int, resolution float64) Segment {
	return Segment{
		A:     Midpoint(pair[0], x, y, resolution),
		B:     Midpoint(pair[1], x, y, resolution),
		State: state,
	}
}
