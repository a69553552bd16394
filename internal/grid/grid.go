// Package grid provides encoded coordinates and adjacency math for the
// sea board's hexagonal grid.
//
// Every board location (hex center, node corner, edge midpoint) is a
// single encoded integer, (row << 8) | column. Hex centers sit on odd
// rows; node corners on even rows; edges on both, between them. The
// column parity of a hex depends on (row/2)%2, which gives the grid its
// staggered layout.
package grid

import "fmt"

// Coord is an encoded board coordinate: (row << 8) | column.
// The zero value is row 0, column 0, which never addresses a hex and
// doubles as an "unset" sentinel for robber and pirate positions.
type Coord int

// At builds a coordinate from a row and column.
func At(row, col int) Coord { return Coord(row<<8 | col) }

// Row extracts the row component.
func (c Coord) Row() int { return int(c) >> 8 }

// Col extracts the column component.
func (c Coord) Col() int { return int(c) & 0xFF }

// String renders the coordinate in the conventional 0xRRCC hex form.
func (c Coord) String() string { return fmt.Sprintf("0x%04X", int(c)) }

// Facing is a direction from an edge toward one of its two adjacent
// hexes, or from a hex toward a neighbor. Values run clockwise from
// northeast; 0 is invalid.
type Facing int

const (
	FacingNE Facing = 1 + iota
	FacingE
	FacingSE
	FacingSW
	FacingW
	FacingNW
)

// Opposite returns the facing rotated a half turn.
func (f Facing) Opposite() Facing {
	f += 3
	if f > FacingNW {
		f -= 6
	}
	return f
}

func (f Facing) String() string {
	switch f {
	case FacingNE:
		return "NE"
	case FacingE:
		return "E"
	case FacingSE:
		return "SE"
	case FacingSW:
		return "SW"
	case FacingW:
		return "W"
	case FacingNW:
		return "NW"
	}
	return fmt.Sprintf("Facing(%d)", int(f))
}

// hexDeltas holds the (row, col) offset to the neighboring hex for each
// facing, indexed by Facing-1.
var hexDeltas = [6][2]int{
	{-2, 1},  // NE
	{0, 2},   // E
	{2, 1},   // SE
	{2, -1},  // SW
	{0, -2},  // W
	{-2, -1}, // NW
}

// AdjacentHexes returns the six hexes surrounding a hex, in facing
// order NE, E, SE, SW, W, NW. Results may lie outside the board;
// callers bounds-check.
func AdjacentHexes(hex Coord) [6]Coord {
	r, c := hex.Row(), hex.Col()
	var out [6]Coord
	for i, d := range hexDeltas {
		out[i] = At(r+d[0], c+d[1])
	}
	return out
}

// HexTowardFacing returns the hex one step from hex in the given
// facing.
func HexTowardFacing(hex Coord, f Facing) Coord {
	d := hexDeltas[f-1]
	return At(hex.Row()+d[0], hex.Col()+d[1])
}

// AdjacentNodesToHex returns the six corner nodes of a hex: the three
// above it and the three below.
func AdjacentNodesToHex(hex Coord) [6]Coord {
	r, c := hex.Row(), hex.Col()
	return [6]Coord{
		At(r-1, c-1), At(r-1, c), At(r-1, c+1),
		At(r+1, c-1), At(r+1, c), At(r+1, c+1),
	}
}

// EdgeOrientation classifies an edge by the direction it runs.
type EdgeOrientation int

const (
	// EdgeVertical edges ("|") sit on odd rows between two hexes of
	// the same row.
	EdgeVertical EdgeOrientation = iota
	// EdgeAscending edges ("/") sit on even rows where the column
	// parity differs from (row/2)%2.
	EdgeAscending
	// EdgeDescending edges ("\") sit on the remaining even-row
	// positions.
	EdgeDescending
)

// OrientationOf classifies an edge coordinate.
func OrientationOf(edge Coord) EdgeOrientation {
	r, c := edge.Row(), edge.Col()
	if r%2 == 1 {
		return EdgeVertical
	}
	if c%2 != (r/2)%2 {
		return EdgeAscending
	}
	return EdgeDescending
}

// LegalFacings returns the two facings an edge can point toward, one
// per adjacent hex.
func LegalFacings(o EdgeOrientation) [2]Facing {
	switch o {
	case EdgeVertical:
		return [2]Facing{FacingE, FacingW}
	case EdgeAscending:
		return [2]Facing{FacingNW, FacingSE}
	default:
		return [2]Facing{FacingNE, FacingSW}
	}
}

// AdjacentHexToEdge returns the hex on the given side of an edge. The
// second return is false when the facing is not legal for the edge's
// orientation.
func AdjacentHexToEdge(edge Coord, f Facing) (Coord, bool) {
	r, c := edge.Row(), edge.Col()
	switch OrientationOf(edge) {
	case EdgeVertical:
		switch f {
		case FacingE:
			return At(r, c+1), true
		case FacingW:
			return At(r, c-1), true
		}
	case EdgeAscending:
		switch f {
		case FacingNW:
			return At(r-1, c), true
		case FacingSE:
			return At(r+1, c+1), true
		}
	case EdgeDescending:
		switch f {
		case FacingNE:
			return At(r-1, c+1), true
		case FacingSW:
			return At(r+1, c), true
		}
	}
	return 0, false
}

// AdjacentNodesToEdge returns the two endpoint nodes of an edge.
func AdjacentNodesToEdge(edge Coord) [2]Coord {
	r, c := edge.Row(), edge.Col()
	if OrientationOf(edge) == EdgeVertical {
		return [2]Coord{At(r-1, c), At(r+1, c)}
	}
	return [2]Coord{At(r, c), At(r, c+1)}
}
