package board

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// NodeSet is a set of node coordinates.
type NodeSet map[grid.Coord]struct{}

// Board is the layout under construction and, after Generate returns,
// the finished result. All randomness flows through the injected rng,
// so equal seeds produce identical boards.
type Board struct {
	// Height and Width are the maximum legal row and column.
	Height int
	Width  int

	hexes   [][]HexType
	numbers [][]int

	landHexes []grid.Coord

	// areaNodes[i] holds the settleable nodes of land area i. Index 0
	// is reserved: hexes placed with area 0 join no area. Each area is
	// populated exactly once.
	areaNodes   []NodeSet
	nodesOnLand NodeSet

	Ports     []Port
	nodePorts map[grid.Coord]PortType

	// RobberHex and PirateHex are 0 when the piece is off the board.
	RobberHex grid.Coord
	PirateHex grid.Coord

	// StartingLandArea is the land area players must settle in during
	// initial placement; 0 means anywhere.
	StartingLandArea int

	fogHidden map[grid.Coord]fogMemo

	extraParts      map[string][]int
	piratePathIndex int
	noRobber        bool

	rng *rand.Rand
}

func newBoard(height, width, landAreas int, rng *rand.Rand) *Board {
	b := &Board{
		Height:      height,
		Width:       width,
		hexes:       make([][]HexType, height+1),
		numbers:     make([][]int, height+1),
		areaNodes:   make([]NodeSet, landAreas+1),
		nodesOnLand: NodeSet{},
		nodePorts:   map[grid.Coord]PortType{},
		fogHidden:   map[grid.Coord]fogMemo{},
		extraParts:  map[string][]int{},
		rng:         rng,
	}
	for r := range b.hexes {
		b.hexes[r] = make([]HexType, width+1)
		b.numbers[r] = make([]int, width+1)
	}
	return b
}

func (b *Board) inBounds(c grid.Coord) bool {
	r, col := c.Row(), c.Col()
	return r >= 0 && r <= b.Height && col >= 0 && col <= b.Width
}

// HexAt returns the terrain at a hex coordinate, or HexUnset outside
// the board.
func (b *Board) HexAt(c grid.Coord) HexType {
	if !b.inBounds(c) {
		return HexUnset
	}
	return b.hexes[c.Row()][c.Col()]
}

// NumberAt returns the dice number at a hex coordinate. Hexes that
// never produce carry NoNumber; water and out-of-bounds coordinates
// carry 0.
func (b *Board) NumberAt(c grid.Coord) int {
	if !b.inBounds(c) {
		return 0
	}
	return b.numbers[c.Row()][c.Col()]
}

func (b *Board) setHex(c grid.Coord, t HexType) {
	b.hexes[c.Row()][c.Col()] = t
}

func (b *Board) setNumber(c grid.Coord, n int) {
	b.numbers[c.Row()][c.Col()] = n
}

func (b *Board) swapNumbers(a, c grid.Coord) {
	na, nc := b.NumberAt(a), b.NumberAt(c)
	b.setNumber(a, nc)
	b.setNumber(c, na)
}

// isLand reports whether the coordinate is an on-board land hex.
func (b *Board) isLand(c grid.Coord) bool {
	return b.HexAt(c).Land()
}

// adjacentHexes returns the on-board neighbors of a hex, preserving
// facing order.
func (b *Board) adjacentHexes(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 6)
	for _, nb := range grid.AdjacentHexes(c) {
		if b.inBounds(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// adjacentLandHexes returns the neighboring hexes that hold land.
func (b *Board) adjacentLandHexes(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 6)
	for _, nb := range grid.AdjacentHexes(c) {
		if b.isLand(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// isCoastal reports whether a land hex borders water or the board
// edge.
func (b *Board) isCoastal(c grid.Coord) bool {
	for _, nb := range grid.AdjacentHexes(c) {
		if !b.inBounds(nb) || b.HexAt(nb) == HexWater {
			return true
		}
	}
	return false
}

// hasFrequentNeighbor reports whether any neighboring hex carries a
// red dice number.
func (b *Board) hasFrequentNeighbor(c grid.Coord) bool {
	for _, nb := range grid.AdjacentHexes(c) {
		if frequentNumber(b.NumberAt(nb)) {
			return true
		}
	}
	return false
}

// adjacentFrequentHexes returns the neighboring hexes carrying red
// dice numbers, in facing order.
func (b *Board) adjacentFrequentHexes(c grid.Coord) []grid.Coord {
	var out []grid.Coord
	for _, nb := range grid.AdjacentHexes(c) {
		if frequentNumber(b.NumberAt(nb)) {
			out = append(out, nb)
		}
	}
	return out
}

// addNodesForLandArea registers the corner nodes of the given hexes as
// settleable land, and assigns them to a land area. Area 0 registers
// the nodes without an area. Populating a declared area twice is a
// layout bug.
func (b *Board) addNodesForLandArea(hexes []grid.Coord, area int) error {
	if area != 0 {
		if area < 0 || area >= len(b.areaNodes) {
			return fmt.Errorf("land area %d out of range 1..%d: %w",
				area, len(b.areaNodes)-1, ErrBadLayout)
		}
		if b.areaNodes[area] != nil {
			return fmt.Errorf("land area %d populated twice: %w", area, ErrBadLayout)
		}
		b.areaNodes[area] = NodeSet{}
	}
	for _, h := range hexes {
		if b.HexAt(h) == HexWater {
			continue
		}
		for _, n := range grid.AdjacentNodesToHex(h) {
			b.nodesOnLand[n] = struct{}{}
			if area != 0 {
				b.areaNodes[area][n] = struct{}{}
			}
		}
	}
	return nil
}

// checkLandAreas verifies that every declared land area was populated.
func (b *Board) checkLandAreas() error {
	for i := 1; i < len(b.areaNodes); i++ {
		if b.areaNodes[i] == nil {
			return fmt.Errorf("land area %d never populated: %w", i, ErrBadLayout)
		}
	}
	return nil
}

// LandHexes returns the coordinates of every placed land hex, in
// placement order.
func (b *Board) LandHexes() []grid.Coord {
	return slices.Clone(b.landHexes)
}

// LandAreaNodes returns the sorted settleable nodes of a land area, or
// nil for an unknown area.
func (b *Board) LandAreaNodes(area int) []grid.Coord {
	if area < 1 || area >= len(b.areaNodes) {
		return nil
	}
	return sortedNodes(b.areaNodes[area])
}

// PortTypeAtNode returns the port reachable from a node, if any.
func (b *Board) PortTypeAtNode(n grid.Coord) (PortType, bool) {
	p, ok := b.nodePorts[n]
	return p, ok
}

// ExtraPart returns a named scenario layout part, such as the pirate
// path, threaded through from the plan unchanged.
func (b *Board) ExtraPart(name string) ([]int, bool) {
	p, ok := b.extraParts[name]
	return p, ok
}

func sortedNodes(s NodeSet) []grid.Coord {
	out := make([]grid.Coord, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func removeCoord(s []grid.Coord, c grid.Coord) []grid.Coord {
	for i, v := range s {
		if v == c {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
