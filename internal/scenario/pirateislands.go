package scenario

import (
	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Pirate Islands: a fixed eastern starting island and western pirate
// islands nobody can settle freely. Nothing is shuffled, there is no
// robber, and the pirate fleet patrols a fixed loop of sea hexes
// (extra layout part "PP", starting at its first coordinate).

var pirMainTypes4 = []board.HexType{
	wheat, clay, ore, wood,
	wood, sheep, wood,
	wheat, clay, sheep,
	sheep, wood, sheep,
	ore, wood, wheat, clay,
}

var pirMainCoords4 = []grid.Coord{
	0x010C, 0x010E, 0x030D, 0x030F,
	0x050C, 0x050E, 0x0510,
	0x070B, 0x070D, 0x070F,
	0x090C, 0x090E, 0x0910,
	0x0B0D, 0x0B0F, 0x0D0C, 0x0D0E,
}

var pirMainNumbers4 = []int{
	4, 5, 9, 10, 3, 8, 5, 6, 9, 12, 11, 8, 9, 5, 2, 10, 4,
}

var pirIslandTypes4 = []board.HexType{
	ore, gold, wheat, ore, gold, wheat, ore,
	clay, clay, desert, desert, desert, sheep,
}

// pirIslandCoords4 lists the numbered hexes first; the rest go
// unnumbered.
var pirIslandCoords4 = []grid.Coord{
	0x0106, 0x0104, 0x0502, 0x0D06, 0x0D04, 0x0902, 0x0705,
	0x0303, 0x0B03, 0x0309, 0x0508, 0x0908, 0x0B09,
}

var pirIslandNumbers4 = []int{6, 11, 4, 6, 3, 10, 8}

// pirPath4 is the fleet's patrol loop; the first element is its
// starting hex.
var pirPath4 = []int{
	0x0D0A, 0x0D08, 0x0B07, 0x0906, 0x0707, 0x0506, 0x0307,
	0x0108, 0x010A, 0x030B, 0x050A, 0x0709, 0x090A, 0x0B0B,
}

func pirateIslands4() board.Plan {
	return board.Plan{
		Name:    PirateIslands,
		Players: 4,
		Height:  0x10,
		Width:   0x12,
		Groups: []board.LayoutSpec{
			{
				HexTypes: pirMainTypes4,
				Path:     pirMainCoords4,
				Numbers:  pirMainNumbers4,
				Areas:    []board.AreaRange{{Area: 1, Count: 17}},
			},
			{
				HexTypes: pirIslandTypes4,
				Path:     pirIslandCoords4,
				Numbers:  pirIslandNumbers4,
				Areas:    []board.AreaRange{{Area: 0, Count: 13}},
			},
		},
		LandAreas:        1,
		StartingLandArea: 1,
		NoRobber:         true,
		MainPorts: []board.PortType{
			pMisc, pMisc, pMisc,
			pClay, pOre, pSheep, pWheat, pWood,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x000B, Facing: se}, {Edge: 0x000D, Facing: se}, {Edge: 0x010F, Facing: w},
			{Edge: 0x0310, Facing: w}, {Edge: 0x0710, Facing: w}, {Edge: 0x0A10, Facing: nw},
			{Edge: 0x0C0F, Facing: nw}, {Edge: 0x0E0C, Facing: nw},
		},
		ShuffleMainPorts: true,
		PirateHex:        0x0D0A,
		ExtraParts:       map[string][]int{"PP": pirPath4},
	}
}
