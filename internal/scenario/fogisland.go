package scenario

import (
	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Fog Island: two settled islands with a fog bank between them. The
// fog group is placed like any landmass, then hidden; two of its hexes
// are really water, discovered the hard way. The main ports are not
// shuffled, so their types stay matched to their shorelines.

var fogMainTypes4 = []board.HexType{
	clay, clay, clay, ore, ore, ore,
	sheep, sheep, sheep, sheep,
	wheat, wheat, wheat,
	wood, wood, wood, wood,
}

var fogMainCoords4 = []grid.Coord{
	// southwest island
	0x0502, 0x0703, 0x0902, 0x0904, 0x0B03, 0x0B05, 0x0B07, 0x0D04, 0x0D06, 0x0D08,
	// northeast island
	0x010A, 0x010C, 0x030B, 0x030D, 0x050C, 0x050E, 0x070D,
}

var fogMainNumbers4 = []int{
	2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 12,
}

var fogBankTypes = []board.HexType{
	water, water,
	clay, clay, ore, ore,
	sheep, wheat, wheat, wood,
	gold, gold,
}

// fogBankCoords4 runs northwest to southeast; the main part of the
// island is a diagonal line of hexes.
var fogBankCoords4 = []grid.Coord{
	0x0104, 0x0305, 0x0506, 0x0707,
	0x0106, 0x0307, 0x0508, 0x0709, 0x090A, 0x0B0B, 0x0D0C,
	0x0B0D,
}

// fogBankNumbers4 leaves the two water hexes unnumbered.
var fogBankNumbers4 = []int{
	3, 4, 5, 6, 8, 9, 10, 11, 11, 12,
}

func fogIsland4() board.Plan {
	return board.Plan{
		Name:    FogIsland,
		Players: 4,
		Height:  0x10,
		Width:   0x11,
		Groups: []board.LayoutSpec{
			{
				HexTypes:       fogMainTypes4,
				Path:           fogMainCoords4,
				Numbers:        fogMainNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas:          []board.AreaRange{{Area: 1, Count: 17}},
				BreakClumps:    true,
			},
			{
				HexTypes:       fogBankTypes,
				Path:           fogBankCoords4,
				Numbers:        fogBankNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas:          []board.AreaRange{{Area: 2, Count: 12}},
			},
		},
		LandAreas:        2,
		StartingLandArea: 1,
		MainPorts: []board.PortType{
			// southwest island, counterclockwise from the northern end
			pMisc, pClay, pMisc, pWheat, pSheep,
			// northeast island, counterclockwise from the southeast end
			pWood, pOre, pMisc, pMisc,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x0601, Facing: ne}, {Edge: 0x0A01, Facing: ne}, {Edge: 0x0D03, Facing: e},
			{Edge: 0x0E04, Facing: nw}, {Edge: 0x0E07, Facing: ne},
			{Edge: 0x070E, Facing: w}, {Edge: 0x040E, Facing: sw},
			{Edge: 0x010D, Facing: w}, {Edge: 0x000B, Facing: se},
		},
		FogHexes: fogBankCoords4,
	}
}
