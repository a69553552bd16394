package scenario

import (
	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Four Islands: four separate islands shuffled and numbered as one
// group, each its own land area. No starting-area restriction; players
// may begin on any island, and the pirate patrols the center sea.

var fourIslTypes4 = []board.HexType{
	clay, clay, clay, clay,
	ore, ore, ore, ore,
	sheep, sheep, sheep, sheep, sheep,
	wheat, wheat, wheat, wheat, wheat,
	wood, wood, wood, wood, wood,
}

var fourIslCoords4 = []grid.Coord{
	// northwest island
	0x0104, 0x0303, 0x0502, 0x0504,
	// southwest island
	0x0902, 0x0904, 0x0B03, 0x0B05, 0x0B07, 0x0D04, 0x0D06,
	// northeast island
	0x0108, 0x010A, 0x0307, 0x0309, 0x030B, 0x0508, 0x050A, 0x0707,
	// southeast island
	0x090A, 0x090C, 0x0B0B, 0x0D0A,
}

var fourIslNumbers4 = []int{
	2, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12,
}

func fourIslands4() board.Plan {
	return board.Plan{
		Name:    FourIslands,
		Players: 4,
		Height:  0x10,
		Width:   0x0E,
		Groups: []board.LayoutSpec{
			{
				HexTypes:       fourIslTypes4,
				Path:           fourIslCoords4,
				Numbers:        fourIslNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas: []board.AreaRange{
					{Area: 1, Count: 4},
					{Area: 2, Count: 7},
					{Area: 3, Count: 8},
					{Area: 4, Count: 4},
				},
				BreakClumps: true,
			},
		},
		LandAreas: 4,
		MainPorts: []board.PortType{
			pWheat, pMisc,
			pClay, pMisc, pSheep,
			pMisc, pWood,
			pOre, pMisc,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x0302, Facing: e}, {Edge: 0x0602, Facing: nw},
			{Edge: 0x0A01, Facing: ne}, {Edge: 0x0A05, Facing: sw}, {Edge: 0x0D03, Facing: e},
			{Edge: 0x0606, Facing: se}, {Edge: 0x040B, Facing: nw},
			{Edge: 0x080B, Facing: se}, {Edge: 0x0A0C, Facing: nw},
		},
		ShuffleMainPorts: true,
		PirateHex:        0x070D,
	}
}
