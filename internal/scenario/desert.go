package scenario

import (
	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Through The Desert: a main island split by a fixed strip of desert,
// with a small fertile area on the far side and a few foreign islands.
// The main island carries exactly one gold hex, which must always land
// past the desert (the group's second land area).

// desertStrip4 is laid down first, unshuffled and outside any land
// area. Its last hex seeds the robber.
var desertStrip4 = []grid.Coord{0x0106, 0x0305, 0x0504}

var desertMainTypes4 = []board.HexType{
	clay, clay, clay, clay,
	ore, ore, ore,
	sheep, sheep, sheep, sheep,
	wheat, wheat, wheat,
	wood, wood, wood, wood, wood,
	gold,
}

var desertMainCoords4 = []grid.Coord{
	0x0108, 0x0307, 0x0309,
	0x0506, 0x0508, 0x050A,
	0x0705, 0x0707, 0x0709,
	0x0902, 0x0904, 0x0906, 0x0908,
	0x0B03, 0x0B05, 0x0B07, 0x0D06,
	// past the desert:
	0x0104, 0x0303, 0x0502,
}

var desertMainNumbers4 = []int{
	3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 8, 9, 9, 10, 10, 10, 11, 11, 11, 12,
}

var desertSmallTypes4 = []board.HexType{
	clay, ore, ore, sheep,
	wheat, wheat, gold,
}

var desertSmallCoords4 = []grid.Coord{
	0x010C, 0x030D, 0x050E,
	0x090C, 0x090E,
	0x0D0A, 0x0D0C,
}

var desertSmallNumbers4 = []int{2, 3, 4, 5, 6, 9, 12}

func throughDesert4() board.Plan {
	return board.Plan{
		Name:    ThroughDesert,
		Players: 4,
		Height:  0x10,
		Width:   0x12,
		Groups: []board.LayoutSpec{
			{
				HexTypes: []board.HexType{desert, desert, desert},
				Path:     desertStrip4,
				Areas:    []board.AreaRange{{Area: 0, Count: 3}},
			},
			{
				HexTypes:       desertMainTypes4,
				Path:           desertMainCoords4,
				Numbers:        desertMainNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas: []board.AreaRange{
					{Area: 1, Count: 17},
					{Area: 2, Count: 3},
				},
				BreakClumps:      true,
				GoldInSecondArea: true,
			},
			{
				HexTypes:       desertSmallTypes4,
				Path:           desertSmallCoords4,
				Numbers:        desertSmallNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas: []board.AreaRange{
					{Area: 3, Count: 3},
					{Area: 4, Count: 2},
					{Area: 5, Count: 2},
				},
			},
		},
		LandAreas:        5,
		StartingLandArea: 1,
		MainPorts: []board.PortType{
			pMisc, pMisc, pMisc, pMisc,
			pClay, pOre, pSheep, pWheat, pWood,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x0109, Facing: w}, {Edge: 0x040A, Facing: sw}, {Edge: 0x060A, Facing: nw},
			{Edge: 0x0A08, Facing: nw}, {Edge: 0x0D07, Facing: w}, {Edge: 0x0E05, Facing: ne},
			{Edge: 0x0C03, Facing: nw}, {Edge: 0x0B02, Facing: e}, {Edge: 0x0704, Facing: e},
		},
		ShuffleMainPorts: true,
		PirateHex:        0x070F,
	}
}
