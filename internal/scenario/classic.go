package scenario

import (
	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Classic sea board: the standard mainland with three outlying islands
// worth extra exploration. The mainland's terrain is shuffled but its
// dice numbers spiral inward in fixed order; the islands shuffle both.

// classicMainPath4 spirals clockwise inward from the northwest shore.
var classicMainPath4 = []grid.Coord{
	0x0104, 0x0106, 0x0108, 0x0309, 0x050A,
	0x0709, 0x0908, 0x0906, 0x0904, 0x0703,
	0x0502, 0x0303, 0x0305, 0x0307, 0x0508,
	0x0707, 0x0705, 0x0504, 0x0506,
}

var classicMainTypes4 = []board.HexType{
	desert,
	clay, clay, clay,
	ore, ore, ore,
	sheep, sheep, sheep, sheep,
	wheat, wheat, wheat, wheat,
	wood, wood, wood, wood,
}

// classicMainNumbers4 follows the dice path; the desert consumes none.
var classicMainNumbers4 = []int{
	5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11,
}

var classicIslandCoords4 = []grid.Coord{
	0x010E, 0x030D, 0x030F, 0x050E, 0x0510, // northeast island
	0x0B0D, 0x0B0F, 0x0B11, 0x0D0C, 0x0D0E, // southeast island
	0x0D02, 0x0D04, 0x0F05, 0x0F07, // southwest island
}

var classicIslandTypes4 = []board.HexType{
	clay, clay, ore, ore, ore,
	sheep, sheep, wheat, wheat, desert,
	wood, wood, gold, gold,
}

// classicIslandNumbers4 avoids the rarely rolled 2 and 12 to keep the
// islands worth sailing to. One hex (the desert) goes unnumbered.
var classicIslandNumbers4 = []int{
	5, 4, 6, 3, 8,
	10, 9, 11, 5, 9,
	4, 10, 5,
}

func classic4() board.Plan {
	return board.Plan{
		Name:    Classic,
		Players: 4,
		Height:  0x10,
		Width:   0x12,
		Groups: []board.LayoutSpec{
			{
				HexTypes:     classicMainTypes4,
				Path:         classicMainPath4,
				Numbers:      classicMainNumbers4,
				ShuffleTypes: true,
				Areas:        []board.AreaRange{{Area: 1, Count: 19}},
				BreakClumps:  true,
			},
			{
				HexTypes:       classicIslandTypes4,
				Path:           classicIslandCoords4,
				Numbers:        classicIslandNumbers4,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas: []board.AreaRange{
					{Area: 2, Count: 5},
					{Area: 3, Count: 5},
					{Area: 4, Count: 4},
				},
			},
		},
		LandAreas:        4,
		StartingLandArea: 1,
		MainPorts: []board.PortType{
			pMisc, pMisc, pMisc, pMisc,
			pClay, pOre, pSheep, pWheat, pWood,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x0003, Facing: se}, {Edge: 0x0006, Facing: sw},
			{Edge: 0x0209, Facing: sw}, {Edge: 0x050B, Facing: w},
			{Edge: 0x0809, Facing: nw}, {Edge: 0x0A06, Facing: nw},
			{Edge: 0x0A03, Facing: ne}, {Edge: 0x0702, Facing: e},
			{Edge: 0x0302, Facing: e},
		},
		ShuffleMainPorts: true,
		IslandPorts:      []board.PortType{pMisc, pSheep, pWheat, pWood},
		IslandPortEdges: []board.PortEdge{
			{Edge: 0x060E, Facing: nw},
			{Edge: 0x0A0F, Facing: sw}, {Edge: 0x0E0C, Facing: nw},
			{Edge: 0x0E06, Facing: se},
		},
	}
}

// classicMainPath6 spirals clockwise inward from the western corner of
// the taller 6-player mainland.
var classicMainPath6 = []grid.Coord{
	0x0701, 0x0502, 0x0303, 0x0104, 0x0106, 0x0108, 0x0309, 0x050A,
	0x070B, 0x090A, 0x0B09, 0x0D08, 0x0D06, 0x0D04, 0x0B03, 0x0902,
	0x0703, 0x0504, 0x0305, 0x0307, 0x0508,
	0x0709, 0x0908, 0x0B07, 0x0B05, 0x0904,
	0x0705, 0x0506, 0x0707, 0x0906,
}

var classicMainTypes6 = []board.HexType{
	desert, desert,
	clay, clay, clay, clay, clay,
	ore, ore, ore, ore, ore,
	sheep, sheep, sheep, sheep, sheep, sheep,
	wheat, wheat, wheat, wheat, wheat, wheat,
	wood, wood, wood, wood, wood, wood,
}

var classicMainNumbers6 = []int{
	2, 5, 4, 6, 3, 9, 8, 11, 11, 10, 6, 3, 8, 4,
	8, 10, 11, 12, 10, 5, 4, 9, 5, 9, 12, 3, 2, 6,
}

var classicIslandCoords6 = []grid.Coord{
	0x010E, 0x0110, 0x030D, 0x030F, 0x0311, 0x050E, 0x0510, 0x0711,
	0x0B0D, 0x0B0F, 0x0B11, 0x0D0C, 0x0D0E, 0x0D10, 0x0F0F, 0x0F11,
	0x1102, 0x1104, 0x1106, 0x1108, 0x110A,
}

var classicIslandTypes6 = []board.HexType{
	clay, clay, clay, clay, ore, ore, ore, ore,
	sheep, sheep, sheep, sheep, wheat, wheat, wheat,
	desert, wood, wood, wood, gold, gold,
}

var classicIslandNumbers6 = []int{
	3, 3, 4, 4, 5, 5, 5, 6, 6, 6, 8, 8, 8, 9, 9, 9, 10, 10, 11, 11,
}

func classic6() board.Plan {
	return board.Plan{
		Name:    Classic,
		Players: 6,
		Height:  0x13,
		Width:   0x12,
		Groups: []board.LayoutSpec{
			{
				HexTypes:     classicMainTypes6,
				Path:         classicMainPath6,
				Numbers:      classicMainNumbers6,
				ShuffleTypes: true,
				Areas:        []board.AreaRange{{Area: 1, Count: 30}},
				BreakClumps:  true,
			},
			{
				HexTypes:       classicIslandTypes6,
				Path:           classicIslandCoords6,
				Numbers:        classicIslandNumbers6,
				ShuffleTypes:   true,
				ShuffleNumbers: true,
				Areas: []board.AreaRange{
					{Area: 2, Count: 8},
					{Area: 3, Count: 8},
					{Area: 4, Count: 5},
				},
			},
		},
		LandAreas:        4,
		StartingLandArea: 1,
		MainPorts: []board.PortType{
			pMisc, pMisc, pMisc, pMisc, pMisc,
			pClay, pOre, pSheep, pSheep, pWheat, pWood,
		},
		MainPortEdges: []board.PortEdge{
			{Edge: 0x0501, Facing: e}, {Edge: 0x0202, Facing: se},
			{Edge: 0x0006, Facing: sw}, {Edge: 0x0209, Facing: sw},
			{Edge: 0x050B, Facing: w}, {Edge: 0x080B, Facing: nw},
			{Edge: 0x0B0A, Facing: w}, {Edge: 0x0E08, Facing: nw},
			{Edge: 0x0E05, Facing: ne}, {Edge: 0x0C02, Facing: ne},
			{Edge: 0x0800, Facing: ne},
		},
		ShuffleMainPorts: true,
		IslandPorts:      []board.PortType{pMisc, pMisc, pClay, pWood},
		IslandPortEdges: []board.PortEdge{
			{Edge: 0x060F, Facing: ne},
			{Edge: 0x0A0E, Facing: se}, {Edge: 0x0E0D, Facing: ne},
			{Edge: 0x1007, Facing: se},
		},
	}
}
