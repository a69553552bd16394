package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/seaboard/internal/grid"
)

// miniPlan is a four-hex layout exercising every generation stage:
// fixed placement, one land area, a port, a fog hex, and a pirate
// patrol.
func miniPlan() Plan {
	return Plan{
		Name:    "mini",
		Players: 4,
		Height:  0x10,
		Width:   0x12,
		Groups: []LayoutSpec{{
			HexTypes: []HexType{HexClay, HexOre, HexSheep, HexWheat},
			Path:     []grid.Coord{0x0104, 0x0106, 0x0303, 0x0305},
			Numbers:  []int{5, 9, 10, 4},
			Areas:    []AreaRange{{Area: 1, Count: 4}},
		}},
		LandAreas:        1,
		StartingLandArea: 1,
		MainPorts:        []PortType{PortMisc},
		MainPortEdges:    []PortEdge{{0x0003, grid.FacingSE}},
		FogHexes:         []grid.Coord{0x0305},
		PirateHex:        0x0709,
		ExtraParts:       map[string][]int{"PP": {0x0709, 0x0707}},
	}
}

func TestGenerateMini(t *testing.T) {
	b, err := Generate(miniPlan(), DefaultOptions(), testRNG(7))
	require.NoError(t, err)

	assert.Equal(t, HexClay, b.HexAt(0x0104))
	assert.Equal(t, 5, b.NumberAt(0x0104))

	assert.Equal(t, HexFog, b.HexAt(0x0305))
	assert.Equal(t, NoNumber, b.NumberAt(0x0305))
	typ, num, err := b.RevealFogHex(0x0305)
	require.NoError(t, err)
	assert.Equal(t, HexWheat, typ)
	assert.Equal(t, 4, num)

	assert.Equal(t, 1, b.StartingLandArea)
	nodes := b.LandAreaNodes(1)
	require.NotEmpty(t, nodes)
	for _, n := range grid.AdjacentNodesToHex(0x0104) {
		assert.Contains(t, nodes, n)
	}

	require.Len(t, b.Ports, 1)
	assert.Equal(t, PortMisc, b.Ports[0].Type)

	assert.Equal(t, grid.Coord(0x0709), b.PirateHex)
	path, ok := b.ExtraPart("PP")
	require.True(t, ok)
	assert.Equal(t, []int{0x0709, 0x0707}, path)
	hex, err := b.MovePirateAlongPath(1)
	require.NoError(t, err)
	assert.Equal(t, grid.Coord(0x0707), hex)
}

func TestGenerateUnpopulatedArea(t *testing.T) {
	plan := miniPlan()
	plan.LandAreas = 2
	_, err := Generate(plan, DefaultOptions(), testRNG(7))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Contains(t, err.Error(), "never populated")
}

func TestGenerateBadPort(t *testing.T) {
	plan := miniPlan()
	plan.MainPortEdges = []PortEdge{{0x0103, grid.FacingW}}
	_, err := Generate(plan, DefaultOptions(), testRNG(7))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Contains(t, err.Error(), "faces water")
}

func TestGenerateDeterministic(t *testing.T) {
	plan := Plan{
		Name:    "mini-shuffled",
		Players: 4,
		Height:  0x10,
		Width:   0x12,
		Groups: []LayoutSpec{{
			HexTypes: []HexType{
				HexClay, HexClay, HexClay,
				HexOre, HexOre, HexOre,
				HexSheep, HexSheep, HexSheep,
				HexWheat, HexWheat,
				HexWood, HexWood,
			},
			Path:           balancePath,
			Numbers:        []int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12, 3, 4, 5},
			ShuffleTypes:   true,
			ShuffleNumbers: true,
			Areas:          []AreaRange{{Area: 1, Count: len(balancePath)}},
			BreakClumps:    true,
		}},
		LandAreas:        1,
		StartingLandArea: 1,
	}

	for _, seed := range []int64{1, 42, 99} {
		a, err := Generate(plan, DefaultOptions(), testRNG(seed))
		require.NoError(t, err)
		b, err := Generate(plan, DefaultOptions(), testRNG(seed))
		require.NoError(t, err)
		assert.Equal(t, a.Snapshot(), b.Snapshot(), "seed %d", seed)
	}
}
