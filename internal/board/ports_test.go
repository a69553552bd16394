package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/seaboard/internal/grid"
)

// singleHexBoard has land only at 0x0104, leaving every surrounding
// edge on the coast.
func singleHexBoard(seed int64) *Board {
	b := newBoard(0x10, 0x12, 1, testRNG(seed))
	b.setHex(0x0104, HexClay)
	return b
}

func TestValidatePortEdges(t *testing.T) {
	b := singleHexBoard(1)

	// The vertical edge west of the hex, harbor facing east onto it.
	err := b.validatePortEdges([]PortEdge{{0x0103, grid.FacingE}})
	assert.NoError(t, err)

	// The ascending edge above it, facing southeast onto it.
	err = b.validatePortEdges([]PortEdge{{0x0003, grid.FacingSE}})
	assert.NoError(t, err)
}

func TestValidatePortEdgesIllegalFacing(t *testing.T) {
	b := singleHexBoard(1)
	err := b.validatePortEdges([]PortEdge{{0x0103, grid.FacingNE}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Contains(t, err.Error(), "facing should be")
	assert.Contains(t, err.Error(), "0x0103")
}

func TestValidatePortEdgesFacesWater(t *testing.T) {
	b := singleHexBoard(1)
	err := b.validatePortEdges([]PortEdge{{0x0103, grid.FacingW}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Contains(t, err.Error(), "faces water")
}

func TestValidatePortEdgesCoversLand(t *testing.T) {
	b := singleHexBoard(1)
	b.setHex(0x0102, HexOre)
	err := b.validatePortEdges([]PortEdge{{0x0103, grid.FacingE}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Contains(t, err.Error(), "covers up land hex")
}

func TestPlacePortsWritesNodes(t *testing.T) {
	b := singleHexBoard(1)
	plan := Plan{
		MainPorts:     []PortType{PortSheep},
		MainPortEdges: []PortEdge{{0x0103, grid.FacingE}},
	}
	require.NoError(t, b.placePorts(plan, 0))

	require.Len(t, b.Ports, 1)
	p := b.Ports[0]
	assert.Equal(t, PortSheep, p.Type)
	assert.Equal(t, grid.Coord(0x0103), p.Edge)
	assert.ElementsMatch(t, []grid.Coord{0x0003, 0x0203}, p.Nodes[:])

	for _, n := range p.Nodes {
		pt, ok := b.PortTypeAtNode(n)
		require.True(t, ok)
		assert.Equal(t, PortSheep, pt)
	}
	_, ok := b.PortTypeAtNode(0x0005)
	assert.False(t, ok)
}

func TestPlacePortsLengthMismatch(t *testing.T) {
	b := singleHexBoard(1)
	plan := Plan{
		MainPorts:     []PortType{PortSheep, PortMisc},
		MainPortEdges: []PortEdge{{0x0103, grid.FacingE}},
	}
	err := b.placePorts(plan, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestPortClump(t *testing.T) {
	m, c := PortMisc, PortClay
	assert.True(t, portClump([]PortType{m, m, m, m, c}, 3))
	assert.True(t, portClump([]PortType{m, m, m, c, m}, 3), "runs wrap around the coastline")
	assert.False(t, portClump([]PortType{m, m, m, c, c}, 3))
	assert.True(t, portClump([]PortType{m, m, c, m}, 2))
	assert.False(t, portClump([]PortType{m, c, m, c}, 1))
	assert.False(t, portClump([]PortType{m, m}, 3), "too few ports to clump")
}

func TestShufflePortTypesUnsatisfiable(t *testing.T) {
	b := singleHexBoard(1)
	types := []PortType{PortMisc, PortMisc, PortMisc, PortMisc}
	err := b.shufflePortTypes(types, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsatisfiable)
}
