package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordEncoding(t *testing.T) {
	c := At(0x07, 0x0A)
	assert.Equal(t, 7, c.Row())
	assert.Equal(t, 10, c.Col())
	assert.Equal(t, Coord(0x070A), c)
	assert.Equal(t, "0x070A", c.String())
}

func TestFacingOpposite(t *testing.T) {
	pairs := map[Facing]Facing{
		FacingNE: FacingSW,
		FacingE:  FacingW,
		FacingSE: FacingNW,
	}
	for f, want := range pairs {
		assert.Equal(t, want, f.Opposite())
		assert.Equal(t, f, want.Opposite())
	}
}

func TestAdjacentHexesSymmetric(t *testing.T) {
	hex := Coord(0x0707)
	for i, nb := range AdjacentHexes(hex) {
		f := Facing(i + 1)
		assert.Equal(t, nb, HexTowardFacing(hex, f))
		assert.Equal(t, hex, HexTowardFacing(nb, f.Opposite()), "round trip via %v", f)
	}
}

func TestEdgeOrientation(t *testing.T) {
	cases := []struct {
		edge Coord
		want EdgeOrientation
	}{
		{0x0702, EdgeVertical},
		{0x050B, EdgeVertical},
		{0x0003, EdgeAscending},
		{0x0809, EdgeAscending},
		{0x0A06, EdgeAscending},
		{0x0006, EdgeDescending},
		{0x0209, EdgeDescending},
		{0x0A03, EdgeDescending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OrientationOf(tc.edge), "edge %v", tc.edge)
	}
}

func TestAdjacentHexToEdge(t *testing.T) {
	cases := []struct {
		edge   Coord
		facing Facing
		hex    Coord
	}{
		{0x0003, FacingSE, 0x0104},
		{0x0006, FacingSW, 0x0106},
		{0x050B, FacingW, 0x050A},
		{0x0809, FacingNW, 0x0709},
		{0x0A06, FacingNW, 0x0906},
		{0x0A03, FacingNE, 0x0904},
		{0x0702, FacingE, 0x0703},
	}
	for _, tc := range cases {
		hex, ok := AdjacentHexToEdge(tc.edge, tc.facing)
		require.True(t, ok, "edge %v facing %v", tc.edge, tc.facing)
		assert.Equal(t, tc.hex, hex, "edge %v facing %v", tc.edge, tc.facing)
	}

	// A facing illegal for the edge's orientation is rejected.
	_, ok := AdjacentHexToEdge(0x0702, FacingNE)
	assert.False(t, ok)
}

func TestEdgeEndpointsAreHexCorners(t *testing.T) {
	// The endpoints of an edge must be corners of the hex on either
	// side of it.
	cases := []struct {
		edge   Coord
		facing Facing
	}{
		{0x0003, FacingSE},
		{0x0006, FacingSW},
		{0x050B, FacingW},
		{0x0A06, FacingNW},
	}
	for _, tc := range cases {
		hex, ok := AdjacentHexToEdge(tc.edge, tc.facing)
		require.True(t, ok)
		corners := AdjacentNodesToHex(hex)
		for _, n := range AdjacentNodesToEdge(tc.edge) {
			assert.Contains(t, corners[:], n, "edge %v node %v hex %v", tc.edge, n, hex)
		}
	}
}
