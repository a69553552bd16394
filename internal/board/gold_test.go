package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/seaboard/internal/grid"
)

// goldBlob lays a small island by hand: two adjacent golds up top and
// plain hexes trailing south as swap targets.
func goldBlob(t *testing.T, seed int64) (*Board, []grid.Coord) {
	t.Helper()
	b := newBoard(0x10, 0x12, 1, testRNG(seed))
	path := []grid.Coord{0x0104, 0x0106, 0x0303, 0x0305, 0x0307, 0x0508, 0x050A}
	types := []HexType{HexGold, HexGold, HexClay, HexOre, HexWheat, HexWood, HexSheep}
	for i, h := range path {
		b.setHex(h, types[i])
	}
	return b, path
}

func countGolds(b *Board, path []grid.Coord) []grid.Coord {
	var golds []grid.Coord
	for _, h := range path {
		if b.HexAt(h) == HexGold {
			golds = append(golds, h)
		}
	}
	return golds
}

func TestArrangeGoldSeparatesAdjacentGolds(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		b, path := goldBlob(t, seed)
		require.NoError(t, b.arrangeGold(path, []AreaRange{{Area: 1, Count: len(path)}}, false))

		golds := countGolds(b, path)
		require.Len(t, golds, 2, "swap must conserve the terrain multiset")
		for _, g := range golds {
			for _, nb := range grid.AdjacentHexes(g) {
				assert.NotEqual(t, HexGold, b.HexAt(nb),
					"seed %d left golds at %v and %v adjacent", seed, g, nb)
			}
		}
	}
}

func TestArrangeGoldNoopWhenSeparated(t *testing.T) {
	b, path := goldBlob(t, 1)
	// Pull the second gold to the far end before arranging.
	b.setHex(0x0106, HexClay)
	b.setHex(0x050A, HexGold)

	before := map[grid.Coord]HexType{}
	for _, h := range path {
		before[h] = b.HexAt(h)
	}
	require.NoError(t, b.arrangeGold(path, []AreaRange{{Area: 1, Count: len(path)}}, false))
	for _, h := range path {
		assert.Equal(t, before[h], b.HexAt(h))
	}
}

func TestMoveGoldToSecondArea(t *testing.T) {
	b := newBoard(0x10, 0x12, 2, testRNG(3))
	path := []grid.Coord{0x0104, 0x0106, 0x0303, 0x0508, 0x050A}
	types := []HexType{HexGold, HexClay, HexOre, HexWheat, HexWood}
	for i, h := range path {
		b.setHex(h, types[i])
	}
	areas := []AreaRange{{Area: 1, Count: 3}, {Area: 2, Count: 2}}

	require.NoError(t, b.arrangeGold(path, areas, true))
	golds := countGolds(b, path)
	require.Len(t, golds, 1)
	assert.Contains(t, []grid.Coord{0x0508, 0x050A}, golds[0],
		"gold belongs in the second area")
}

func TestMoveGoldToSecondAreaAlreadyThere(t *testing.T) {
	b := newBoard(0x10, 0x12, 2, testRNG(3))
	path := []grid.Coord{0x0104, 0x0106, 0x0508, 0x050A}
	types := []HexType{HexClay, HexOre, HexGold, HexWood}
	for i, h := range path {
		b.setHex(h, types[i])
	}
	areas := []AreaRange{{Area: 1, Count: 2}, {Area: 2, Count: 2}}

	require.NoError(t, b.arrangeGold(path, areas, true))
	assert.Equal(t, HexGold, b.HexAt(0x0508), "gold already past the desert stays put")
}

func TestMoveGoldToSecondAreaBadGroup(t *testing.T) {
	b := newBoard(0x10, 0x12, 2, testRNG(3))
	path := []grid.Coord{0x0104, 0x0303, 0x0508, 0x050A}
	types := []HexType{HexGold, HexGold, HexWheat, HexWood}
	for i, h := range path {
		b.setHex(h, types[i])
	}
	areas := []AreaRange{{Area: 1, Count: 2}, {Area: 2, Count: 2}}

	err := b.arrangeGold(path, areas, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
}
