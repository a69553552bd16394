package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/seaboard/internal/grid"
)

func TestFogHideAndReveal(t *testing.T) {
	b := newBoard(0x10, 0x12, 1, testRNG(1))
	b.setHex(0x0104, HexClay)
	b.setNumber(0x0104, 5)
	// Fog banks may hide plain water too.
	require.NoError(t, b.hideHexesInFog([]grid.Coord{0x0104, 0x0106}))

	assert.Equal(t, HexFog, b.HexAt(0x0104))
	assert.Equal(t, NoNumber, b.NumberAt(0x0104))
	assert.Equal(t, HexFog, b.HexAt(0x0106))
	assert.Equal(t, []grid.Coord{0x0104, 0x0106}, b.FogHexes())

	typ, num, err := b.RevealFogHex(0x0104)
	require.NoError(t, err)
	assert.Equal(t, HexClay, typ)
	assert.Equal(t, 5, num)
	assert.Equal(t, HexClay, b.HexAt(0x0104))
	assert.Equal(t, 5, b.NumberAt(0x0104))
	assert.Equal(t, []grid.Coord{0x0106}, b.FogHexes())

	typ, num, err = b.RevealFogHex(0x0106)
	require.NoError(t, err)
	assert.Equal(t, HexWater, typ)
	assert.Equal(t, 0, num)
	assert.Empty(t, b.FogHexes())
}

func TestFogDoubleHide(t *testing.T) {
	b := newBoard(0x10, 0x12, 1, testRNG(1))
	b.setHex(0x0104, HexClay)
	err := b.hideHexesInFog([]grid.Coord{0x0104, 0x0104})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestRevealNotHidden(t *testing.T) {
	b := newBoard(0x10, 0x12, 1, testRNG(1))
	b.setHex(0x0104, HexClay)
	_, _, err := b.RevealFogHex(0x0104)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFogHidden)
}
