package board

import (
	"fmt"
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// fogMemo remembers what a fog hex hides.
type fogMemo struct {
	Type   HexType `json:"type"`
	Number int     `json:"number"`
}

// hideHexesInFog replaces each hex with the fog sentinel, memoizing
// the real terrain and dice number for later reveal. Fog may cover
// water. Hiding a hex twice is a layout bug.
func (b *Board) hideHexesInFog(coords []grid.Coord) error {
	for _, h := range coords {
		if b.HexAt(h) == HexFog {
			return fmt.Errorf("hex %v hidden in fog twice: %w", h, ErrBadLayout)
		}
		b.fogHidden[h] = fogMemo{Type: b.HexAt(h), Number: b.NumberAt(h)}
		b.setHex(h, HexFog)
		b.setNumber(h, NoNumber)
	}
	return nil
}

// RevealFogHex uncovers a fog hex, restoring its real terrain and dice
// number, and returns them.
func (b *Board) RevealFogHex(h grid.Coord) (HexType, int, error) {
	memo, ok := b.fogHidden[h]
	if !ok {
		return HexUnset, NoNumber, fmt.Errorf("hex %v: %w", h, ErrNotFogHidden)
	}
	delete(b.fogHidden, h)
	b.setHex(h, memo.Type)
	b.setNumber(h, memo.Number)
	return memo.Type, memo.Number, nil
}

// FogHexes returns the coordinates still hidden in fog, sorted.
func (b *Board) FogHexes() []grid.Coord {
	out := make([]grid.Coord, 0, len(b.fogHidden))
	for h := range b.fogHidden {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}
