package board

import (
	"github.com/castaway-games/seaboard/internal/grid"
)

// piratePathPart names the extra layout part holding the pirate's
// patrol route.
const piratePathPart = "PP"

// MovePirateAlongPath advances the pirate fleet by steps along its
// scenario-defined patrol path, wrapping at the end, and returns the
// new hex. A defeated fleet (PirateHex 0) never moves; the call is a
// no-op returning 0.
func (b *Board) MovePirateAlongPath(steps int) (grid.Coord, error) {
	path, ok := b.extraParts[piratePathPart]
	if !ok || len(path) == 0 {
		return 0, ErrNoPiratePath
	}
	if b.PirateHex == 0 {
		return 0, nil
	}
	b.piratePathIndex = ((b.piratePathIndex+steps)%len(path) + len(path)) % len(path)
	b.PirateHex = grid.Coord(path[b.piratePathIndex])
	return b.PirateHex, nil
}

// RemovePirate takes the fleet off the board permanently.
func (b *Board) RemovePirate() {
	b.PirateHex = 0
}
