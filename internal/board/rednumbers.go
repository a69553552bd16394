package board

import (
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// maxBalanceRetries is how many times a failed separation attempt is
// rolled back and retried with fresh random picks. The final failed
// attempt keeps its swaps: an imperfect board is still usable.
const maxBalanceRetries = 5

// numberSwap records one dice-number exchange so an attempt can be
// undone in reverse order.
type numberSwap struct {
	from, to grid.Coord
}

// balanceFrequentNumbers spreads the red dice numbers (6s and 8s) so
// no two sit on adjacent hexes, by swapping numbers with calmer hexes.
// frequent lists the hexes that received a red number during
// placement. Returns false when the layout could not be fully
// separated within the retry budget.
func (b *Board) balanceFrequentNumbers(path []grid.Coord, frequent []grid.Coord) bool {
	if len(frequent) == 0 {
		return true
	}
	frequent = slices.Clone(frequent)
	if !b.moveFrequentOffGold(path, frequent) {
		return false
	}

	for retry := 0; ; retry++ {
		swaps, ok := b.separateFrequent(path, frequent)
		if ok {
			return true
		}
		if retry == maxBalanceRetries {
			return false
		}
		for i := len(swaps) - 1; i >= 0; i-- {
			b.swapNumbers(swaps[i].from, swaps[i].to)
		}
	}
}

// moveFrequentOffGold is the pre-pass: a gold hex must never carry a
// red number, so each one trades with a random hex holding a low or
// high number (2-4 or 10-12). Updates frequent in place.
func (b *Board) moveFrequentOffGold(path []grid.Coord, frequent []grid.Coord) bool {
	for i, h := range frequent {
		if b.HexAt(h) != HexGold {
			continue
		}
		var cands []grid.Coord
		for _, c := range path {
			n := b.NumberAt(c)
			if c != h && n > 0 && !frequentNumber(n) && n != 5 && n != 9 &&
				b.HexAt(c) != HexGold {
				cands = append(cands, c)
			}
		}
		if len(cands) == 0 {
			return false
		}
		dest := cands[b.rng.Intn(len(cands))]
		b.swapNumbers(h, dest)
		frequent[i] = dest
	}
	return true
}

// balanceState tracks one separation attempt: the red hexes still
// touching another red, the remaining swap targets split coastal vs
// interior, and the undo log.
type balanceState struct {
	b        *Board
	pending  []grid.Coord
	coastal  []grid.Coord
	interior []grid.Coord
	swaps    []numberSwap
}

// separateFrequent makes one attempt at full separation. Middles of
// three-in-a-row are resolved first, since one swap there clears two
// adjacencies. Returns the undo log and whether every red hex ended up
// isolated.
func (b *Board) separateFrequent(path []grid.Coord, frequent []grid.Coord) ([]numberSwap, bool) {
	s := &balanceState{b: b, pending: slices.Clone(frequent)}
	s.buildTargets(path)

	// Pass 1: a red hex flanked by two or three mutually non-adjacent
	// reds is the middle of a row; moving it breaks several pairs at
	// once. Rescan from the start after each swap, since a swap can
	// clear other pending hexes.
	for i := 0; i < len(s.pending); {
		h := s.pending[i]
		reds := b.adjacentFrequentHexes(h)
		switch {
		case len(reds) == 0:
			s.pending = slices.Delete(s.pending, i, i+1)
		case len(reds) >= 2 && len(reds) <= 3 && !anyAdjacentPair(reds):
			if !s.swapOne(h) {
				return s.swaps, false
			}
			i = 0
		default:
			i++
		}
	}

	// Pass 2: remaining pairs and clusters. A hex with a single red
	// neighbor is cleared by moving the neighbor; with more, the hex
	// itself moves.
	for len(s.pending) > 0 {
		h := s.pending[0]
		reds := b.adjacentFrequentHexes(h)
		if len(reds) == 0 {
			s.pending = s.pending[1:]
			continue
		}
		move := h
		if len(reds) == 1 {
			move = reds[0]
		}
		if !s.swapOne(move) {
			return s.swaps, false
		}
	}
	return s.swaps, true
}

// buildTargets collects the group's swap candidates: numbered hexes
// that are not red, not gold, and touch no red hex. Coastal hexes are
// preferred so red numbers drift toward the shoreline, where fewer
// settlements reach them.
func (s *balanceState) buildTargets(path []grid.Coord) {
	for _, h := range path {
		if s.eligibleTarget(h) {
			s.addTarget(h)
		}
	}
}

func (s *balanceState) eligibleTarget(h grid.Coord) bool {
	switch s.b.HexAt(h) {
	case HexWater, HexDesert, HexGold, HexFog, HexUnset:
		return false
	}
	n := s.b.NumberAt(h)
	return n > 0 && !frequentNumber(n) && !s.b.hasFrequentNeighbor(h)
}

func (s *balanceState) addTarget(h grid.Coord) {
	if slices.Contains(s.coastal, h) || slices.Contains(s.interior, h) {
		return
	}
	if s.b.isCoastal(h) {
		s.coastal = append(s.coastal, h)
	} else {
		s.interior = append(s.interior, h)
	}
}

func (s *balanceState) dropTarget(h grid.Coord) {
	s.coastal = removeCoord(s.coastal, h)
	s.interior = removeCoord(s.interior, h)
}

func (s *balanceState) dropPending(h grid.Coord) {
	s.pending = removeCoord(s.pending, h)
}

// swapOne moves the red number off hex h to a random swap target,
// coastal preferred, and updates the bookkeeping: the destination's
// neighborhood stops being a target, and any neighbor of h with no
// remaining red contact either leaves pending or becomes a fresh
// target. Returns false when no target is left.
func (s *balanceState) swapOne(h grid.Coord) bool {
	pool := s.coastal
	if len(pool) == 0 {
		pool = s.interior
	}
	if len(pool) == 0 {
		return false
	}
	dest := pool[s.b.rng.Intn(len(pool))]

	s.b.swapNumbers(h, dest)
	s.swaps = append(s.swaps, numberSwap{from: h, to: dest})
	s.dropPending(h)

	// dest is red now; it and its whole neighborhood are off the
	// target lists. Its neighbors had no red contact before, so dest
	// itself is already isolated.
	s.dropTarget(dest)
	for _, nb := range s.b.adjacentHexes(dest) {
		s.dropTarget(nb)
	}

	// h's old neighbors may have just lost their last red contact.
	for _, nb := range s.b.adjacentHexes(h) {
		if s.b.hasFrequentNeighbor(nb) {
			continue
		}
		if frequentNumber(s.b.NumberAt(nb)) {
			s.dropPending(nb)
		} else if s.eligibleTarget(nb) {
			s.addTarget(nb)
		}
	}
	return true
}

// anyAdjacentPair reports whether any two of the hexes neighbor each
// other.
func anyAdjacentPair(hexes []grid.Coord) bool {
	for i, a := range hexes {
		nbs := grid.AdjacentHexes(a)
		for _, c := range hexes[i+1:] {
			if slices.Contains(nbs[:], c) {
				return true
			}
		}
	}
	return false
}
