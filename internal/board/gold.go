package board

import (
	"fmt"
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// arrangeGold pushes gold hexes apart after a shuffled placement.
//
// With goldInSecond set (the desert-strip layouts), the group must
// hold exactly one gold hex and declare exactly two areas; the gold is
// moved into the second area by swapping terrain with a uniformly
// random hex there. Otherwise adjacent golds are separated best-effort:
// the gold with the most gold neighbors swaps terrain with a random
// land hex that touches no gold, until no adjacency remains or no swap
// target is left. A residual adjacency is accepted.
func (b *Board) arrangeGold(coords []grid.Coord, areas []AreaRange, goldInSecond bool) error {
	// Golds with at least one land neighbor, in path order.
	var golds []grid.Coord
	for _, h := range coords {
		if b.HexAt(h) == HexGold && len(b.adjacentLandHexes(h)) > 0 {
			golds = append(golds, h)
		}
	}

	if goldInSecond {
		return b.moveGoldToSecondArea(coords, areas, golds)
	}
	if len(golds) < 2 {
		return nil
	}

	// Gold-to-gold adjacency, symmetric.
	neighbors := map[grid.Coord][]grid.Coord{}
	for _, g := range golds {
		for _, a := range b.adjacentLandHexes(g) {
			if slices.Contains(golds, a) {
				neighbors[g] = append(neighbors[g], a)
			}
		}
	}
	if len(neighbors) == 0 {
		return nil
	}

	// Swap targets: land hexes in the group that are neither gold nor
	// adjacent to one.
	var targets []grid.Coord
	for _, h := range coords {
		t := b.HexAt(h)
		if t == HexGold || t == HexWater {
			continue
		}
		adj := grid.AdjacentHexes(h)
		if !slices.ContainsFunc(adj[:], func(nb grid.Coord) bool {
			return b.HexAt(nb) == HexGold
		}) {
			targets = append(targets, h)
		}
	}

	for len(neighbors) > 0 && len(targets) > 0 {
		// Most crowded gold first; path order breaks ties.
		var g grid.Coord
		most := 0
		for _, h := range golds {
			if n := len(neighbors[h]); n > most {
				most, g = n, h
			}
		}

		dest := targets[b.rng.Intn(len(targets))]
		b.setHex(g, b.HexAt(dest))
		b.setHex(dest, HexGold)

		// The destination and everything around it stop being targets.
		targets = removeCoord(targets, dest)
		for _, nb := range grid.AdjacentHexes(dest) {
			targets = removeCoord(targets, nb)
		}

		// The moved gold leaves the adjacency graph.
		for _, a := range neighbors[g] {
			rest := removeCoord(neighbors[a], g)
			if len(rest) == 0 {
				delete(neighbors, a)
			} else {
				neighbors[a] = rest
			}
		}
		delete(neighbors, g)
		golds = removeCoord(golds, g)
	}
	return nil
}

// moveGoldToSecondArea enforces the single-gold rule for desert-strip
// layouts: the gold must end up past the desert, in the group's second
// declared area.
func (b *Board) moveGoldToSecondArea(coords []grid.Coord, areas []AreaRange, golds []grid.Coord) error {
	if len(golds) != 1 || len(areas) != 2 {
		return fmt.Errorf("gold-in-second-area rule needs 1 gold hex and 2 areas, group has %d and %d: %w",
			len(golds), len(areas), ErrBadLayout)
	}
	gold := golds[0]
	second := coords[areas[0].Count:]
	if slices.Contains(second, gold) {
		return nil
	}
	dest := second[b.rng.Intn(len(second))]
	b.setHex(gold, b.HexAt(dest))
	b.setHex(dest, HexGold)
	return nil
}
