package board

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// maxPlacementAttempts bounds the shuffle-and-redo loop when the clump
// check keeps failing. The shipped layouts converge within a handful
// of attempts; hitting the cap means the spec and limit are
// incompatible.
const maxPlacementAttempts = 250

// placeLand lays one landmass group onto the board: shuffles the
// terrain and dice-number multisets as the spec directs, writes them
// along the path, redoes the whole group while same-type hexes clump,
// then separates gold hexes and balances the red dice numbers. On
// success the group's hexes join the land list and its corner nodes
// join their land areas.
//
// clumpLimit 0 disables the clump check.
func (b *Board) placeLand(spec LayoutSpec, clumpLimit int) error {
	total := 0
	for _, ar := range spec.Areas {
		total += ar.Count
	}
	if total != len(spec.Path) {
		return fmt.Errorf("area ranges cover %d hexes, path has %d: %w",
			total, len(spec.Path), ErrBadLayout)
	}
	if len(spec.HexTypes) != len(spec.Path) {
		return fmt.Errorf("%d hex types for %d path hexes: %w",
			len(spec.HexTypes), len(spec.Path), ErrBadLayout)
	}
	if slices.Contains(spec.HexTypes, HexFog) {
		return fmt.Errorf("fog in input hex types; fog is applied after placement: %w",
			ErrBadLayout)
	}

	types := slices.Clone(spec.HexTypes)
	numbers := slices.Clone(spec.Numbers)
	checkClumps := spec.ShuffleTypes && spec.BreakClumps && clumpLimit > 0

	for attempt := 0; ; attempt++ {
		if attempt == maxPlacementAttempts {
			return fmt.Errorf("clump check failed %d times for %d-hex group: %w",
				attempt, len(spec.Path), ErrUnsatisfiable)
		}

		if spec.ShuffleTypes {
			b.rng.Shuffle(len(types), func(i, j int) {
				types[i], types[j] = types[j], types[i]
			})
		}
		if spec.ShuffleNumbers {
			b.rng.Shuffle(len(numbers), func(i, j int) {
				numbers[i], numbers[j] = numbers[j], numbers[i]
			})
		}

		var frequent []grid.Coord
		used := 0
		for i, hex := range spec.Path {
			t := types[i]
			b.setHex(hex, t)
			switch {
			case t == HexDesert:
				b.setNumber(hex, NoNumber)
				if !b.noRobber {
					b.RobberHex = hex
				}
			case t == HexWater:
				b.setNumber(hex, 0)
			default:
				if used < len(numbers) {
					n := numbers[used]
					used++
					b.setNumber(hex, n)
					if spec.ShuffleNumbers && frequentNumber(n) {
						frequent = append(frequent, hex)
					}
				}
			}
		}

		if checkClumps && b.hasClump(spec.Path, clumpLimit) {
			continue
		}

		if spec.ShuffleTypes {
			if err := b.arrangeGold(spec.Path, spec.Areas, spec.GoldInSecondArea); err != nil {
				return err
			}
		}
		if spec.ShuffleNumbers && !b.balanceFrequentNumbers(spec.Path, frequent) {
			slog.Warn("red dice numbers not fully separated",
				"group_size", len(spec.Path))
		}
		break
	}

	b.landHexes = append(b.landHexes, spec.Path...)
	idx := 0
	for _, ar := range spec.Areas {
		if err := b.addNodesForLandArea(spec.Path[idx:idx+ar.Count], ar.Area); err != nil {
			return err
		}
		idx += ar.Count
	}
	return nil
}

// hasClump reports whether any connected run of same-type hexes within
// the just-placed group exceeds the limit. Water written inside the
// path is ignored.
func (b *Board) hasClump(path []grid.Coord, limit int) bool {
	unvisited := make(map[grid.Coord]bool, len(path))
	for _, h := range path {
		unvisited[h] = true
	}
	for _, h := range path {
		if !unvisited[h] {
			continue
		}
		delete(unvisited, h)
		t := b.HexAt(h)
		if t == HexWater {
			continue
		}
		size := 1
		queue := []grid.Coord{h}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range grid.AdjacentHexes(cur) {
				if unvisited[nb] && b.HexAt(nb) == t {
					delete(unvisited, nb)
					size++
					queue = append(queue, nb)
				}
			}
		}
		if size > limit {
			return true
		}
	}
	return false
}
