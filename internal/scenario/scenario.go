// Package scenario holds the declarative board recipes: per-scenario,
// per-player-count hex multisets, coordinate paths, dice numbers, land
// area partitions, port tables, and pirate paths. The generation
// algorithms stay scenario-agnostic; everything scenario-specific
// lives in these tables.
package scenario

import (
	"fmt"
	"sort"

	"github.com/castaway-games/seaboard/internal/board"
	"github.com/castaway-games/seaboard/internal/grid"
)

// Scenario tags.
const (
	Classic       = "classic"
	FogIsland     = "fog-island"
	ThroughDesert = "through-desert"
	FourIslands   = "four-islands"
	PirateIslands = "pirate-islands"
)

// Shorthand for the layout tables.
const (
	clay   = board.HexClay
	ore    = board.HexOre
	sheep  = board.HexSheep
	wheat  = board.HexWheat
	wood   = board.HexWood
	desert = board.HexDesert
	gold   = board.HexGold
	water  = board.HexWater

	pMisc  = board.PortMisc
	pClay  = board.PortClay
	pOre   = board.PortOre
	pSheep = board.PortSheep
	pWheat = board.PortWheat
	pWood  = board.PortWood

	ne = grid.FacingNE
	e  = grid.FacingE
	se = grid.FacingSE
	sw = grid.FacingSW
	w  = grid.FacingW
	nw = grid.FacingNW
)

type key struct {
	tag     string
	players int
}

var plans = map[key]func() board.Plan{
	{Classic, 4}:       classic4,
	{Classic, 6}:       classic6,
	{FogIsland, 4}:     fogIsland4,
	{ThroughDesert, 4}: throughDesert4,
	{FourIslands, 4}:   fourIslands4,
	{PirateIslands, 4}: pirateIslands4,
}

// Lookup resolves a scenario tag and player count to its board plan.
// An empty tag means the classic sea board. Player counts up to 4 use
// the 4-player layout; 5 and 6 use the 6-player layout where the
// scenario defines one.
func Lookup(tag string, players int) (board.Plan, error) {
	if tag == "" {
		tag = Classic
	}
	pl := 4
	if players > 4 {
		pl = 6
	}
	build, ok := plans[key{tag, pl}]
	if !ok {
		return board.Plan{}, fmt.Errorf("no %d-player layout for scenario %q", players, tag)
	}
	return build(), nil
}

// Tags lists the known scenario tags, sorted.
func Tags() []string {
	seen := map[string]bool{}
	for k := range plans {
		seen[k.tag] = true
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
