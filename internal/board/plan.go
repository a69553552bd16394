package board

import (
	"github.com/castaway-games/seaboard/internal/grid"
)

// AreaRange assigns a run of consecutive path hexes to a land area.
type AreaRange struct {
	Area  int
	Count int
}

// LayoutSpec describes one landmass group: which hex types go where
// along a coordinate path, which dice numbers they carry, and how the
// group is shuffled. Specs are scenario data and are never mutated;
// placement works on copies.
type LayoutSpec struct {
	// HexTypes is the terrain multiset, one entry per path coordinate.
	HexTypes []HexType
	// Path lists the hex coordinates in placement order.
	Path []grid.Coord
	// Numbers is the dice-number multiset. Deserts and water consume
	// no number, so it may be shorter than the path. Nil when the
	// group is unnumbered.
	Numbers []int
	// ShuffleTypes and ShuffleNumbers control whether the multisets
	// are shuffled before placement or laid down in declared order.
	ShuffleTypes   bool
	ShuffleNumbers bool
	// Areas partitions the path into land areas; the counts must sum
	// to len(Path). Area 0 assigns no area.
	Areas []AreaRange
	// BreakClumps subjects this group to the clump check when the
	// generation options enable it. Only meaningful with ShuffleTypes.
	BreakClumps bool
	// GoldInSecondArea forces the group's single gold hex into the
	// second declared area (the far side of the desert strip).
	GoldInSecondArea bool
}

// Plan is a complete per-scenario, per-player-count board recipe,
// resolved from the scenario tables before generation starts.
type Plan struct {
	Name    string
	Players int

	// Height and Width are the maximum legal row and column.
	Height int
	Width  int

	// Groups are placed in order; each group finishes, retries
	// included, before the next begins.
	Groups []LayoutSpec

	// LandAreas is the number of declared land areas (1..LandAreas).
	LandAreas        int
	StartingLandArea int

	// NoRobber suppresses seeding the robber on the desert.
	NoRobber bool

	MainPorts        []PortType
	MainPortEdges    []PortEdge
	ShuffleMainPorts bool
	IslandPorts      []PortType
	IslandPortEdges  []PortEdge

	// FogHexes are hidden after land placement; they may cover land or
	// water.
	FogHexes []grid.Coord

	// PirateHex is the pirate's starting hex, 0 for none.
	PirateHex grid.Coord

	// ExtraParts carries named scenario layout parts (such as the
	// pirate path "PP") through to the board unchanged.
	ExtraParts map[string][]int
}

// Options tune the constraint search, independent of scenario.
type Options struct {
	// BreakClumps enables reshuffling groups (and mainland ports) that
	// gather too many same-type hexes together.
	BreakClumps bool
	// ClumpLimit is the largest allowed group of adjacent same-type
	// hexes, or run of same-type ports.
	ClumpLimit int
}

// DefaultOptions enables clump breaking at the conventional limit.
func DefaultOptions() Options {
	return Options{BreakClumps: true, ClumpLimit: 3}
}
