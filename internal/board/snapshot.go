package board

import (
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// Snapshot is the serializable form of a finished board, used for
// persistence and for comparing generation runs.
type Snapshot struct {
	Height           int                  `json:"height"`
	Width            int                  `json:"width"`
	Hexes            [][]HexType          `json:"hexes"`
	Numbers          [][]int              `json:"numbers"`
	LandHexes        []grid.Coord         `json:"land_hexes"`
	LandAreas        [][]grid.Coord       `json:"land_areas"`
	StartingLandArea int                  `json:"starting_land_area"`
	Ports            []Port               `json:"ports"`
	RobberHex        grid.Coord           `json:"robber_hex"`
	PirateHex        grid.Coord           `json:"pirate_hex"`
	FogHexes         []fogHexSnapshot     `json:"fog_hexes,omitempty"`
	ExtraParts       map[string][]int     `json:"extra_parts,omitempty"`
}

type fogHexSnapshot struct {
	Hex    grid.Coord `json:"hex"`
	Type   HexType    `json:"type"`
	Number int        `json:"number"`
}

// Snapshot deep-copies the board state. Fog memos are included so a
// restored board can still reveal its hidden hexes.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Height:           b.Height,
		Width:            b.Width,
		Hexes:            make([][]HexType, len(b.hexes)),
		Numbers:          make([][]int, len(b.numbers)),
		LandHexes:        slices.Clone(b.landHexes),
		LandAreas:        make([][]grid.Coord, len(b.areaNodes)),
		StartingLandArea: b.StartingLandArea,
		Ports:            slices.Clone(b.Ports),
		RobberHex:        b.RobberHex,
		PirateHex:        b.PirateHex,
	}
	for r := range b.hexes {
		s.Hexes[r] = slices.Clone(b.hexes[r])
		s.Numbers[r] = slices.Clone(b.numbers[r])
	}
	for i, nodes := range b.areaNodes {
		if nodes != nil {
			s.LandAreas[i] = sortedNodes(nodes)
		}
	}
	for _, h := range b.FogHexes() {
		memo := b.fogHidden[h]
		s.FogHexes = append(s.FogHexes, fogHexSnapshot{Hex: h, Type: memo.Type, Number: memo.Number})
	}
	if len(b.extraParts) > 0 {
		s.ExtraParts = make(map[string][]int, len(b.extraParts))
		for name, part := range b.extraParts {
			s.ExtraParts[name] = slices.Clone(part)
		}
	}
	return s
}

// TerrainCounts tallies the land hexes by type, fog included.
func (b *Board) TerrainCounts() map[HexType]int {
	counts := map[HexType]int{}
	for _, h := range b.landHexes {
		if t := b.HexAt(h); t.Land() {
			counts[t]++
		}
	}
	return counts
}
