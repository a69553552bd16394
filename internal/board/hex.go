// Package board generates the randomized terrain layout for the sea
// board: land placement with clump breaking, gold-hex separation,
// frequent-dice-number balancing, port placement, fog hiding, and the
// pirate path.
package board

import (
	"github.com/castaway-games/seaboard/internal/grid"
)

// HexType identifies the terrain of one hex.
type HexType int8

const (
	HexWater HexType = iota
	HexClay
	HexOre
	HexSheep
	HexWheat
	HexWood
	HexDesert
	HexGold
	HexFog

	// HexUnset marks coordinates outside the board.
	HexUnset HexType = -1
)

// Land reports whether the hex type is part of a landmass. Fog counts
// as land until revealed.
func (t HexType) Land() bool { return t > HexWater }

func (t HexType) String() string {
	switch t {
	case HexWater:
		return "water"
	case HexClay:
		return "clay"
	case HexOre:
		return "ore"
	case HexSheep:
		return "sheep"
	case HexWheat:
		return "wheat"
	case HexWood:
		return "wood"
	case HexDesert:
		return "desert"
	case HexGold:
		return "gold"
	case HexFog:
		return "fog"
	}
	return "unset"
}

// NoNumber is the dice-number value of hexes that never produce:
// deserts and fog. Water hexes written inside a landmass path carry 0
// instead.
const NoNumber = -1

// frequentNumber reports whether a dice number is rolled most often
// (the red 6s and 8s).
func frequentNumber(n int) bool { return n == 6 || n == 8 }

// PortType identifies a harbor's trade ratio: Misc trades 3:1 on any
// resource, the rest trade 2:1 on theirs.
type PortType int8

const (
	PortMisc PortType = iota
	PortClay
	PortOre
	PortSheep
	PortWheat
	PortWood
)

func (p PortType) String() string {
	switch p {
	case PortMisc:
		return "3:1"
	case PortClay:
		return "clay"
	case PortOre:
		return "ore"
	case PortSheep:
		return "sheep"
	case PortWheat:
		return "wheat"
	case PortWood:
		return "wood"
	}
	return "unknown"
}

// PortEdge is a scenario-defined port location: a sea edge and the
// facing from that edge toward the land hex it serves.
type PortEdge struct {
	Edge   grid.Coord
	Facing grid.Facing
}

// Port is a placed harbor.
type Port struct {
	Type   PortType      `json:"type"`
	Edge   grid.Coord    `json:"edge"`
	Facing grid.Facing   `json:"facing"`
	Nodes  [2]grid.Coord `json:"nodes"`
}
