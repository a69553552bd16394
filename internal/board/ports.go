package board

import (
	"fmt"
	"slices"

	"github.com/castaway-games/seaboard/internal/grid"
)

// maxPortShuffleAttempts bounds reshuffling when same-type ports keep
// clumping along the coastline.
const maxPortShuffleAttempts = 100

// placePorts validates every port edge against the finished landmasses
// and writes the port table. Mainland port types are shuffled when the
// plan says so, with the clump check on runs of identical neighbors;
// island port types are always shuffled, unchecked, since those sets
// are too small to clump meaningfully.
func (b *Board) placePorts(plan Plan, clumpLimit int) error {
	if err := b.validatePortEdges(plan.MainPortEdges); err != nil {
		return err
	}
	if err := b.validatePortEdges(plan.IslandPortEdges); err != nil {
		return err
	}
	if len(plan.MainPorts) != len(plan.MainPortEdges) {
		return fmt.Errorf("%d mainland port types for %d edges: %w",
			len(plan.MainPorts), len(plan.MainPortEdges), ErrBadLayout)
	}
	if len(plan.IslandPorts) != len(plan.IslandPortEdges) {
		return fmt.Errorf("%d island port types for %d edges: %w",
			len(plan.IslandPorts), len(plan.IslandPortEdges), ErrBadLayout)
	}

	main := slices.Clone(plan.MainPorts)
	if plan.ShuffleMainPorts {
		if err := b.shufflePortTypes(main, clumpLimit); err != nil {
			return err
		}
	}
	islands := slices.Clone(plan.IslandPorts)
	if err := b.shufflePortTypes(islands, 0); err != nil {
		return err
	}

	b.writePorts(main, plan.MainPortEdges)
	b.writePorts(islands, plan.IslandPortEdges)
	return nil
}

// validatePortEdges checks each port's geometry: the facing must be
// legal for the edge's orientation, the faced hex must be land, and
// the hex behind the port must be sea. These are table bugs, so the
// errors name the offending edge.
func (b *Board) validatePortEdges(edges []PortEdge) error {
	for _, pe := range edges {
		legal := grid.LegalFacings(grid.OrientationOf(pe.Edge))
		if pe.Facing != legal[0] && pe.Facing != legal[1] {
			return fmt.Errorf("port at edge %v: facing should be %v or %v, not %v: %w",
				pe.Edge, legal[0], legal[1], pe.Facing, ErrBadLayout)
		}
		land, _ := grid.AdjacentHexToEdge(pe.Edge, pe.Facing)
		if !b.isLand(land) {
			return fmt.Errorf("port at edge %v faces water, not land, at hex %v: %w",
				pe.Edge, land, ErrBadLayout)
		}
		sea, _ := grid.AdjacentHexToEdge(pe.Edge, pe.Facing.Opposite())
		if b.isLand(sea) {
			return fmt.Errorf("port at edge %v covers up land hex %v: %w",
				pe.Edge, sea, ErrBadLayout)
		}
	}
	return nil
}

// shufflePortTypes shuffles in place. With a positive limit, runs of
// identical types longer than the limit along the (circular) coastline
// order trigger a reshuffle.
func (b *Board) shufflePortTypes(types []PortType, clumpLimit int) error {
	for attempt := 0; attempt < maxPortShuffleAttempts; attempt++ {
		b.rng.Shuffle(len(types), func(i, j int) {
			types[i], types[j] = types[j], types[i]
		})
		if clumpLimit <= 0 || !portClump(types, clumpLimit) {
			return nil
		}
	}
	return fmt.Errorf("port clump check failed %d times for %d ports: %w",
		maxPortShuffleAttempts, len(types), ErrUnsatisfiable)
}

// portClump reports a run of identical port types longer than limit,
// treating the slice as a ring.
func portClump(types []PortType, limit int) bool {
	n := len(types)
	if n <= limit {
		return false
	}
	run := 1
	for i := 1; i < n+limit; i++ {
		if types[i%n] == types[(i-1)%n] {
			run++
			if run > limit {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func (b *Board) writePorts(types []PortType, edges []PortEdge) {
	for i, pe := range edges {
		nodes := grid.AdjacentNodesToEdge(pe.Edge)
		b.Ports = append(b.Ports, Port{
			Type:   types[i],
			Edge:   pe.Edge,
			Facing: pe.Facing,
			Nodes:  nodes,
		})
		b.nodePorts[nodes[0]] = types[i]
		b.nodePorts[nodes[1]] = types[i]
	}
}
