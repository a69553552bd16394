package board

import (
	"fmt"
	"math/rand"
	"slices"
)

// Generate builds a board from a scenario plan. Landmass groups are
// placed in declared order, each finishing (clump retries included)
// before the next begins; then land areas are checked, fog is laid,
// ports are validated and placed, and the pirate is seeded. The board
// is only returned on full success.
func Generate(plan Plan, opts Options, rng *rand.Rand) (*Board, error) {
	b := newBoard(plan.Height, plan.Width, plan.LandAreas, rng)
	b.noRobber = plan.NoRobber

	clumpLimit := 0
	if opts.BreakClumps {
		clumpLimit = opts.ClumpLimit
	}

	for i, spec := range plan.Groups {
		limit := 0
		if spec.BreakClumps {
			limit = clumpLimit
		}
		if err := b.placeLand(spec, limit); err != nil {
			return nil, fmt.Errorf("place landmass group %d: %w", i, err)
		}
	}

	if err := b.checkLandAreas(); err != nil {
		return nil, err
	}

	if len(plan.FogHexes) > 0 {
		if err := b.hideHexesInFog(plan.FogHexes); err != nil {
			return nil, err
		}
	}

	portClumpLimit := 0
	if plan.ShuffleMainPorts {
		portClumpLimit = clumpLimit
	}
	if err := b.placePorts(plan, portClumpLimit); err != nil {
		return nil, err
	}

	for name, part := range plan.ExtraParts {
		b.extraParts[name] = slices.Clone(part)
	}
	b.PirateHex = plan.PirateHex
	b.StartingLandArea = plan.StartingLandArea
	return b, nil
}
