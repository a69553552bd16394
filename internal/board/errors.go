package board

import "errors"

var (
	// ErrBadLayout reports a malformed scenario definition: mismatched
	// area ranges, fog in an input multiset, invalid port geometry, a
	// land area declared twice, or a broken gold placement rule. These
	// are bugs in the layout tables, not bad luck.
	ErrBadLayout = errors.New("invalid board layout definition")

	// ErrUnsatisfiable reports that shuffling could not meet the clump
	// constraints within the retry budget.
	ErrUnsatisfiable = errors.New("cannot satisfy layout constraints")

	// ErrNoPiratePath reports a pirate move on a board whose scenario
	// defines no pirate path.
	ErrNoPiratePath = errors.New("board has no pirate path")

	// ErrNotFogHidden reports revealing a hex that is not under fog.
	ErrNotFogHidden = errors.New("hex is not hidden in fog")
)
