package searcher

import "math"

// HorizonPolicy picks a search depth from the expansions left this turn and
// the branching factor at the root.
type HorizonPolicy func(remaining, branching int) int

// FullWidthHorizon spreads the budget evenly over the root's branches:
// floor(remaining / branching).
func FullWidthHorizon(remaining, branching int) int {
	if branching <= 0 || remaining <= 0 {
		return 0
	}
	return remaining / branching
}

// LogHorizon returns the smallest h with branching^h >= remaining, i.e.
// ceil(log_branching(remaining)), and at least 1.
func LogHorizon(remaining, branching int) int {
	if branching <= 0 {
		return 0
	}
	if branching == 1 {
		// A single line costs one expansion per ply
		return max(remaining, 1)
	}

	horizon := 0
	for leaves := 1; leaves < remaining; horizon++ {
		if leaves > math.MaxInt/branching {
			horizon++
			break
		}
		leaves *= branching
	}
	return max(horizon, 1)
}
