package confirmations

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/sprintertech/across-relayer/config"
)

// THRESHOLD_DECIMALS is the precision of the configured amount breakpoints.
const THRESHOLD_DECIMALS = 18

type breakpoint struct {
	raw    string
	amount *big.Int
	depth  uint64
}

// Thresholds maps input amount breakpoints to the number of additional
// block confirmations required before an order is executed.
type Thresholds struct {
	breakpoints []breakpoint
}

// NewThresholds parses human readable breakpoints, like {"0.5": 1, "10": 5}.
func NewThresholds(raw map[string]uint64) (Thresholds, error) {
	breakpoints := make([]breakpoint, 0, len(raw))
	for amount, depth := range raw {
		a, err := config.ToRawAmount(amount, THRESHOLD_DECIMALS)
		if err != nil {
			return Thresholds{}, fmt.Errorf("invalid confirmation breakpoint %s: %w", amount, err)
		}

		breakpoints = append(breakpoints, breakpoint{
			raw:    amount,
			amount: a,
			depth:  depth,
		})
	}

	slices.SortFunc(breakpoints, func(a, b breakpoint) int {
		return a.amount.Cmp(b.amount)
	})
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i].amount.Cmp(breakpoints[i-1].amount) == 0 {
			return Thresholds{}, fmt.Errorf("duplicate confirmation breakpoint %s", breakpoints[i].raw)
		}
	}

	return Thresholds{breakpoints: breakpoints}, nil
}

// RequiredDepth returns the depth of the greatest breakpoint not exceeding amount.
// False is returned if the amount is below every breakpoint.
func (t Thresholds) RequiredDepth(amount *big.Int) (uint64, bool) {
	for i := len(t.breakpoints) - 1; i >= 0; i-- {
		if amount.Cmp(t.breakpoints[i].amount) >= 0 {
			return t.breakpoints[i].depth, true
		}
	}

	return 0, false
}

// Table returns the breakpoints as they were configured.
func (t Thresholds) Table() map[string]uint64 {
	table := make(map[string]uint64, len(t.breakpoints))
	for _, b := range t.breakpoints {
		table[b.raw] = b.depth
	}
	return table
}
