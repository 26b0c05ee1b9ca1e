package guardrails

import (
	"sort"

	"github.com/jonathan/decision-engine/internal/types"
)

// At most this many checks are surfaced to the user.
const displayLimit = 2

// BuildBundle merges validated checks into a deterministic result bundle.
//
// Sort order: severity rank, then fixed category priority, then trigger key.
// Insertion order never participates, so identical inputs always serialize
// identically.
//
// Display selection walks the sorted list accepting up to two checks. A
// context check (market bias / market climate) is only accepted after a
// capability check; if the full list holds no capability check at all, the
// context checks stay in `checks` but nothing is displayed. Context alone
// must never be the reason to encourage or discourage an action.
func BuildBundle(checks []types.Check) *types.ResultBundle {
	sorted := append([]types.Check{}, checks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if a, b := sorted[i].Severity.Rank(), sorted[j].Severity.Rank(); a != b {
			return a < b
		}
		if a, b := sorted[i].Category.Priority(), sorted[j].Category.Priority(); a != b {
			return a < b
		}
		return sorted[i].Trigger < sorted[j].Trigger
	})

	bundle := &types.ResultBundle{
		Checks:  sorted,
		Display: []types.Check{},
	}

	for _, check := range sorted {
		switch check.Severity.Rank() {
		case 0:
			bundle.HasBlocker = true
		case 1:
			bundle.HasWarning = true
		}
	}

	capabilityShown := false
	for _, check := range sorted {
		if len(bundle.Display) >= displayLimit {
			break
		}
		if !check.Category.IsCapability() && !capabilityShown {
			continue
		}
		if check.Category.IsCapability() {
			capabilityShown = true
		}
		bundle.Display = append(bundle.Display, check)
	}

	if len(bundle.Display) > 0 {
		primary := bundle.Display[0]
		bundle.Primary = &primary
	}
	if len(bundle.Display) > 1 {
		secondary := bundle.Display[1]
		bundle.Secondary = &secondary
	}

	return bundle
}
