// Package detectors implements the six per-category guardrail detectors.
//
// Every detector is a pure function over its own slice of the evaluation
// input: no I/O, no clock, no randomness, and never the protected score
// itself (the fit detector receives a by-value copy). Each detector emits
// checks of its own fixed category only, and returning zero checks is the
// normal nothing-to-report case.
package detectors

import (
	"github.com/jonathan/decision-engine/internal/types"
)

// Func is the common detector contract the engine fans out over.
type Func func() ([]types.Check, error)
