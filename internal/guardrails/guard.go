package guardrails

import (
	"fmt"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// ScoreGuard holds a by-value snapshot of the protected score, taken before
// any detector runs. Detectors exist to inform, never to move the score; a
// drift between snapshot and input is a code defect, caught mechanically
// rather than by code review.
type ScoreGuard struct {
	snapshot float64
}

// NewScoreGuard snapshots the protected score from the input.
func NewScoreGuard(in *types.EvaluationInput) *ScoreGuard {
	return &ScoreGuard{snapshot: in.Score}
}

// Assert re-reads the score from the same input and compares it against the
// snapshot. Any inequality is a fatal score-mutation violation, regardless
// of which detector ran.
func (g *ScoreGuard) Assert(in *types.EvaluationInput, caller string) error {
	if in.Score != g.snapshot {
		return &policy.GuardrailViolation{
			Rule:   policy.RuleScoreMutation,
			Caller: caller,
			Detail: fmt.Sprintf("protected score changed during evaluation: %v -> %v", g.snapshot, in.Score),
		}
	}
	return nil
}
