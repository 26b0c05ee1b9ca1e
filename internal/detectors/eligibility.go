package detectors

import (
	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Eligibility emits a single non-overridable blocker when the upstream
// eligibility check marked the candidate ineligible.
func Eligibility(frag *types.EligibilityResult) ([]types.Check, error) {
	if frag == nil || frag.Eligible {
		return nil, nil
	}

	trigger := frag.Requirement
	if trigger == "" {
		trigger = "unmet_requirement"
	}
	message := frag.Reason
	if message == "" {
		message = "This role has a hard requirement the candidate does not meet."
	}

	check, err := types.NewCheck(types.CheckSpec{
		Category: policy.CategoryEligibility,
		Severity: policy.SeverityBlocker,
		Trigger:  trigger,
		Message:  message,
		Alternatives: []string{
			"Search for comparable roles without this requirement",
			"Address the requirement before applying (certification, authorization, relocation)",
		},
		AllowedEffects: []policy.Effect{
			policy.EffectShowGuidance,
			policy.EffectSuggestAlternatives,
		},
	})
	if err != nil {
		return nil, err
	}
	return []types.Check{*check}, nil
}
