package detectors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Credibility flags resume claims that may not survive interviewer
// scrutiny.
func Credibility(frag *types.CredibilityResult) ([]types.Check, error) {
	if frag == nil {
		return nil, nil
	}

	var checks []types.Check

	if frag.TitleInflation {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryCredibility,
			Severity: policy.SeverityCoaching,
			Trigger:  "title_inflation",
			Message:  "A listed title reads above the responsibilities described under it; interviewers probe this.",
			Evidence: frag.InflatedTitle,
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	if len(frag.UnverifiableClaims) > 0 {
		claims := append([]string(nil), frag.UnverifiableClaims...)
		sort.Strings(claims)
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryCredibility,
			Severity: policy.SeverityWarning,
			Trigger:  "unverifiable_claims",
			Message:  fmt.Sprintf("%d resume claims cannot be verified from the provided history.", len(claims)),
			Evidence: strings.Join(claims, "; "),
			Alternatives: []string{
				"Rephrase the claims around verifiable outcomes",
				"Attach references or artifacts that substantiate them",
			},
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
				policy.EffectFlagForReview,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	return checks, nil
}
