package detectors

import (
	"fmt"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Gaps shorter than this are routine and not worth a check.
const employmentGapFloorMonths = 6

// Risk evaluates employment-pattern risks from the upstream risk analysis.
func Risk(frag *types.RiskAnalysis) ([]types.Check, error) {
	if frag == nil {
		return nil, nil
	}

	var checks []types.Check

	if frag.JobHopping {
		evidence := ""
		if frag.AvgTenureMonths > 0 {
			evidence = fmt.Sprintf("average tenure %d months", frag.AvgTenureMonths)
		}
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryRisk,
			Severity: policy.SeverityWarning,
			Trigger:  "short_tenure_pattern",
			Message:  "The recent history shows a pattern of short tenures that screeners flag.",
			Evidence: evidence,
			Alternatives: []string{
				"Prepare a concise narrative for each transition",
				"Lead with the longest, most relevant engagement",
			},
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
				policy.EffectSuggestAlternatives,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	if frag.EmploymentGapMonths >= employmentGapFloorMonths {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryRisk,
			Severity: policy.SeverityCoaching,
			Trigger:  "employment_gap",
			Message:  fmt.Sprintf("There is a %d-month employment gap interviewers will ask about.", frag.EmploymentGapMonths),
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	return checks, nil
}
