package detectors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Scores below this are a weak match regardless of fragment detail.
const lowMatchScoreThreshold = 40.0

// Fit evaluates graded quality-of-match findings. The score parameter is a
// by-value copy of the protected score, taken by the engine before the
// detectors run; nothing here can reach the original.
func Fit(frag *types.FitDetails, score float64) ([]types.Check, error) {
	var checks []types.Check

	if score < lowMatchScoreThreshold {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryFit,
			Severity: policy.SeverityWarning,
			Trigger:  "low_match_score",
			Message:  fmt.Sprintf("Match score %.0f is below %.0f; this application is unlikely to clear screening.", score, lowMatchScoreThreshold),
			Alternatives: []string{
				"Target roles that match the candidate's strongest skills",
				"Close the largest skill gaps before applying to this tier",
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

	if frag == nil {
		return checks, nil
	}

	if len(frag.MissingSkills) > 0 {
		skills := append([]string(nil), frag.MissingSkills...)
		sort.Strings(skills)
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryFit,
			Severity: policy.SeverityCoaching,
			Trigger:  "missing_skills",
			Message:  fmt.Sprintf("The posting asks for %d skills the candidate has not demonstrated.", len(skills)),
			Evidence: strings.Join(skills, ", "),
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	if len(frag.WeakAreas) > 0 {
		areas := append([]string(nil), frag.WeakAreas...)
		sort.Strings(areas)
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryFit,
			Severity: policy.SeverityCoaching,
			Trigger:  "weak_areas",
			Message:  "Some required areas are only weakly evidenced in the candidate's history.",
			Evidence: strings.Join(areas, ", "),
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
