package detectors

import (
	"strings"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// elitePedigreePhrases are job-text markers of pedigree filtering. The list
// is intentionally small; the guardrail machinery, not the phrase set, is
// the point.
var elitePedigreePhrases = []string{
	"ivy league",
	"top-tier university",
	"top tier university",
	"elite school",
	"elite university",
	"prestigious university",
	"faang experience",
}

var ageCodedPhrases = []string{
	"digital native",
	"recent graduate only",
	"young and energetic",
	"high-energy recent grad",
}

// MarketBias surfaces exclusionary language in the job posting itself.
// These checks are context about the listing, never about the candidate's
// capability, and can never unlock score or eligibility effects.
func MarketBias(jobText string) ([]types.Check, error) {
	if jobText == "" {
		return nil, nil
	}
	lower := strings.ToLower(jobText)

	var checks []types.Check

	if phrase := firstMatch(lower, elitePedigreePhrases); phrase != "" {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryMarketBias,
			Severity: policy.SeverityCoaching,
			Trigger:  "elite_pedigree_language",
			Message:  "The posting filters on school or employer pedigree rather than demonstrated ability.",
			Evidence: phrase,
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
				policy.EffectAnnotateListing,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	if phrase := firstMatch(lower, ageCodedPhrases); phrase != "" {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryMarketBias,
			Severity: policy.SeverityCoaching,
			Trigger:  "age_coded_language",
			Message:  "The posting uses age-coded language; treat its screening bar with skepticism.",
			Evidence: phrase,
			AllowedEffects: []policy.Effect{
				policy.EffectShowGuidance,
				policy.EffectAnnotateListing,
			},
		})
		if err != nil {
			return nil, err
		}
		checks = append(checks, *check)
	}

	return checks, nil
}

func firstMatch(lowerText string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(lowerText, p) {
			return p
		}
	}
	return ""
}
