package detectors

import (
	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// MarketClimate surfaces external hiring conditions at the target company.
// It receives the resume and job text plus the company-health fragment, but
// never the score. Like MarketBias, its checks are context only.
func MarketClimate(resumeText, jobText string, health *types.CompanyHealth) ([]types.Check, error) {
	_ = resumeText // reserved for climate rules keyed to the candidate's sector
	_ = jobText

	if health == nil {
		return nil, nil
	}

	var checks []types.Check

	if health.RecentLayoffs {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryMarketClimate,
			Severity: policy.SeverityInformational,
			Trigger:  "recent_layoffs",
			Message:  "This company has had recent layoffs; hiring may be slower or reprioritized.",
			Evidence: health.LayoffNote,
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

	if health.HiringFreeze {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryMarketClimate,
			Severity: policy.SeverityCoaching,
			Trigger:  "hiring_freeze",
			Message:  "Reports indicate a hiring freeze; an open listing may be stale or internal-only.",
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

	if health.FundingRisk {
		check, err := types.NewCheck(types.CheckSpec{
			Category: policy.CategoryMarketClimate,
			Severity: policy.SeverityInformational,
			Trigger:  "funding_risk",
			Message:  "External signals suggest funding pressure at this company.",
			Evidence: health.Note,
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
