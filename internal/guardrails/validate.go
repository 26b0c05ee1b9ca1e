// Package guardrails implements the decision integrity engine: the policy
// validator, the score-integrity guard, the aggregator, and the single-pass
// evaluation pipeline that ties them together.
//
// The engine is fail-closed. There are exactly two outcomes: a valid result
// bundle, or a *policy.GuardrailViolation that aborts the whole evaluation.
package guardrails

import (
	"fmt"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

// Validate runs every policy rule against a single check, in fixed order.
// It exists because detectors are individually simple but collectively
// untrusted: this is the one choke point a new detector cannot bypass.
// The rules repeat the construction-time invariants on purpose; a check
// assembled by hand (or round-tripped through storage) gets the same
// scrutiny as one built through types.NewCheck.
func Validate(check *types.Check, caller string) error {
	// (a) severity must be legal for the category.
	if !policy.SeverityLegal(check.Category, check.Severity) {
		return &policy.GuardrailViolation{
			Rule:     policy.RuleIllegalSeverity,
			Category: check.Category,
			Trigger:  check.Trigger,
			Caller:   caller,
			Detail:   fmt.Sprintf("severity %q is not legal for category %q", check.Severity, check.Category),
		}
	}

	// (b) no allowed effect may intersect the universal forbidden set.
	for _, allowed := range check.AllowedEffects {
		for _, forbidden := range policy.UniversalForbiddenEffects() {
			if allowed == forbidden {
				return &policy.GuardrailViolation{
					Rule:     policy.RuleForbiddenEffect,
					Category: check.Category,
					Trigger:  check.Trigger,
					Caller:   caller,
					Detail:   fmt.Sprintf("allowed effect %q is universally forbidden", allowed),
				}
			}
		}
	}

	// (c) stricter category-specific re-assertion of (b): context categories
	// can never carry score or eligibility effects.
	if !check.Category.IsCapability() {
		for _, allowed := range check.AllowedEffects {
			if allowed == policy.EffectModifyScore || allowed == policy.EffectAlterEligibility {
				return &policy.GuardrailViolation{
					Rule:     policy.RuleContextEffect,
					Category: check.Category,
					Trigger:  check.Trigger,
					Caller:   caller,
					Detail:   fmt.Sprintf("context category %q declared effect %q", check.Category, allowed),
				}
			}
		}
	}

	// (d) blockers and warnings must offer a way forward.
	if check.Severity.RequiresAlternatives() && len(check.Alternatives) == 0 {
		return &policy.GuardrailViolation{
			Rule:     policy.RuleMissingAlternatives,
			Category: check.Category,
			Trigger:  check.Trigger,
			Caller:   caller,
			Detail:   fmt.Sprintf("%s checks require at least one strategic alternative", check.Severity),
		}
	}

	// (e) eligibility blockers are never overridable.
	if check.Category == policy.CategoryEligibility && check.Severity == policy.SeverityBlocker && check.OverrideAllowed {
		return &policy.GuardrailViolation{
			Rule:     policy.RuleOverridableBlocker,
			Category: check.Category,
			Trigger:  check.Trigger,
			Caller:   caller,
			Detail:   "eligibility blockers can never be overridable",
		}
	}

	return nil
}
