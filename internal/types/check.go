// Package types provides type definitions for structured data used throughout the decision engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/jonathan/decision-engine/internal/policy"
)

// Check is the atomic unit of engine output: one detected condition about a
// candidate/role pairing. Checks are created through NewCheck and treated as
// immutable afterwards.
type Check struct {
	Category         policy.Category `json:"category"`
	Severity         policy.Severity `json:"severity"`
	Trigger          string          `json:"trigger"`
	Message          string          `json:"message"`
	Evidence         string          `json:"evidence,omitempty"`
	Alternatives     []string        `json:"alternatives"`
	AllowedEffects   []policy.Effect `json:"allowed_effects"`
	ForbiddenEffects []policy.Effect `json:"forbidden_effects"`
	OverrideAllowed  bool            `json:"override_allowed"`
}

// CheckSpec carries the caller-supplied fields for constructing a Check.
// OverrideAllowed is a pointer so an unset value can default correctly
// (true for everything except eligibility blockers, which are forced false).
type CheckSpec struct {
	Category        policy.Category
	Severity        policy.Severity
	Trigger         string
	Message         string
	Evidence        string
	Alternatives    []string
	AllowedEffects  []policy.Effect
	OverrideAllowed *bool
}

// NewCheck constructs a Check, enforcing every construction-time invariant.
// The same invariants are re-asserted later by the policy validator; a
// detector cannot produce a malformed check in the first place, and the
// validator cannot be bypassed by constructing one by hand.
func NewCheck(spec CheckSpec) (*Check, error) {
	if !spec.Category.Valid() {
		return nil, &policy.GuardrailViolation{
			Rule:     policy.RuleMalformedCheck,
			Category: spec.Category,
			Trigger:  spec.Trigger,
			Detail:   "unknown category",
		}
	}
	if !policy.SeverityLegal(spec.Category, spec.Severity) {
		return nil, &policy.GuardrailViolation{
			Rule:     policy.RuleIllegalSeverity,
			Category: spec.Category,
			Trigger:  spec.Trigger,
			Detail:   "severity " + string(spec.Severity) + " is not legal for category " + string(spec.Category),
		}
	}
	if spec.Severity.RequiresAlternatives() && len(spec.Alternatives) == 0 {
		return nil, &policy.GuardrailViolation{
			Rule:     policy.RuleMissingAlternatives,
			Category: spec.Category,
			Trigger:  spec.Trigger,
			Detail:   string(spec.Severity) + " checks require at least one strategic alternative",
		}
	}

	forbidden := policy.ForbiddenEffectsFor(spec.Category)
	for _, allowed := range spec.AllowedEffects {
		for _, f := range forbidden {
			if allowed == f {
				return nil, &policy.GuardrailViolation{
					Rule:     policy.RuleForbiddenEffect,
					Category: spec.Category,
					Trigger:  spec.Trigger,
					Detail:   "allowed effect " + string(allowed) + " is universally forbidden",
				}
			}
		}
	}

	override := true
	if spec.OverrideAllowed != nil {
		override = *spec.OverrideAllowed
	}
	if spec.Category == policy.CategoryEligibility && spec.Severity == policy.SeverityBlocker {
		if spec.OverrideAllowed != nil && *spec.OverrideAllowed {
			return nil, &policy.GuardrailViolation{
				Rule:     policy.RuleOverridableBlocker,
				Category: spec.Category,
				Trigger:  spec.Trigger,
				Detail:   "eligibility blockers can never be overridable",
			}
		}
		override = false
	}

	// Slices stay non-nil so serialized checks always carry arrays, never
	// null, and replay validation sees the same shape the engine produced.
	return &Check{
		Category:         spec.Category,
		Severity:         spec.Severity,
		Trigger:          spec.Trigger,
		Message:          spec.Message,
		Evidence:         spec.Evidence,
		Alternatives:     append([]string{}, spec.Alternatives...),
		AllowedEffects:   append([]policy.Effect{}, spec.AllowedEffects...),
		ForbiddenEffects: forbidden,
		OverrideAllowed:  override,
	}, nil
}
