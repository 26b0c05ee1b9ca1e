package policy

import "fmt"

// Rule names the specific guardrail a violation broke.
type Rule string

const (
	// RuleIllegalSeverity: severity is not legal for the check's category.
	RuleIllegalSeverity Rule = "illegal_severity"
	// RuleForbiddenEffect: an allowed effect intersects the universal
	// forbidden set.
	RuleForbiddenEffect Rule = "forbidden_effect"
	// RuleContextEffect: a context-category check declared a score or
	// eligibility effect.
	RuleContextEffect Rule = "context_category_effect"
	// RuleMissingAlternatives: a Blocker/Warning check has no strategic
	// alternatives.
	RuleMissingAlternatives Rule = "missing_alternatives"
	// RuleOverridableBlocker: an eligibility Blocker was marked overridable.
	RuleOverridableBlocker Rule = "overridable_eligibility_blocker"
	// RuleScoreMutation: the protected score changed while the engine ran.
	RuleScoreMutation Rule = "score_mutation"
	// RuleMalformedCheck: a serialized check failed structural validation.
	RuleMalformedCheck Rule = "malformed_check"
)

// GuardrailViolation is the single fatal error type the engine produces.
// It is fail-closed: any violation aborts the whole evaluation and no
// partial result is returned. It carries enough context to be logged and
// alerted on by the caller without further investigation; the engine itself
// never logs.
type GuardrailViolation struct {
	Rule     Rule     // which guardrail was broken
	Category Category // category of the offending check, if known
	Trigger  string   // trigger key of the offending check, if known
	Caller   string   // caller/endpoint label supplied with the evaluation
	Detail   string   // human-readable specifics
}

func (v *GuardrailViolation) Error() string {
	msg := fmt.Sprintf("guardrail violation [%s]", v.Rule)
	if v.Category != "" {
		msg += fmt.Sprintf(" category=%s", v.Category)
	}
	if v.Trigger != "" {
		msg += fmt.Sprintf(" trigger=%s", v.Trigger)
	}
	if v.Caller != "" {
		msg += fmt.Sprintf(" caller=%s", v.Caller)
	}
	if v.Detail != "" {
		msg += ": " + v.Detail
	}
	return msg
}
