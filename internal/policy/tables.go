package policy

// Effect names an operation a check is allowed (or forbidden) to unlock in
// the calling system.
type Effect string

// Effects a check may legitimately declare as allowed.
const (
	EffectShowGuidance        Effect = "show_guidance"
	EffectSuggestAlternatives Effect = "suggest_alternatives"
	EffectFlagForReview       Effect = "flag_for_review"
	EffectAnnotateListing     Effect = "annotate_listing"
)

// Effects no check may ever declare as allowed, regardless of category.
const (
	EffectModifyScore       Effect = "modify_match_score"
	EffectAlterEligibility  Effect = "alter_eligibility_threshold"
	EffectInflateExperience Effect = "inflate_credited_experience"
	EffectSuppressHistory   Effect = "suppress_work_history"
)

// UniversalForbiddenEffects returns the fixed set of effects that no check
// may declare as allowed. A fresh slice is returned on every call so no
// caller can mutate the table.
func UniversalForbiddenEffects() []Effect {
	return []Effect{
		EffectModifyScore,
		EffectAlterEligibility,
		EffectInflateExperience,
		EffectSuppressHistory,
	}
}

// ForbiddenEffectsFor computes the final forbidden-effect set for a check of
// the given category from the universal base set. The context categories
// (MarketBias, MarketClimate) additionally can never carry score or
// eligibility effects; for them the two tags are guaranteed present even
// though they are already in the universal set. This is a pure function:
// there is no shared default collection to append to.
func ForbiddenEffectsFor(c Category) []Effect {
	forbidden := UniversalForbiddenEffects()
	if c.IsCapability() {
		return forbidden
	}
	forbidden = ensureEffect(forbidden, EffectModifyScore)
	forbidden = ensureEffect(forbidden, EffectAlterEligibility)
	return forbidden
}

func ensureEffect(effects []Effect, e Effect) []Effect {
	for _, have := range effects {
		if have == e {
			return effects
		}
	}
	return append(effects, e)
}

// SeverityLegal reports whether a severity is legal for a category. The
// switch is exhaustive over every (category, severity) pair so adding a new
// member forces this table to be revisited.
func SeverityLegal(c Category, s Severity) bool {
	switch c {
	case CategoryEligibility:
		// Eligibility findings are hard, binary requirements.
		switch s {
		case SeverityBlocker:
			return true
		case SeverityWarning, SeverityCoaching, SeverityInformational:
			return false
		}
	case CategoryFit:
		switch s {
		case SeverityWarning, SeverityCoaching:
			return true
		case SeverityBlocker, SeverityInformational:
			return false
		}
	case CategoryCredibility:
		switch s {
		case SeverityWarning, SeverityCoaching:
			return true
		case SeverityBlocker, SeverityInformational:
			return false
		}
	case CategoryRisk:
		switch s {
		case SeverityWarning, SeverityCoaching:
			return true
		case SeverityBlocker, SeverityInformational:
			return false
		}
	case CategoryMarketBias:
		switch s {
		case SeverityCoaching:
			return true
		case SeverityBlocker, SeverityWarning, SeverityInformational:
			return false
		}
	case CategoryMarketClimate:
		switch s {
		case SeverityInformational, SeverityCoaching:
			return true
		case SeverityBlocker, SeverityWarning:
			return false
		}
	}
	return false
}

// LegalSeverities returns the severities legal for a category, most urgent
// first.
func LegalSeverities(c Category) []Severity {
	var legal []Severity
	for _, s := range Severities() {
		if SeverityLegal(c, s) {
			legal = append(legal, s)
		}
	}
	return legal
}
