// Package policy defines the closed check taxonomy and the fixed guardrail
// policy tables the rest of the engine is validated against.
package policy

// Category identifies what kind of condition a check represents.
// The set is closed: exactly six members.
type Category string

const (
	CategoryEligibility   Category = "eligibility"
	CategoryFit           Category = "fit"
	CategoryCredibility   Category = "credibility"
	CategoryRisk          Category = "risk"
	CategoryMarketBias    Category = "market_bias"
	CategoryMarketClimate Category = "market_climate"
)

// Categories returns all categories in fixed display-priority order.
func Categories() []Category {
	return []Category{
		CategoryEligibility,
		CategoryFit,
		CategoryCredibility,
		CategoryRisk,
		CategoryMarketBias,
		CategoryMarketClimate,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryEligibility, CategoryFit, CategoryCredibility,
		CategoryRisk, CategoryMarketBias, CategoryMarketClimate:
		return true
	}
	return false
}

// IsCapability reports whether c describes the candidate's own capability.
// MarketBias and MarketClimate are context about external hiring conditions
// and must never be presented as the sole reason to act.
func (c Category) IsCapability() bool {
	switch c {
	case CategoryEligibility, CategoryFit, CategoryCredibility, CategoryRisk:
		return true
	case CategoryMarketBias, CategoryMarketClimate:
		return false
	}
	return false
}

// Priority returns the fixed per-category sort priority. Lower sorts first.
func (c Category) Priority() int {
	switch c {
	case CategoryEligibility:
		return 1
	case CategoryFit:
		return 2
	case CategoryCredibility:
		return 3
	case CategoryRisk:
		return 4
	case CategoryMarketBias:
		return 5
	case CategoryMarketClimate:
		return 6
	}
	// Unknown categories sort last; the validator rejects them before
	// aggregation can ever see one.
	return 99
}

// Severity ranks how urgent a check is, from Blocker (most) to
// Informational (least).
type Severity string

const (
	SeverityBlocker       Severity = "blocker"
	SeverityWarning       Severity = "warning"
	SeverityCoaching      Severity = "coaching"
	SeverityInformational Severity = "informational"
)

// Severities returns all severities from most to least urgent.
func Severities() []Severity {
	return []Severity{SeverityBlocker, SeverityWarning, SeverityCoaching, SeverityInformational}
}

// Valid reports whether s is a member of the closed severity set.
func (s Severity) Valid() bool {
	switch s {
	case SeverityBlocker, SeverityWarning, SeverityCoaching, SeverityInformational:
		return true
	}
	return false
}

// Rank returns the sort rank of the severity: Blocker=0 ... Informational=3.
func (s Severity) Rank() int {
	switch s {
	case SeverityBlocker:
		return 0
	case SeverityWarning:
		return 1
	case SeverityCoaching:
		return 2
	case SeverityInformational:
		return 3
	}
	return 4
}

// RequiresAlternatives reports whether a check of this severity must carry
// at least one strategic alternative.
func (s Severity) RequiresAlternatives() bool {
	return s == SeverityBlocker || s == SeverityWarning
}
