//nolint:revive // types is a standard Go package name pattern
package types

// The fragment types below are pre-computed analysis results produced
// upstream (eligibility checking, fit scoring, credibility review, risk
// review, company research). The engine consumes them read-only; a missing
// fragment simply means the matching detector has nothing to report.

// EligibilityResult records whether the candidate meets the role's hard
// requirements.
type EligibilityResult struct {
	Eligible    bool   `json:"eligible"`
	Requirement string `json:"requirement,omitempty"` // machine key for the failed requirement
	Reason      string `json:"reason,omitempty"`      // user-facing explanation
}

// FitDetails describes graded quality-of-match findings for the pairing.
type FitDetails struct {
	MissingSkills []string `json:"missing_skills,omitempty"`
	WeakAreas     []string `json:"weak_areas,omitempty"`
}

// CredibilityResult flags resume claims that may not survive scrutiny.
type CredibilityResult struct {
	TitleInflation     bool     `json:"title_inflation"`
	InflatedTitle      string   `json:"inflated_title,omitempty"`
	UnverifiableClaims []string `json:"unverifiable_claims,omitempty"`
}

// RiskAnalysis describes employment-pattern risks in the candidate's
// history.
type RiskAnalysis struct {
	JobHopping          bool `json:"job_hopping"`
	AvgTenureMonths     int  `json:"avg_tenure_months,omitempty"`
	EmploymentGapMonths int  `json:"employment_gap_months,omitempty"`
}

// CompanyHealth carries externally gathered health intel about one company.
type CompanyHealth struct {
	Company       string `json:"company"`
	RecentLayoffs bool   `json:"recent_layoffs"`
	LayoffNote    string `json:"layoff_note,omitempty"`
	HiringFreeze  bool   `json:"hiring_freeze"`
	FundingRisk   bool   `json:"funding_risk"`
	Note          string `json:"note,omitempty"`
}

// EvaluationInput is the single structured request the engine evaluates.
// Score is the protected value the engine must never alter; detectors only
// ever receive by-value copies of it.
type EvaluationInput struct {
	Caller  string  `json:"caller,omitempty"` // endpoint label stamped into violations
	Enabled bool    `json:"enabled"`          // staged-rollout flag; false returns an empty bundle
	Score   float64 `json:"score"`

	Company    string `json:"company,omitempty"`
	JobText    string `json:"job_text,omitempty"`
	ResumeText string `json:"resume_text,omitempty"`

	Eligibility   *EligibilityResult        `json:"eligibility,omitempty"`
	Fit           *FitDetails               `json:"fit,omitempty"`
	Credibility   *CredibilityResult        `json:"credibility,omitempty"`
	Risk          *RiskAnalysis             `json:"risk,omitempty"`
	CompanyHealth map[string]*CompanyHealth `json:"company_health,omitempty"` // keyed by company name
}
