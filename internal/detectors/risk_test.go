package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

func TestRisk_NilFragment(t *testing.T) {
	checks, err := Risk(nil)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestRisk_JobHoppingWarning(t *testing.T) {
	checks, err := Risk(&types.RiskAnalysis{
		JobHopping:      true,
		AvgTenureMonths: 9,
	})
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, policy.CategoryRisk, checks[0].Category)
	assert.Equal(t, policy.SeverityWarning, checks[0].Severity)
	assert.Equal(t, "short_tenure_pattern", checks[0].Trigger)
	assert.Contains(t, checks[0].Evidence, "9 months")
	assert.NotEmpty(t, checks[0].Alternatives)
}

func TestRisk_EmploymentGapCoaching(t *testing.T) {
	checks, err := Risk(&types.RiskAnalysis{EmploymentGapMonths: 8})
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, policy.SeverityCoaching, checks[0].Severity)
	assert.Equal(t, "employment_gap", checks[0].Trigger)
}

func TestRisk_ShortGapIgnored(t *testing.T) {
	checks, err := Risk(&types.RiskAnalysis{EmploymentGapMonths: 3})
	require.NoError(t, err)
	assert.Empty(t, checks)
}
