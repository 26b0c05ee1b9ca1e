package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/policy"
)

func TestMarketBias_EmptyJobText(t *testing.T) {
	checks, err := MarketBias("")
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestMarketBias_ElitePedigreeLanguage(t *testing.T) {
	checks, err := MarketBias("We hire exclusively from Ivy League schools and similar.")
	require.NoError(t, err)
	require.Len(t, checks, 1)

	check := checks[0]
	assert.Equal(t, policy.CategoryMarketBias, check.Category)
	assert.Equal(t, policy.SeverityCoaching, check.Severity)
	assert.Equal(t, "elite_pedigree_language", check.Trigger)
	assert.Equal(t, "ivy league", check.Evidence)
}

func TestMarketBias_AgeCodedLanguage(t *testing.T) {
	checks, err := MarketBias("Looking for a digital native to join our team.")
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "age_coded_language", checks[0].Trigger)
}

func TestMarketBias_NeverCarriesScoreEffects(t *testing.T) {
	checks, err := MarketBias("faang experience required, young and energetic culture")
	require.NoError(t, err)
	require.Len(t, checks, 2)
	for _, check := range checks {
		assert.NotContains(t, check.AllowedEffects, policy.EffectModifyScore)
		assert.NotContains(t, check.AllowedEffects, policy.EffectAlterEligibility)
		assert.Contains(t, check.ForbiddenEffects, policy.EffectModifyScore)
		assert.Contains(t, check.ForbiddenEffects, policy.EffectAlterEligibility)
	}
}

func TestMarketBias_CleanPosting(t *testing.T) {
	checks, err := MarketBias("We value demonstrated ability and welcome all backgrounds.")
	require.NoError(t, err)
	assert.Empty(t, checks)
}
