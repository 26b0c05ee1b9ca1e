package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

func TestFit_LowScoreWarnsEvenWithoutFragment(t *testing.T) {
	checks, err := Fit(nil, 35)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, policy.CategoryFit, checks[0].Category)
	assert.Equal(t, policy.SeverityWarning, checks[0].Severity)
	assert.Equal(t, "low_match_score", checks[0].Trigger)
	assert.NotEmpty(t, checks[0].Alternatives)
}

func TestFit_ScoreAtThresholdDoesNotWarn(t *testing.T) {
	checks, err := Fit(nil, 40)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestFit_MissingSkillsCoaching(t *testing.T) {
	checks, err := Fit(&types.FitDetails{
		MissingSkills: []string{"kubernetes", "go"},
	}, 65)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, policy.SeverityCoaching, checks[0].Severity)
	assert.Equal(t, "missing_skills", checks[0].Trigger)
	assert.Equal(t, "go, kubernetes", checks[0].Evidence, "evidence is sorted for determinism")
}

func TestFit_WeakAreasCoaching(t *testing.T) {
	checks, err := Fit(&types.FitDetails{
		WeakAreas: []string{"people management"},
	}, 70)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "weak_areas", checks[0].Trigger)
}

func TestFit_LowScoreAndFragmentStack(t *testing.T) {
	checks, err := Fit(&types.FitDetails{
		MissingSkills: []string{"rust"},
	}, 20)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "low_match_score", checks[0].Trigger)
	assert.Equal(t, "missing_skills", checks[1].Trigger)
}

func TestFit_InputOrderDoesNotChangeOutput(t *testing.T) {
	a, err := Fit(&types.FitDetails{MissingSkills: []string{"b", "a", "c"}}, 65)
	require.NoError(t, err)
	b, err := Fit(&types.FitDetails{MissingSkills: []string{"c", "a", "b"}}, 65)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
