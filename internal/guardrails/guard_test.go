package guardrails

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/policy"
	"github.com/jonathan/decision-engine/internal/types"
)

func TestScoreGuard_UnchangedScorePasses(t *testing.T) {
	in := &types.EvaluationInput{Score: 72.5}
	guard := NewScoreGuard(in)
	assert.NoError(t, guard.Assert(in, "test"))
}

func TestScoreGuard_MutationIsFatal(t *testing.T) {
	in := &types.EvaluationInput{Score: 72.5}
	guard := NewScoreGuard(in)

	in.Score = 73.0

	err := guard.Assert(in, "api.decisions")
	require.Error(t, err)

	var violation *policy.GuardrailViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, policy.RuleScoreMutation, violation.Rule)
	assert.Equal(t, "api.decisions", violation.Caller)
}

func TestScoreGuard_TinyDriftStillCaught(t *testing.T) {
	in := &types.EvaluationInput{Score: 50}
	guard := NewScoreGuard(in)

	in.Score = 50.0000001

	err := guard.Assert(in, "test")
	require.Error(t, err)
}
