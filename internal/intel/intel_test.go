package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompanyHealth_CleanPage(t *testing.T) {
	html := `<html><body><h1>Acme Q2 update</h1><p>Acme continues to grow steadily.</p></body></html>`

	health, err := BuildCompanyHealth(html, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", health.Company)
	assert.False(t, health.RecentLayoffs)
	assert.False(t, health.HiringFreeze)
	assert.False(t, health.FundingRisk)
}

func TestBuildCompanyHealth_LayoffsDetected(t *testing.T) {
	html := `<html><body><p>Acme announced a workforce reduction affecting 200 roles.</p></body></html>`

	health, err := BuildCompanyHealth(html, "Acme")
	require.NoError(t, err)
	assert.True(t, health.RecentLayoffs)
	assert.Equal(t, "page mentions workforce reduction", health.LayoffNote)
}

func TestBuildCompanyHealth_AllSignals(t *testing.T) {
	html := `<html><body>
		<p>Following the layoff in March, Acme entered a hiring freeze.</p>
		<p>Investors describe the latest raise as a down round.</p>
	</body></html>`

	health, err := BuildCompanyHealth(html, "Acme")
	require.NoError(t, err)
	assert.True(t, health.RecentLayoffs)
	assert.True(t, health.HiringFreeze)
	assert.True(t, health.FundingRisk)
	assert.Equal(t, "page mentions down round", health.Note)
}

func TestBuildCompanyHealth_ScriptContentIgnored(t *testing.T) {
	html := `<html><body>
		<script>var headline = "massive layoff tracker widget";</script>
		<style>.layoff-banner { display: none; }</style>
		<p>Acme is hiring across all teams.</p>
	</body></html>`

	health, err := BuildCompanyHealth(html, "Acme")
	require.NoError(t, err)
	assert.False(t, health.RecentLayoffs, "script and style text must not trigger signals")
}

func TestBuildCompanyHealth_CaseInsensitive(t *testing.T) {
	html := `<html><body><p>HIRING FREEZE announced company-wide.</p></body></html>`

	health, err := BuildCompanyHealth(html, "Acme")
	require.NoError(t, err)
	assert.True(t, health.HiringFreeze)
}

func TestBuildCompanyHealth_FragmentWithoutBody(t *testing.T) {
	health, err := BuildCompanyHealth(`<p>Acme paused hiring for the quarter.</p>`, "Acme")
	require.NoError(t, err)
	assert.True(t, health.HiringFreeze)
}
