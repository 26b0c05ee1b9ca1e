package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/config"
	"github.com/jonathan/decision-engine/internal/guardrails"
	"github.com/jonathan/decision-engine/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return &Server{
		engine:     guardrails.New(),
		cfg:        &config.Config{Port: 8080, GuardrailsEnabled: true},
		jwtService: newTestJWTService(),
		creds:      &config.ClientCredentials{ClientID: "client", BcryptCost: 10},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func postEvaluate(t *testing.T, s *Server, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/decisions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleEvaluate(rec, req)
	return rec
}

func TestHandleEvaluate_BlockerResult(t *testing.T) {
	s := newTestServer(t)
	rec := postEvaluate(t, s, EvaluateRequest{
		Score: 35,
		Eligibility: &types.EligibilityResult{
			Eligible:    false,
			Requirement: "work_authorization",
			Reason:      "role requires US work authorization",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.ID, "no persistence configured")
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.HasBlocker)
	require.NotNil(t, resp.Result.Primary)
	assert.Equal(t, "work_authorization", resp.Result.Primary.Trigger)
}

func TestHandleEvaluate_CleanInput(t *testing.T) {
	s := newTestServer(t)
	rec := postEvaluate(t, s, EvaluateRequest{Score: 80})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Result.Checks)
	assert.Empty(t, resp.Result.Display)
}

func TestHandleEvaluate_GuardrailsDisabled(t *testing.T) {
	s := newTestServer(t)
	s.cfg.GuardrailsEnabled = false

	rec := postEvaluate(t, s, EvaluateRequest{
		Score:       10,
		Eligibility: &types.EligibilityResult{Eligible: false, Reason: "missing clearance"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Result.Checks, "dark rollout returns an empty bundle")
}

func TestHandleEvaluate_ScoreOutOfRange(t *testing.T) {
	s := newTestServer(t)
	rec := postEvaluate(t, s, EvaluateRequest{Score: 120})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvaluate_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/decisions", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	s.handleEvaluate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListDecisions_NoDatabase(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/decisions", nil)
	rec := httptest.NewRecorder()
	s.handleListDecisions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.IDs)
	assert.Contains(t, rec.Body.String(), `"ids":[]`, "empty list serializes as an array, not null")
}

func TestHandleListDecisions_BadLimit(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/decisions?limit=0", nil)
	rec := httptest.NewRecorder()
	s.handleListDecisions(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetDecision_BadID(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/decisions/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()
	s.handleGetDecision(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetDecision_NoDatabase(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/decisions/7e0f28f1-8c28-4f7d-9d3f-111111111111", nil)
	req.SetPathValue("id", "7e0f28f1-8c28-4f7d-9d3f-111111111111")
	rec := httptest.NewRecorder()
	s.handleGetDecision(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleToken_ValidCredentials(t *testing.T) {
	s := newTestServer(t)
	hash, err := s.creds.HashSecret("s3cret")
	require.NoError(t, err)
	s.creds.SecretHash = hash

	body, err := json.Marshal(TokenRequest{ClientID: "client", ClientSecret: "s3cret"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(time.Hour.Seconds()), resp.ExpiresIn)

	clientID, err := s.jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "client", clientID)
}

func TestHandleToken_BadCredentials(t *testing.T) {
	s := newTestServer(t)
	hash, err := s.creds.HashSecret("s3cret")
	require.NoError(t, err)
	s.creds.SecretHash = hash

	body, err := json.Marshal(TokenRequest{ClientID: "client", ClientSecret: "wrong"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleToken(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleToken_MissingFields(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	s.handleToken(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
