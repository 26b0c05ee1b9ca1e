package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/decision-engine/internal/guardrails"
)

// replayLabel marks violations raised while validating stored bundles.
const replayLabel = "api.decisions.replay"

func (s *Server) validateStored(raw json.RawMessage) error {
	return guardrails.ValidateStoredBundle(raw, replayLabel)
}

// TokenRequest is the client-credential exchange payload.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	if !s.creds.Verify(req.ClientID, req.ClientSecret) {
		writeError(w, &ErrInvalidCredentials{})
		return
	}

	token, err := s.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64((time.Duration(s.jwtService.config.ExpirationHours) * time.Hour).Seconds()),
	})
}
