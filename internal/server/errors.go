package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/decision-engine/internal/policy"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDecisionNotFound indicates no stored decision has the id.
type ErrDecisionNotFound struct {
	ID uuid.UUID
}

func (e *ErrDecisionNotFound) Error() string {
	return fmt.Sprintf("decision not found: %s", e.ID)
}

// ErrInvalidCredentials indicates the client credential exchange failed.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid client credentials"
}

// HTTPStatus returns the HTTP status code for an error. A guardrail
// violation is an internal-server-class failure: it signals a code or
// configuration defect, and clients must not retry automatically.
func HTTPStatus(err error) int {
	var violation *policy.GuardrailViolation
	if errors.As(err, &violation) {
		return http.StatusInternalServerError
	}
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrDecisionNotFound:
		return http.StatusNotFound
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Rule  string `json:"rule,omitempty"` // populated for guardrail violations
}

func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	var violation *policy.GuardrailViolation
	if errors.As(err, &violation) {
		resp.Rule = string(violation.Rule)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
