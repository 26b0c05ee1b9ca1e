package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/decision-engine/internal/types"
)

// callerLabel is the endpoint context stamped into guardrail violations
// raised from the API surface.
const callerLabel = "api.decisions"

// EvaluateRequest is the POST /v1/decisions payload.
type EvaluateRequest struct {
	Score      float64 `json:"score" validate:"gte=0,lte=100"`
	Company    string  `json:"company,omitempty" validate:"max=200"`
	JobText    string  `json:"job_text,omitempty"`
	ResumeText string  `json:"resume_text,omitempty"`

	Eligibility   *types.EligibilityResult        `json:"eligibility,omitempty"`
	Fit           *types.FitDetails               `json:"fit,omitempty"`
	Credibility   *types.CredibilityResult        `json:"credibility,omitempty"`
	Risk          *types.RiskAnalysis             `json:"risk,omitempty"`
	CompanyHealth map[string]*types.CompanyHealth `json:"company_health,omitempty"`
}

// EvaluateResponse wraps the result bundle with its storage id (when
// persistence is configured).
type EvaluateResponse struct {
	ID     *uuid.UUID          `json:"id,omitempty"`
	Result *types.ResultBundle `json:"result"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	input := &types.EvaluationInput{
		Caller:        callerLabel,
		Enabled:       s.cfg.GuardrailsEnabled,
		Score:         req.Score,
		Company:       req.Company,
		JobText:       req.JobText,
		ResumeText:    req.ResumeText,
		Eligibility:   req.Eligibility,
		Fit:           req.Fit,
		Credibility:   req.Credibility,
		Risk:          req.Risk,
		CompanyHealth: req.CompanyHealth,
	}

	bundle, err := s.engine.Evaluate(r.Context(), input)
	if err != nil {
		// Fail-closed: a violation returns no partial result.
		writeError(w, err)
		return
	}

	resp := EvaluateResponse{Result: bundle}
	if s.database != nil {
		id, err := s.database.SaveDecision(r.Context(), callerLabel, req.Company, req.Score, bundle)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.ID = &id
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListResponse carries recent stored decision ids, newest first.
type ListResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

func (s *Server) handleListDecisions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 500 {
			writeError(w, &ErrValidation{Field: "limit", Message: "must be an integer between 1 and 500"})
			return
		}
		limit = parsed
	}

	resp := ListResponse{IDs: []uuid.UUID{}}
	if s.database != nil {
		ids, err := s.database.ListDecisions(r.Context(), callerLabel, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		if ids != nil {
			resp.IDs = ids
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	if s.database == nil {
		writeError(w, &ErrDecisionNotFound{ID: id})
		return
	}

	raw, err := s.database.GetDecision(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if raw == nil {
		writeError(w, &ErrDecisionNotFound{ID: id})
		return
	}

	// Stored bundles re-enter the pipeline from persistence; validate the
	// structure before serving, same violation type as the live path.
	if err := s.validateStored(raw); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
