package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
)

// handleApplication scores the candidate against every job in the request
// and returns the full match list in input order.
func (s *Server) handleApplication(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeApplicationInput(w, r)
	if !ok {
		return
	}

	matches := scoring.ScoreAll(input.Candidate, input.Jobs)
	s.jsonResponse(w, http.StatusOK, types.MatchesResponse{Matches: matches})
}

// handleExplain re-runs scoring and renders the plain-text breakdown for
// the job named in the path.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	input, ok := s.decodeApplicationInput(w, r)
	if !ok {
		return
	}

	explanation, err := scoring.Explain(input.Candidate, input.Jobs, jobID)
	if err != nil {
		if errors.Is(err, scoring.ErrJobNotFound) {
			s.jsonResponse(w, http.StatusNotFound, map[string]string{"detail": "Job not found"})
			return
		}
		s.jsonResponse(w, HTTPStatus(err), map[string]string{"detail": err.Error()})
		return
	}

	s.textResponse(w, http.StatusOK, explanation)
}

// decodeApplicationInput reads, schema-validates and decodes the request
// body. On failure it writes the 422 response itself and reports false.
func (s *Server) decodeApplicationInput(w http.ResponseWriter, r *http.Request) (*types.ApplicationInput, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"detail": "failed to read request body"})
		return nil, false
	}

	if err := schemas.ValidateApplicationInput(body); err != nil {
		s.validationResponse(w, err)
		return nil, false
	}

	var input types.ApplicationInput
	if err := json.Unmarshal(body, &input); err != nil {
		s.validationResponse(w, err)
		return nil, false
	}

	if err := input.Validate(); err != nil {
		s.validationResponse(w, err)
		return nil, false
	}

	return &input, true
}

// validationResponse writes a 422 with structured field errors.
func (s *Server) validationResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: detailErrors(err)})
}
