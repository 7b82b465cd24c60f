package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"revcast/internal/forecast"
)

// SimulateRequest is the wire shape of POST /api/v1/simulate. Optional
// fields are pointers so "absent" and "zero" stay distinguishable.
type SimulateRequest struct {
	Opportunities   []OpportunityDTO `json:"opportunities"`
	NumSimulations  *int             `json:"num_simulations,omitempty"`
	TimeHorizonDays *int             `json:"time_horizon_days,omitempty"`
	RevenueTargets  []float64        `json:"revenue_targets,omitempty"`
}

// OpportunityDTO mirrors the Salesforce Opportunity fields the Apex handler
// sends: name, USD amount, decimal win probability, ISO close date.
type OpportunityDTO struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Probability float64 `json:"probability"`
	CloseDate   ISODate `json:"close_date"`
}

// ISODate unmarshals a bare "YYYY-MM-DD" JSON string.
type ISODate struct {
	time.Time
}

func (d *ISODate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("close_date is required")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("close_date must be YYYY-MM-DD: %w", err)
	}
	d.Time = t
	return nil
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// DecodeSimulateRequest parses and coerces a wire payload into a core
// request. Shared by the HTTP handler and the one-shot CLI command.
func DecodeSimulateRequest(r io.Reader) (forecast.Request, error) {
	var dto SimulateRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		return forecast.Request{}, fmt.Errorf("malformed request body: %w", err)
	}
	if len(dto.Opportunities) == 0 {
		return forecast.Request{}, fmt.Errorf("opportunities must contain at least one entry")
	}

	req := forecast.Request{
		Opportunities: make([]forecast.Opportunity, len(dto.Opportunities)),
		Targets:       dto.RevenueTargets,
	}
	for i, o := range dto.Opportunities {
		req.Opportunities[i] = forecast.Opportunity{
			Name:        o.Name,
			Amount:      o.Amount,
			Probability: o.Probability,
			CloseDate:   o.CloseDate.Time,
		}
	}
	if dto.NumSimulations != nil {
		req.Trials = *dto.NumSimulations
	}
	if dto.TimeHorizonDays != nil {
		req.HorizonDays = *dto.TimeHorizonDays
	}
	return req, nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeSimulateRequest(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := s.sim.Run(r.Context(), req)
	if err != nil {
		s.writeSimulationError(w, err)
		return
	}

	s.metrics.SimulationDuration.Observe(result.Metadata.ComputeTimeMs / 1000)
	s.metrics.TrialsTotal.Add(float64(result.Metadata.Trials))

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeSimulationError(w http.ResponseWriter, err error) {
	var vErr *forecast.ValidationError
	var rErr *forecast.ResourceLimitError

	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, "validation_error", vErr.Error())
	case errors.As(err, &rErr):
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", rErr.Error())
	default:
		log.Error().Err(err).Msg("Simulation failed")
		msg := "An unexpected error occurred."
		if s.cfg.Debug {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, "internal_server_error", msg)
	}
}

// HealthResponse is the payload of GET /health, used by load balancers and
// Named Credential connectivity tests.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   s.version,
		Timestamp: time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}
