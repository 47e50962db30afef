package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"outreach/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeUseCaseError maps refusals to their status codes. Anything else is
// logged and reported as an internal error.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		h.writeError(w, status, "internal error")
		return
	}
	h.writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrAlreadySending), errors.Is(err, port.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, port.ErrQuotaExhausted):
		return http.StatusTooManyRequests
	case errors.Is(err, port.ErrNoEligibleLeads):
		return http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrInvalidEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
