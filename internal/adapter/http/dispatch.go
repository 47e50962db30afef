package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

type sendResponse struct {
	Sent                int  `json:"sent"`
	Failed              int  `json:"failed"`
	Total               int  `json:"total"`
	DailyQuotaRemaining int  `json:"dailyQuotaRemaining"`
	Paused              bool `json:"paused,omitempty"`
}

func newSendResponse(res *port.DispatchResult) *sendResponse {
	if res == nil {
		return nil
	}
	return &sendResponse{
		Sent:                res.Sent,
		Failed:              res.Failed,
		Total:               res.Total,
		DailyQuotaRemaining: res.DailyQuotaRemaining,
		Paused:              res.Paused,
	}
}

type partialSendResponse struct {
	Error  string        `json:"error"`
	Result *sendResponse `json:"result"`
}

type previewResponse struct {
	TotalMatching       int `json:"totalMatching"`
	AvailableAfterDedup int `json:"availableAfterDedup"`
	EmailsSentToday     int `json:"emailsSentToday"`
	DailyLimit          int `json:"dailyLimit"`
	QuotaRemaining      int `json:"quotaRemaining"`
	WillSend            int `json:"willSend"`
}

type resumeRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

type testSendRequest struct {
	Email string `json:"email"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// handleSend runs a dispatch synchronously. A run that started but stopped
// on an unexpected error reports its partial counts with HTTP 500. The run
// continues when the client goes away.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.jobContext(r)
	defer cancel()

	id := chi.URLParam(r, "id")
	res, err := h.dispatch.Send(ctx, id)
	if err != nil {
		if res != nil {
			h.logger.Error("send error", slog.String("campaign_id", id), slog.Any("error", err))
			h.writeJSON(w, http.StatusInternalServerError, partialSendResponse{
				Error:  "dispatch stopped early",
				Result: newSendResponse(res),
			})
			return
		}
		h.writeUseCaseError(w, "send", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSendResponse(res))
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	p, err := h.dispatch.Preview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUseCaseError(w, "preview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, previewResponse{
		TotalMatching:       p.TotalLeads,
		AvailableAfterDedup: p.AvailableLeads,
		EmailsSentToday:     p.EmailsSentToday,
		DailyLimit:          p.DailyLimit,
		QuotaRemaining:      p.RemainingQuota,
		WillSend:            p.WillSend,
	})
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	if err := h.dispatch.Pause(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeUseCaseError(w, "pause", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: string(domain.CampaignPaused)})
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Status != domain.CampaignDraft && req.Status != domain.CampaignActive {
		h.writeError(w, http.StatusBadRequest, "status must be draft or active")
		return
	}
	if err := h.dispatch.Resume(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		h.writeUseCaseError(w, "resume", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: string(req.Status)})
}

func (h *Handler) handleTestSend(w http.ResponseWriter, r *http.Request) {
	var req testSendRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !domain.IsValidEmail(req.Email) {
		h.writeError(w, http.StatusBadRequest, port.ErrInvalidEmail.Error())
		return
	}
	err := h.dispatch.TestSend(r.Context(), chi.URLParam(r, "id"), req.Email)
	var sendErr *port.SendError
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, statusResponse{Status: "sent"})
	case errors.As(err, &sendErr):
		h.logger.Warn("test send rejected", slog.Any("error", err))
		h.writeError(w, http.StatusBadGateway, "email provider rejected the message")
	default:
		h.writeUseCaseError(w, "test send", err)
	}
}
