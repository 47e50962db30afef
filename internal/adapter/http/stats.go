package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"outreach/internal/core/port"
)

type statsResponse struct {
	Pending   int64 `json:"pending"`
	Sent      int64 `json:"sent"`
	Failed    int64 `json:"failed"`
	Opened    int64 `json:"opened"`
	Clicked   int64 `json:"clicked"`
	Delivered int64 `json:"delivered"`
}

// handleStatsOverview returns send record counts over a period. It accepts
// optional `from`, `to` (RFC3339) and `campaign_id` query parameters. The
// period defaults to the last 24 hours.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseStatsPeriod(w, r)
	if !ok {
		return
	}
	if cid := r.URL.Query().Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}
	h.writeStats(w, r, req)
}

func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseStatsPeriod(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	req.CampaignID = &id
	h.writeStats(w, r, req)
}

func (h *Handler) parseStatsPeriod(w http.ResponseWriter, r *http.Request) (port.StatsReq, bool) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		now     = time.Now()
		req     = port.StatsReq{From: now.Add(-24 * time.Hour), To: now}
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'from' timestamp")
			return req, false
		}
	}
	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid 'to' timestamp")
			return req, false
		}
	}
	if !req.From.Before(req.To) {
		h.writeError(w, http.StatusBadRequest, "'from' must be before 'to'")
		return req, false
	}
	return req, true
}

func (h *Handler) writeStats(w http.ResponseWriter, r *http.Request, req port.StatsReq) {
	stats, err := h.dispatch.GetStats(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{
		Pending:   stats.Pending,
		Sent:      stats.Sent,
		Failed:    stats.Failed,
		Opened:    stats.Opened,
		Clicked:   stats.Clicked,
		Delivered: stats.Delivered(),
	})
}
