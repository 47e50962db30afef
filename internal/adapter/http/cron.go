package httpadapter

import (
	"errors"
	"net/http"

	"outreach/internal/core/port"
)

type sweepResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

type campaignRunResponse struct {
	CampaignID string        `json:"campaignId"`
	Name       string        `json:"name"`
	Skipped    string        `json:"skipped,omitempty"`
	Error      string        `json:"error,omitempty"`
	Result     *sendResponse `json:"result,omitempty"`
}

type dailyResponse struct {
	Message        string                `json:"message,omitempty"`
	Campaigns      []campaignRunResponse `json:"campaigns"`
	QuotaRemaining int                   `json:"quotaRemaining"`
}

func (h *Handler) handleFollowUpCron(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.jobContext(r)
	defer cancel()

	res, err := h.dispatch.SweepFollowUps(ctx)
	if err != nil {
		h.writeUseCaseError(w, "follow-up sweep", err)
		return
	}
	h.writeJSON(w, http.StatusOK, sweepResponse{Sent: res.Sent, Failed: res.Failed, Total: res.Total})
}

// handleDailyCron reports an exhausted quota as a successful no-op so the
// scheduler does not retry.
func (h *Handler) handleDailyCron(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.jobContext(r)
	defer cancel()

	report, err := h.dispatch.DispatchActive(ctx)
	if err != nil && !(errors.Is(err, port.ErrQuotaExhausted) && report != nil) {
		h.writeUseCaseError(w, "daily dispatch", err)
		return
	}

	resp := dailyResponse{
		Campaigns:      make([]campaignRunResponse, 0, len(report.Runs)),
		QuotaRemaining: report.RemainingQuota,
	}
	if err != nil {
		resp.Message = err.Error()
	}
	for _, run := range report.Runs {
		resp.Campaigns = append(resp.Campaigns, campaignRunResponse{
			CampaignID: run.CampaignID,
			Name:       run.Name,
			Skipped:    run.Skipped,
			Error:      run.Error,
			Result:     newSendResponse(run.Result),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
