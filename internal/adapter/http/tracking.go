package httpadapter

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// pixelGIF is a transparent 1x1 GIF.
var pixelGIF, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

// handleTrackOpen records an open and always answers with the pixel.
func (h *Handler) handleTrackOpen(w http.ResponseWriter, r *http.Request) {
	if leadID := r.URL.Query().Get("leadId"); leadID != "" {
		if err := h.tracking.RecordOpen(r.Context(), leadID); err != nil {
			h.logger.Warn("record open", slog.String("lead_id", leadID), slog.Any("error", err))
		}
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pixelGIF)
}

// handleTrackClick records a click and always redirects, to the site root
// when no usable target was given.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if leadID := q.Get("leadId"); leadID != "" {
		if err := h.tracking.RecordClick(r.Context(), leadID); err != nil {
			h.logger.Warn("record click", slog.String("lead_id", leadID), slog.Any("error", err))
		}
	}

	http.Redirect(w, r, redirectTarget(q.Get("url")), http.StatusFound)
}

// redirectTarget accepts any http, https, mailto or tel target because the
// links come from campaign bodies. For those schemes the endpoint is an
// open redirect. Other schemes such as javascript: and data: go to "/".
func redirectTarget(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "/"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return raw
	default:
		return "/"
	}
}
