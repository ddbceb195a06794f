package api

import (
	"io"
	"net/http"

	"go.uber.org/zap"
)

// handleRelay forwards a target URL to an upstream JSON API and returns the
// body verbatim. It exists solely so the browser UI can reach listing APIs
// that don't send CORS headers; there is no analytical logic here.
func (s *Server) handleRelay(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		writeError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	zap.L().Debug("api: relaying request", zap.String("target", target))

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target URL")
		return
	}

	resp, err := s.relayClient.Do(req)
	if err != nil {
		zap.L().Warn("api: relay fetch failed", zap.String("target", target), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch data")
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		zap.L().Debug("api: relay copy interrupted", zap.Error(err))
	}
}
