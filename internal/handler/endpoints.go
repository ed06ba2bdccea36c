package handler

import (
	_ "embed"
	"net/http"

	"gamereviews/internal/logging"
)

//go:embed endpoints.json
var endpointsDoc []byte

// GetEndpoints serves the endpoint catalog describing every route
func (h *ReviewHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", h.codec.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(endpointsDoc); err != nil {
		logging.Error().Err(err).Msg("Failed to write endpoint catalog")
	}
}
