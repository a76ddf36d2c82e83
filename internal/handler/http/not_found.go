package http

import (
	"net/http"

	"github.com/MKhiriev/api-gateway/internal/utils"
	"github.com/MKhiriev/api-gateway/models"
)

// notFound answers unmatched routes and unsupported methods alike.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, err := utils.WriteJSON(w, models.NotFoundResponse{
		Error:   msgNotFound,
		Message: msgNotFoundDetails,
		Path:    requestPath(r),
	}, http.StatusNotFound)
	if err != nil {
		h.logger.Err(err).Msg("error writing not found response")
	}
}

// requestPath returns the original request URI, query string included.
func requestPath(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
