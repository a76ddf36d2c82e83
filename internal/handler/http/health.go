package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/utils"
	"github.com/MKhiriev/api-gateway/models"
)

// health renders the composite health report: 200 when the status is OK,
// 503 otherwise. When the report cannot be built the minimal failure body is
// returned instead.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequestOr(r, h.logger)

	report, err := h.checkHealth(r)
	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		h.writeHealth(w, log, models.NewHealthFailure(utils.FormatTimestamp(h.now())), http.StatusServiceUnavailable)
		return
	}

	status := http.StatusOK
	if report.Status != models.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}

	h.writeHealth(w, log, report, status)
}

// checkHealth converts a panic of the health service into an error so the
// failure body is still written.
func (h *Handler) checkHealth(r *http.Request) (report models.HealthReport, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errHealthPanicked, rec)
		}
	}()

	return h.services.HealthService.Check(r.Context())
}

func (h *Handler) writeHealth(w http.ResponseWriter, log *logger.Logger, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
