package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/api-gateway/internal/apierr"
)

// bindJSON decodes the request body into dst and validates it. The returned
// errors are already classified for the error normalizer.
func (h *Handler) bindJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apierr.Wrap(err, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		}
		return apierr.Wrap(err, http.StatusBadRequest, msgInvalidJSON)
	}

	return h.validator.Validate(r.Context(), dst)
}
