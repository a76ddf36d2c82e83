package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/api-gateway/internal/apierr"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/utils"
	"github.com/MKhiriev/api-gateway/models"
)

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to net/http, routing every returned error through
// handleError. Routes under /api/v1 are meant to be registered through it,
// decoding their bodies with bindJSON.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.handleError(w, r, err)
		}
	}
}

// handleError is the error normalizer: it classifies err, logs it once and
// writes the JSON error envelope.
//
// The log level follows the final status: error for 5xx, warn otherwise.
// The stack trace is logged for 5xx only and is sent to the client, together
// with validation details, only outside production.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequestOr(r, h.logger)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("error normalizer failed")
			utils.WriteFallbackJSON(w, fallbackErrorBody, http.StatusInternalServerError)
		}
	}()

	if err == nil {
		err = errors.New(apierr.InternalMessage)
	}

	class := apierr.Classify(err)
	timestamp := utils.FormatTimestamp(h.now())
	path := requestPath(r)
	stack := apierr.StackOf(err)

	event := log.Warn()
	if class.StatusCode >= http.StatusInternalServerError {
		event = log.Error().Str("stackTrace", stack)
	}
	event.
		Int("statusCode", class.StatusCode).
		Str("method", r.Method).
		Str("url", path).
		Str("clientAddress", clientAddress(r)).
		Str("userAgent", r.UserAgent()).
		Str("timestamp", timestamp).
		Msg(logMessage(err, class))

	h.recorder.RecordError(r.Context(), class.StatusCode, class.Kind.String())

	body := models.ErrorBody{
		Message:    class.Message,
		StatusCode: class.StatusCode,
		Timestamp:  timestamp,
		Path:       path,
	}

	if h.services.AppInfoService.IsProduction(r.Context()) {
		body.Stack = ""
		body.Details = nil
	} else {
		body.Stack = stack
		if class.Kind == apierr.KindValidation {
			body.Details = toErrorDetails(class.Issues)
		}
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorEnvelope{Error: body}, class.StatusCode); writeErr != nil {
		log.Err(writeErr).Msg("error writing error envelope")
		utils.WriteFallbackJSON(w, fallbackErrorBody, http.StatusInternalServerError)
	}
}

func logMessage(err error, class apierr.Classification) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return class.Message
}

func toErrorDetails(issues []apierr.ValidationIssue) []models.ErrorDetail {
	details := make([]models.ErrorDetail, 0, len(issues))
	for _, issue := range issues {
		details = append(details, models.ErrorDetail{
			Path:     issue.Field,
			Message:  issue.Message,
			Received: issue.RejectedValue,
		})
	}
	return details
}

// clientAddress returns the host part of the peer address.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
