package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/api-gateway/internal/apierr"
)

// withRecoverer turns a panic raised by a downstream handler into an
// unclassified error and hands it to the error normalizer, so a panicking
// route answers with the regular 500 envelope.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// the server aborts the connection on this sentinel
				panic(rec)
			}

			h.handleError(w, r, apierr.FromPanic(rec, debug.Stack()))
		}()

		next.ServeHTTP(w, r)
	})
}
