package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		writes      []string
		wantStatus  int
		wantSize    int
	}{
		{
			name:        "explicit status",
			statusCodes: []int{http.StatusCreated},
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "first status wins",
			statusCodes: []int{http.StatusNotFound, http.StatusInternalServerError},
			wantStatus:  http.StatusNotFound,
		},
		{
			name:       "write implies 200",
			writes:     []string{"hello"},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name:        "writes accumulate after explicit status",
			statusCodes: []int{http.StatusServiceUnavailable},
			writes:      []string{"foo", "bar", ""},
			wantStatus:  http.StatusServiceUnavailable,
			wantSize:    6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
}
