package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/mock"
	"github.com/MKhiriev/api-gateway/internal/service"
	"github.com/MKhiriev/api-gateway/internal/validators"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.March, 4, 5, 6, 7, 891_000_000, time.UTC)

const fixedTimestamp = "2026-03-04T05:06:07.891Z"

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{
		validator:      validators.NewStructValidator(),
		recorder:       metrics.Nop(),
		allowedOrigins: config.DefaultAllowedOrigins,
		maxBodyBytes:   config.MaxBodyBytes,
		now:            func() time.Time { return fixedNow },
		logger:         logger.Nop(),
	}
}

type testEnv struct {
	handler  *Handler
	appInfo  *mock.MockAppInfoService
	health   *mock.MockHealthService
	recorder *fakeRecorder
	logs     *bytes.Buffer
}

// newTestEnv wires a Handler to gomock services. production selects the
// deployment configuration reported by the app info service.
func newTestEnv(t *testing.T, production bool) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().IsProduction(gomock.Any()).Return(production).AnyTimes()
	health := mock.NewMockHealthService(ctrl)

	env := &testEnv{
		appInfo:  appInfo,
		health:   health,
		recorder: &fakeRecorder{},
		logs:     &bytes.Buffer{},
	}

	h := newTestHandler()
	h.services = &service.Services{AppInfoService: appInfo, HealthService: health}
	h.recorder = env.recorder
	h.logger = logger.New(env.logs, "test")
	env.handler = h

	return env
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.handler.Init().ServeHTTP(rr, req)
	return rr
}

type recordedError struct {
	statusCode int
	kind       string
}

type fakeRecorder struct {
	mu     sync.Mutex
	errors []recordedError
}

func (f *fakeRecorder) RecordError(_ context.Context, statusCode int, kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, recordedError{statusCode: statusCode, kind: kind})
}

func (f *fakeRecorder) RecordProbe(context.Context, bool, time.Duration) {}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// logEntries splits the JSON lines written by the test logger.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}

// entryWithField returns the first log entry carrying field.
func entryWithField(t *testing.T, buf *bytes.Buffer, field string) map[string]any {
	t.Helper()

	for _, entry := range logEntries(t, buf) {
		if _, ok := entry[field]; ok {
			return entry
		}
	}
	t.Fatalf("no log entry with field %q in %s", field, buf.String())
	return nil
}
