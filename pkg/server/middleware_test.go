package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BreweryStats/pkg/server"
)

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)

	var seen string

	handler := server.RequestLogger(zap.New(observedZapCore))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = server.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/all", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, recorder.Header().Get(server.RequestIDHeader))

	require.Equal(t, 1, observedLogs.Len())
	entry := observedLogs.All()[0]
	assert.Equal(t, "request completed", entry.Message)
	assert.Equal(t, seen, entry.ContextMap()["request_id"])
	assert.Equal(t, "/api/all", entry.ContextMap()["path"])
	assert.EqualValues(t, http.StatusTeapot, entry.ContextMap()["status"])
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	handler := server.RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", server.RequestID(r.Context()))
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(server.RequestIDHeader, "abc-123")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", recorder.Header().Get(server.RequestIDHeader))
}
