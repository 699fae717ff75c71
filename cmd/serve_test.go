package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestConfigureCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := configureCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), []string{"https://dashboard.test"})

	request := httptest.NewRequest(http.MethodGet, "/api/all", nil)
	request.Header.Set("Origin", "https://dashboard.test")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://dashboard.test", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "x-request-id", strings.ToLower(recorder.Header().Get("Access-Control-Expose-Headers")))
}

func TestConfigureCORS_RejectsOtherOrigins(t *testing.T) {
	handler := configureCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), []string{"https://dashboard.test"})

	request := httptest.NewRequest(http.MethodGet, "/api/all", nil)
	request.Header.Set("Origin", "https://elsewhere.test")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestContext_Logger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := (&Context{Debug: debug}).Logger()

		assert.NoError(t, err)
		assert.Equal(t, debug, logger.Core().Enabled(zapcore.DebugLevel))
	}
}
