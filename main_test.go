package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/CorrelAid/form_intake/handlers"
	"github.com/CorrelAid/form_intake/inits"
	"github.com/CorrelAid/form_intake/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, cfg *inits.Config) http.Handler {
	t.Helper()
	leads, feedback, ping, closeStore, err := buildServices(cfg)
	require.NoError(t, err)
	t.Cleanup(closeStore)

	router, err := newRouter(cfg, leads, feedback, ping)
	require.NoError(t, err)
	return router
}

func memoryConfig() *inits.Config {
	return &inits.Config{
		Environment:        "test",
		Port:               "0",
		StoreDriver:        inits.DriverMemory,
		RateLimitPerMinute: 600,
		MaxFormBytes:       64 << 10,
		SummaryInterval:    time.Hour,
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	srv := newTestServer(t, memoryConfig())

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/form?type=feedback", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="rating"`)

	form := url.Values{
		"type": {"feedback"}, "name": {"Ada"}, "email": {"ada@example.com"}, "rating": {"3"}, "comments": {"Fine"},
	}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), handlers.FeedbackSuccessMessage)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `form_intake_submissions_total{form="feedback",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `form_intake_form_renders_total{form="feedback"} 1`)
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, memoryConfig())

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_HostWhitelist(t *testing.T) {
	cfg := memoryConfig()
	cfg.AllowedHosts = []string{"forms.example.org"}
	srv := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	req.Host = "other.example"
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code, "health checks bypass the host whitelist")
}
