package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/config"
	"palette-backend/internal/generator"
	"palette-backend/internal/history"
	"palette-backend/internal/metrics"
	"palette-backend/internal/services"
)

const testSecret = "test-secret"

func testServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen, err := generator.NewMockGenerator(0)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	router := newRouter(routerDeps{
		cfg:     &config.Config{SupabaseJWTSecret: testSecret},
		logger:  log,
		metrics: m,
		service: services.NewGenerationService(gen, history.NopStore{}, m, log),
	})
	return withCORS(router, []string{"https://palette.example.com"})
}

func token(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestRouter_GenerateAnonymous(t *testing.T) {
	req, _ := http.NewRequest("POST", "/api/generate", strings.NewReader(`{"budgetTier":"mid"}`))
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"afterImageUrl"`)
}

func TestRouter_GenerateRejectsBadToken(t *testing.T) {
	req, _ := http.NewRequest("POST", "/api/generate", strings.NewReader(`{"budgetTier":"mid"}`))
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_HistoryRequiresAuth(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/generations", nil)
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ = http.NewRequest("GET", "/api/generations", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "7b0c1a56-5f0b-4a8e-9d4d-2f1f5b0a1c11"))
	w = httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_UploadsWithoutStorage(t *testing.T) {
	req, _ := http.NewRequest("POST", "/api/uploads", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "7b0c1a56-5f0b-4a8e-9d4d-2f1f5b0a1c11"))
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	srv := testServer(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "palette_http_requests_total")
}

func TestRouter_CORSPreflight(t *testing.T) {
	req, _ := http.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "https://palette.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	// Browsers send the header list lowercased.
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://palette.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Headers"))
}

func TestRouter_CORSPreflightDelete(t *testing.T) {
	req, _ := http.NewRequest(http.MethodOptions, "/api/uploads/uploads/u/space/a.png", nil)
	req.Header.Set("Origin", "https://palette.example.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	req.Header.Set("Access-Control-Request-Headers", "authorization")
	w := httptest.NewRecorder()
	testServer(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://palette.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
