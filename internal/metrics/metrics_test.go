package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"palette-backend/internal/metrics"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `palette_http_requests_total{method="GET",route="/ping",status="200"} 2`)
}

func TestObserveGeneration(t *testing.T) {
	m := metrics.New()
	m.ObserveGeneration("mid", "success", time.Second)
	m.ObserveExport("failure")

	count, err := testutil.GatherAndCount(m.Registry(), "palette_generations_total", "palette_pdf_exports_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
