package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/handlers"
	"palette-backend/internal/history"
	"palette-backend/internal/models"
	"palette-backend/internal/services"
)

func historyRouter(svc *services.GenerationService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewHistoryHandler(svc, discardLogger())
	router.GET("/api/generations", asUser(userID), h.List)
	return router
}

func TestHistory_ListsCallerGenerations(t *testing.T) {
	store, err := history.NewSQLiteStore(filepath.Join(t.TempDir(), "palette.db"))
	require.NoError(t, err)
	defer store.Close()

	svc := newService(t, store)
	for _, tier := range []string{"budget", "luxury"} {
		_, err := svc.Generate(context.Background(), models.GenerateRequest{BudgetTier: tier}, testUserID)
		require.NoError(t, err)
	}
	_, err = svc.Generate(context.Background(), models.GenerateRequest{BudgetTier: "mid"}, "")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/generations?limit=10", nil)
	w := httptest.NewRecorder()
	historyRouter(svc, testUserID).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.GenerationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Generations, 2)
	assert.Equal(t, "luxury", resp.Generations[0].BudgetTier)
	assert.Equal(t, "budget", resp.Generations[1].BudgetTier)
}

func TestHistory_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"0", "-1", "101", "abc", ""} {
		req, _ := http.NewRequest("GET", "/api/generations?limit="+limit, nil)
		w := httptest.NewRecorder()
		historyRouter(newService(t, nil), testUserID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
	}
}

func TestHistory_LimitBounds(t *testing.T) {
	for _, limit := range []string{"1", "100"} {
		req, _ := http.NewRequest("GET", "/api/generations?limit="+limit, nil)
		w := httptest.NewRecorder()
		historyRouter(newService(t, nil), testUserID).ServeHTTP(w, req)

		// NopStore answers 503 once the query has passed validation.
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, limit)
	}
}

func TestHistory_NotConfigured(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/generations", nil)
	w := httptest.NewRecorder()
	historyRouter(newService(t, nil), testUserID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHistory_InvalidUserID(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/generations", nil)
	w := httptest.NewRecorder()
	historyRouter(newService(t, nil), "not-a-uuid").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
