package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/estimate"
	"palette-backend/internal/handlers"
	"palette-backend/internal/models"
	"palette-backend/internal/services"
)

func generateRouter(h *handlers.GenerateHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/generate", h.Generate)
	return router
}

func postGenerate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate_ValidTiers(t *testing.T) {
	router := generateRouter(handlers.NewGenerateHandler(newService(t, nil), discardLogger()))

	for _, tier := range models.BudgetTiers {
		t.Run(tier, func(t *testing.T) {
			w := postGenerate(router, `{"budgetTier":"`+tier+`"}`)
			require.Equal(t, http.StatusOK, w.Code)

			var result models.GenerationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.NotEmpty(t, result.AfterImageURL)
			assert.Equal(t, "USD", result.EstimateRange.Currency)
			assert.Empty(t, estimate.Check(&result))
		})
	}
}

func TestGenerate_RepeatedCallsAreIdentical(t *testing.T) {
	router := generateRouter(handlers.NewGenerateHandler(newService(t, nil), discardLogger()))

	first := postGenerate(router, `{"budgetTier":"budget"}`)
	second := postGenerate(router, `{"budgetTier":"budget"}`)
	third := postGenerate(router, `{"budgetTier":"luxury"}`)

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Body.String(), third.Body.String())
}

func TestGenerate_WireFieldOrder(t *testing.T) {
	router := generateRouter(handlers.NewGenerateHandler(newService(t, nil), discardLogger()))
	body := postGenerate(router, `{"budgetTier":"mid"}`).Body.String()

	keys := []string{`"afterImageUrl"`, `"whatApplied"`, `"estimateRange"`, `"breakdown"`,
		`"laborSubtotal"`, `"totalEstimate"`, `"upgradeTips"`, `"savingsTips"`}
	last := -1
	for _, k := range keys {
		idx := strings.Index(body, k)
		require.Greater(t, idx, last, k)
		last = idx
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	router := generateRouter(handlers.NewGenerateHandler(newService(t, nil), discardLogger()))

	tests := []struct {
		name    string
		body    string
		message string
		field   string
	}{
		{"missing tier", `{}`, "Required", "budgetTier"},
		{"tier key in other case", `{"BudgetTier":"mid"}`, "Required", "budgetTier"},
		{"tier key upper case", `{"BUDGETTIER":"mid"}`, "Required", "budgetTier"},
		{"null tier", `{"budgetTier":null}`, "Expected string, received null", "budgetTier"},
		{"array body", `[]`, "Expected object, received array", ""},
		{"empty body", ``, "Required", "budgetTier"},
		{"unknown tier", `{"budgetTier":"premium"}`, "Invalid enum value. Expected 'budget' | 'mid' | 'luxury', received 'premium'", "budgetTier"},
		{"wrong type", `{"budgetTier":5}`, "Expected string, received number", "budgetTier"},
		{"malformed", `{"budgetTier":`, "Invalid JSON body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postGenerate(router, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp["message"])
			field, ok := resp["field"]
			assert.True(t, ok, "field key is always present")
			assert.Equal(t, tt.field, field)
		})
	}
}

type brokenGenerator struct{}

func (brokenGenerator) Generate(context.Context, models.GenerateRequest) (*models.GenerationResult, error) {
	return nil, errors.New("fixture unavailable")
}

func TestGenerate_InternalError(t *testing.T) {
	svc := services.NewGenerationService(brokenGenerator{}, nil, nil, discardLogger())
	router := generateRouter(handlers.NewGenerateHandler(svc, discardLogger()))

	w := postGenerate(router, `{"budgetTier":"mid"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
