package handlers_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/generator"
	"palette-backend/internal/history"
	"palette-backend/internal/middleware"
	"palette-backend/internal/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, store history.Store) *services.GenerationService {
	t.Helper()
	gen, err := generator.NewMockGenerator(0)
	require.NoError(t, err)
	return services.NewGenerationService(gen, store, nil, discardLogger())
}

// asUser stands in for the JWT middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}
