package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"palette-backend/internal/history"
	"palette-backend/internal/middleware"
	"palette-backend/internal/models"
	"palette-backend/internal/services"
)

type HistoryHandler struct {
	service *services.GenerationService
	logger  *slog.Logger
}

func NewHistoryHandler(service *services.GenerationService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, logger: logger}
}

type listQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// List godoc
// @Summary     List past generations
// @Description Returns the caller's generated plans, newest first.
// @Tags        generations
// @Produce     json
// @Security    Bearer
// @Param       limit query int false "Page size (1-100, default 20)"
// @Success     200 {object} models.GenerationListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/generations [get]
func (h *HistoryHandler) List(c *gin.Context) {
	userIDStr, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "user id not found"})
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid user id"})
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "limit must be an integer between 1 and 100", Field: "limit"})
		return
	}

	limit := history.DefaultLimit
	if q.Limit != nil {
		limit = *q.Limit
	}

	records, err := h.service.History(c.Request.Context(), userID, limit)
	if errors.Is(err, history.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Generation history is not configured"})
		return
	}
	if err != nil {
		h.logger.Error("failed to list generations", "user_id", userIDStr, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgInternalError})
		return
	}

	out := make([]models.GenerationSummary, 0, len(records))
	for _, r := range records {
		out = append(out, r.Summary())
	}
	c.JSON(http.StatusOK, models.GenerationListResponse{Generations: out})
}
