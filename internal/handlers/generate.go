package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"palette-backend/internal/middleware"
	"palette-backend/internal/models"
	"palette-backend/internal/services"
	"palette-backend/internal/validation"
)

const (
	maxJSONBody      = 1 << 20
	msgInternalError = "Internal server error"
)

type GenerateHandler struct {
	service *services.GenerationService
	logger  *slog.Logger
}

func NewGenerateHandler(service *services.GenerationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{service: service, logger: logger}
}

// Generate godoc
// @Summary     Generate a design plan
// @Description Validates the budget tier and returns a design plan with a renovation cost estimate.
// @Description The response is currently the same for every tier.
// @Tags        generate
// @Accept      json
// @Produce     json
// @Param       request body models.GenerateRequest true "Budget preference"
// @Success     200 {object} models.GenerationResult
// @Failure     400 {object} models.ValidationErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Message: "Invalid JSON body"})
		return
	}

	var req models.GenerateRequest
	if verr := validation.Decode(body, &req); verr != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Message: verr.Message, Field: verr.Field})
		return
	}

	userID, _ := middleware.UserID(c)
	result, err := h.service.Generate(c.Request.Context(), req, userID)
	if err != nil {
		h.logger.Error("generation failed", "budget_tier", req.BudgetTier, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, result)
}
