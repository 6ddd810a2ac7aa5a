package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"palette-backend/internal/estimate"
	"palette-backend/internal/metrics"
	"palette-backend/internal/models"
	"palette-backend/internal/report"
	"palette-backend/internal/validation"
)

type ExportHandler struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewExportHandler(m *metrics.Metrics, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{metrics: m, logger: logger, now: time.Now}
}

// WithClock overrides the clock used to name exported files.
func (h *ExportHandler) WithClock(now func() time.Time) *ExportHandler {
	h.now = now
	return h
}

// Export godoc
// @Summary     Export a design plan as PDF
// @Description Renders the summary, cost breakdown and tips of a design plan onto A4 pages, one section per page.
// @Tags        export
// @Accept      json
// @Produce     application/pdf
// @Param       request body models.GenerationResult true "Design plan returned by /api/generate"
// @Success     200 {file} file
// @Failure     400 {object} models.ValidationErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Message: "Invalid JSON body"})
		return
	}

	var result models.GenerationResult
	if verr := validation.Decode(body, &result); verr != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Message: verr.Message, Field: verr.Field})
		return
	}

	if v := estimate.Check(&result); len(v) > 0 {
		h.logger.Warn("exporting inconsistent estimate", "violations", len(v), "first", v[0].String())
	}

	var buf bytes.Buffer
	pages, err := report.Export(c.Request.Context(), report.Sections(&result), &buf)
	if err != nil {
		h.observe("error")
		h.logger.Error("pdf export failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to export PDF"})
		return
	}
	h.observe("success")
	h.logger.Debug("pdf exported", "pages", pages, "bytes", buf.Len())

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(h.now())))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ExportHandler) observe(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveExport(outcome)
	}
}
