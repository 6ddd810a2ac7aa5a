package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"palette-backend/internal/middleware"
	"palette-backend/internal/models"
)

const (
	MaxUploadSize = 10 << 20

	KindSpace       = "space"
	KindInspiration = "inspiration"
)

// ImageStore persists an uploaded photo and returns its public URL.
type ImageStore interface {
	UploadImage(storagePath string, data []byte, contentType string) (string, error)
	DeleteFile(storagePath string) error
}

type UploadHandler struct {
	store  ImageStore
	logger *slog.Logger
}

// NewUploadHandler accepts a nil store; uploads then answer 503.
func NewUploadHandler(store ImageStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

// Upload godoc
// @Summary     Upload a room photo
// @Description Stores one photo of the current space or of an inspiration room.
// @Description Only images up to 10 MB are accepted.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       kind formData string true "Photo kind" Enums(space, inspiration)
// @Param       image formData file true "Photo"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Storage is not configured"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "user id not found"})
		return
	}

	// Leave room for the multipart envelope around the file.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+(1<<20))

	kind := c.PostForm("kind")
	switch kind {
	case KindSpace, KindInspiration:
	case "":
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Required", Field: "kind"})
		return
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: fmt.Sprintf("Invalid enum value. Expected '%s' | '%s', received '%s'", KindSpace, KindInspiration, kind),
			Field:   "kind",
		})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Message: "Image must be 10 MB or smaller", Field: "image"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Required", Field: "image"})
		return
	}
	if fh.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Message: "Image must be 10 MB or smaller", Field: "image"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Failed to read image", Field: "image"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Failed to read image", Field: "image"})
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Only image files are accepted", Field: "image"})
		return
	}

	storagePath := fmt.Sprintf("uploads/%s/%s/%s%s", userID, kind, uuid.New(), extension(fh.Filename, contentType))
	url, err := h.store.UploadImage(storagePath, data, contentType)
	if err != nil {
		h.logger.Error("image upload failed", "path", storagePath, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Kind: kind,
		Path: storagePath,
		URL:  url,
		Size: int64(len(data)),
	})
}

// Delete godoc
// @Summary     Delete a room photo
// @Description Removes a photo previously stored by the caller.
// @Tags        upload
// @Produce     json
// @Security    Bearer
// @Param       path path string true "Storage path returned by the upload"
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/uploads/{path} [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Storage is not configured"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "user id not found"})
		return
	}

	// Callers may only remove files under their own prefix.
	storagePath := strings.TrimPrefix(c.Param("path"), "/")
	owned := "uploads/" + userID + "/"
	if !strings.HasPrefix(storagePath, owned) || len(storagePath) == len(owned) || strings.Contains(storagePath, "..") {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Upload not found"})
		return
	}

	if err := h.store.DeleteFile(storagePath); err != nil {
		h.logger.Error("image delete failed", "path", storagePath, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to delete image"})
		return
	}
	c.Status(http.StatusNoContent)
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	return imageExtensions[contentType]
}
