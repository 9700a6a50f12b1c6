package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/api/metrics"
	"github.com/poscentral/website-api/internal/core/ports"
)

var allowedImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {}, ".gif": {}, ".svg": {},
}

// UploadHandler stores admin image uploads through the image-store port.
type UploadHandler struct {
	store    ports.ImageStore
	maxBytes int64
}

func NewUploadHandler(store ports.ImageStore, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/admin/uploads. The multipart field is "file".
//
// @Summary      Upload an image
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  Envelope{data=uploadResponse}
// @Failure      400   {object}  Envelope
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > h.maxBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported image type")
	}

	src, err := fh.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return err
	}
	defer src.Close()

	url, err := h.store.Save(c.Request().Context(), fh.Filename, src)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, "image uploaded", uploadResponse{URL: url})
}
