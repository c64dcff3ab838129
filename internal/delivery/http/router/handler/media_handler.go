package handler

import (
	"net/http"
	"strings"

	"eventify/internal/delivery/http/response"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler serves image uploads and stock-photo search.
type MediaHandler struct {
	images service.ImageService
	photos service.StockPhotoService
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(images service.ImageService, photos service.StockPhotoService) *MediaHandler {
	return &MediaHandler{
		images: images,
		photos: photos,
	}
}

// UploadImage accepts a multipart upload under the "image" field and
// returns the public URL of the stored copy.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'image' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrImageUploadFailed.WrapMessage(err.Error()))
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}

// SearchStockPhotos returns candidate stock images for the query text.
func (h *MediaHandler) SearchStockPhotos(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'query' is required")
	}

	photos, err := h.photos.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, photos, "Stock photos retrieved successfully")
}
