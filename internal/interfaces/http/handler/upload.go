package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	mediaapp "github.com/localmarket/backend/internal/application/media"
)

// UploadHandler handles image uploads for every image-bearing entity
type UploadHandler struct {
	BaseHandler
	service *mediaapp.ImageService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service *mediaapp.ImageService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload accepts a multipart image for an entity, converts it to WebP,
// and binds the stored path. The entity kind comes from the route.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")

	entityID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid entity ID format")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Image file is required")
		return
	}
	if fileHeader.Size > mediaapp.MaxUploadBytes {
		h.BadRequest(c, "Image exceeds the 10MB upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, mediaapp.MaxUploadBytes+1))
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	if len(data) > mediaapp.MaxUploadBytes {
		h.BadRequest(c, "Image exceeds the 10MB upload limit")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), kind, entityID, data)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}
