package handler

import (
	"github.com/gin-gonic/gin"

	orgapp "github.com/localmarket/backend/internal/application/organization"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// PublicationHandler handles organization announcement endpoints
type PublicationHandler struct {
	BaseHandler
	service *orgapp.PublicationService
}

// NewPublicationHandler creates a new PublicationHandler
func NewPublicationHandler(service *orgapp.PublicationService) *PublicationHandler {
	return &PublicationHandler{service: service}
}

// Create posts an announcement for an organization
func (h *PublicationHandler) Create(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	var req orgapp.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	publication, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, publication)
}

// List returns announcements matching the filter
func (h *PublicationHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	publications, err := h.service.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, publications)
}

// ListByOrg returns the announcements of an organization
func (h *PublicationHandler) ListByOrg(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	publications, err := h.service.ListByOrg(c.Request.Context(), orgID, listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, publications)
}

// GetByID returns an announcement by ID
func (h *PublicationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid publication ID format")
		return
	}

	publication, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, publication)
}

// Update edits an announcement
func (h *PublicationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid publication ID format")
		return
	}

	var req orgapp.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	publication, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, publication)
}

// Delete removes an announcement
func (h *PublicationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid publication ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
