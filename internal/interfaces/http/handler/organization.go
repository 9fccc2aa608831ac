package handler

import (
	"github.com/gin-gonic/gin"

	orgapp "github.com/localmarket/backend/internal/application/organization"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// OrganizationHandler handles organization endpoints
type OrganizationHandler struct {
	BaseHandler
	service *orgapp.Service
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(service *orgapp.Service) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Create founds an organization with its manager as first participant
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req orgapp.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, org)
}

// List returns a paginated list of organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := listReq.ToFilter()
	orgs, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orgs, total, filter.Page, filter.PageSize)
}

// ListByParticipant returns the organizations a user participates in
func (h *OrganizationHandler) ListByParticipant(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	orgs, err := h.service.ListByParticipant(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orgs)
}

// GetByID returns an organization by ID
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, org)
}

// Update updates an organization's profile
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	var req orgapp.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, org)
}

// Approve marks an organization as approved
func (h *OrganizationHandler) Approve(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	if err := h.service.Approve(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes an organization together with its participants,
// requests, and publications, syncing the manager flag of the former
// manager
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
