package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	taxonomyapp "github.com/localmarket/backend/internal/application/taxonomy"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// TaxonomyHandler handles shop type and subtype endpoints
type TaxonomyHandler struct {
	BaseHandler
	service *taxonomyapp.Service
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(service *taxonomyapp.Service) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

// CreateType registers a new shop type
func (h *TaxonomyHandler) CreateType(c *gin.Context) {
	var req taxonomyapp.CreateShopTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopType, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shopType)
}

// ListTypes returns a paginated list of shop types
func (h *TaxonomyHandler) ListTypes(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := listReq.ToFilter()
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if verified := c.Query("verified"); verified != "" {
		v, err := strconv.ParseBool(verified)
		if err != nil {
			h.BadRequest(c, "Invalid verified filter")
			return
		}
		filter.Filters["verified"] = v
	}

	types, total, err := h.service.ListTypes(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, types, total, filter.Page, filter.PageSize)
}

// ListActiveTypes returns active shop types ordered for display
func (h *TaxonomyHandler) ListActiveTypes(c *gin.Context) {
	types, err := h.service.ListActiveTypes(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, types)
}

// GetType returns a shop type by ID
func (h *TaxonomyHandler) GetType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	shopType, err := h.service.GetType(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shopType)
}

// UpdateType updates a shop type
func (h *TaxonomyHandler) UpdateType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	var req taxonomyapp.UpdateShopTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopType, err := h.service.UpdateType(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shopType)
}

// DeactivateType soft-deletes a shop type. Types referenced by shops
// or carrying active subtypes are blocked with dependent counts.
func (h *TaxonomyHandler) DeactivateType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	if err := h.service.DeactivateType(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ActivateType restores a deactivated shop type
func (h *TaxonomyHandler) ActivateType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	if err := h.service.ActivateType(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// VerifyType marks a shop type as verified
func (h *TaxonomyHandler) VerifyType(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	if err := h.service.VerifyType(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateSubtype registers a new shop subtype under a type
func (h *TaxonomyHandler) CreateSubtype(c *gin.Context) {
	var req taxonomyapp.CreateShopSubtypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	subtype, err := h.service.CreateSubtype(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, subtype)
}

// ListSubtypesByType returns subtypes of a shop type. Pass active=true
// to restrict to active subtypes.
func (h *TaxonomyHandler) ListSubtypesByType(c *gin.Context) {
	typeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	onlyActive := false
	if active := c.Query("active"); active != "" {
		onlyActive, err = strconv.ParseBool(active)
		if err != nil {
			h.BadRequest(c, "Invalid active filter")
			return
		}
	}

	subtypes, err := h.service.ListSubtypesByType(c.Request.Context(), typeID, onlyActive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subtypes)
}

// GetSubtype returns a shop subtype by ID
func (h *TaxonomyHandler) GetSubtype(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop subtype ID format")
		return
	}

	subtype, err := h.service.GetSubtype(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subtype)
}

// UpdateSubtype updates a shop subtype
func (h *TaxonomyHandler) UpdateSubtype(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop subtype ID format")
		return
	}

	var req taxonomyapp.UpdateShopSubtypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	subtype, err := h.service.UpdateSubtype(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subtype)
}

// DeactivateSubtype soft-deletes a shop subtype. Subtypes referenced
// by shops are blocked with the dependent count.
func (h *TaxonomyHandler) DeactivateSubtype(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop subtype ID format")
		return
	}

	if err := h.service.DeactivateSubtype(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ActivateSubtype restores a deactivated shop subtype
func (h *TaxonomyHandler) ActivateSubtype(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop subtype ID format")
		return
	}

	if err := h.service.ActivateSubtype(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
