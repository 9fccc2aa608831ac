package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	shopapp "github.com/localmarket/backend/internal/application/shop"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// ShopHandler handles shop endpoints
type ShopHandler struct {
	BaseHandler
	service *shopapp.Service
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(service *shopapp.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// Create opens a new shop under a type/subtype classification
func (h *ShopHandler) Create(c *gin.Context) {
	var req shopapp.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shop)
}

// List returns a paginated list of shops
func (h *ShopHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := listReq.ToFilter()
	if verified := c.Query("verified"); verified != "" {
		v, err := strconv.ParseBool(verified)
		if err != nil {
			h.BadRequest(c, "Invalid verified filter")
			return
		}
		filter.Filters["verified"] = v
	}

	shops, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, shops, total, filter.Page, filter.PageSize)
}

// ListByType returns the shops classified under a shop type
func (h *ShopHandler) ListByType(c *gin.Context) {
	typeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shops, err := h.service.ListByType(c.Request.Context(), typeID, listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shops)
}

// ListBySubtype returns the shops classified under a shop subtype
func (h *ShopHandler) ListBySubtype(c *gin.Context) {
	subtypeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop subtype ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shops, err := h.service.ListBySubtype(c.Request.Context(), subtypeID, listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shops)
}

// ListByOwner returns the shops owned by a user
func (h *ShopHandler) ListByOwner(c *gin.Context) {
	ownerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid owner ID format")
		return
	}

	shops, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shops)
}

// GetByID returns a shop by ID
func (h *ShopHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	shop, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shop)
}

// Update updates a shop's profile
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	var req shopapp.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shop)
}

// Reclassify moves a shop to another type/subtype pair
func (h *ShopHandler) Reclassify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	var req shopapp.ReclassifyShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shop, err := h.service.Reclassify(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shop)
}

// Verify marks a shop as verified
func (h *ShopHandler) Verify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	if err := h.service.Verify(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a shop without products. Shops with products or
// packages are rejected with dependent counts.
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteWithProducts removes a shop together with its products,
// packages, and ratings
func (h *ShopHandler) DeleteWithProducts(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	result, err := h.service.DeleteWithProducts(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
