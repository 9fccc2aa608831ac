package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/localmarket/backend/internal/application/catalog"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles product category endpoints
type CategoryHandler struct {
	BaseHandler
	service *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create registers a new category linked to a shop type
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}

// List returns a paginated list of categories
func (h *CategoryHandler) List(c *gin.Context) {
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

	categories, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, categories, total, filter.Page, filter.PageSize)
}

// GetByID returns a category by ID
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// Update updates a category. With cascade=true the rename also touches
// dependent products and the response reports how many were affected.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if cascade, _ := strconv.ParseBool(c.Query("cascade")); cascade {
		category, affected, err := h.service.UpdateCascade(c.Request.Context(), id, req)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"category": category, "affected_products": affected})
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// Verify marks a category as verified
func (h *CategoryHandler) Verify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.service.Verify(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Unverify clears a category's verified flag
func (h *CategoryHandler) Unverify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.service.Unverify(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckAffected reports the subcategories and products that a cascade
// delete of this category would remove
func (h *CategoryHandler) CheckAffected(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	result, err := h.service.CheckAffected(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a category without dependents. Categories still
// referenced by subcategories or products are rejected with counts.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteCascade removes a category together with its subcategories,
// their products, and the join rows pointing at it
func (h *CategoryHandler) DeleteCascade(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	result, err := h.service.DeleteCascade(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
