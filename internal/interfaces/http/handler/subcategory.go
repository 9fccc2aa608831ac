package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/localmarket/backend/internal/application/catalog"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// SubcategoryHandler handles product subcategory endpoints
type SubcategoryHandler struct {
	BaseHandler
	service *catalogapp.SubcategoryService
}

// NewSubcategoryHandler creates a new SubcategoryHandler
func NewSubcategoryHandler(service *catalogapp.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{service: service}
}

// Create registers a new subcategory under a category
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	subcategory, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, subcategory)
}

// List returns subcategories matching the filter
func (h *SubcategoryHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	subcategories, err := h.service.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subcategories)
}

// ListByCategory returns the subcategories of a category
func (h *SubcategoryHandler) ListByCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	subcategories, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subcategories)
}

// GetByID returns a subcategory by ID
func (h *SubcategoryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	subcategory, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subcategory)
}

// Update updates a subcategory. With cascade=true the response reports
// how many products were touched by the change.
func (h *SubcategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	var req catalogapp.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if cascade, _ := strconv.ParseBool(c.Query("cascade")); cascade {
		subcategory, affected, err := h.service.UpdateCascade(c.Request.Context(), id, req)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, gin.H{"subcategory": subcategory, "affected_products": affected})
		return
	}

	subcategory, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, subcategory)
}

// Verify marks a subcategory as verified
func (h *SubcategoryHandler) Verify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	if err := h.service.Verify(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Unverify clears a subcategory's verified flag
func (h *SubcategoryHandler) Unverify(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	if err := h.service.Unverify(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckAffectedProducts reports the products a cascade delete of this
// subcategory would remove
func (h *SubcategoryHandler) CheckAffectedProducts(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	result, err := h.service.CheckAffectedProducts(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a subcategory without dependents. Subcategories still
// referenced by products are rejected with the product count.
func (h *SubcategoryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteCascade removes a subcategory together with its products and
// the join rows pointing at it
func (h *SubcategoryHandler) DeleteCascade(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid subcategory ID format")
		return
	}

	deleted, err := h.service.DeleteCascade(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"deleted_products": deleted})
}

// MigrateProducts moves every product of one subcategory to another
func (h *SubcategoryHandler) MigrateProducts(c *gin.Context) {
	var req catalogapp.MigrateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.MigrateProducts(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
