package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/localmarket/backend/internal/application/catalog"
)

// AssociationHandler handles the type-category and category-subcategory
// join table endpoints
type AssociationHandler struct {
	BaseHandler
	service *catalogapp.AssociationService
}

// NewAssociationHandler creates a new AssociationHandler
func NewAssociationHandler(service *catalogapp.AssociationService) *AssociationHandler {
	return &AssociationHandler{service: service}
}

// LinkTypeCategory associates a shop type with a category
func (h *AssociationHandler) LinkTypeCategory(c *gin.Context) {
	var req catalogapp.CreateTypeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	link, err := h.service.LinkTypeCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, link)
}

// ListTypeCategories returns the category links of a shop type
func (h *AssociationHandler) ListTypeCategories(c *gin.Context) {
	typeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	links, err := h.service.ListTypeCategories(c.Request.Context(), typeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, links)
}

// UnlinkTypeCategory removes a single type-category link
func (h *AssociationHandler) UnlinkTypeCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid link ID format")
		return
	}

	if err := h.service.UnlinkTypeCategory(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UnlinkTypeCategoriesByType removes every category link of a shop type
func (h *AssociationHandler) UnlinkTypeCategoriesByType(c *gin.Context) {
	typeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop type ID format")
		return
	}

	removed, err := h.service.UnlinkTypeCategoriesByType(c.Request.Context(), typeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"removed": removed})
}

// LinkCategorySubcategory associates a category with a subcategory
func (h *AssociationHandler) LinkCategorySubcategory(c *gin.Context) {
	var req catalogapp.CreateCategorySubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	link, err := h.service.LinkCategorySubcategory(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, link)
}

// LinkSubcategoriesBatch links several subcategories to a category in
// one transaction, skipping pairs that already exist
func (h *AssociationHandler) LinkSubcategoriesBatch(c *gin.Context) {
	var req catalogapp.BatchLinkSubcategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.LinkSubcategoriesBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListCategorySubcategories returns the subcategory links of a category
func (h *AssociationHandler) ListCategorySubcategories(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	links, err := h.service.ListCategorySubcategories(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, links)
}

// UnlinkCategorySubcategory removes a single category-subcategory link
func (h *AssociationHandler) UnlinkCategorySubcategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid link ID format")
		return
	}

	if err := h.service.UnlinkCategorySubcategory(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UnlinkCategorySubcategoriesByCategory removes every subcategory link
// of a category
func (h *AssociationHandler) UnlinkCategorySubcategoriesByCategory(c *gin.Context) {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	removed, err := h.service.UnlinkCategorySubcategoriesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"removed": removed})
}
