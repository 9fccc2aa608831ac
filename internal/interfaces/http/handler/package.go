package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/localmarket/backend/internal/application/catalog"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// PackageHandler handles product package endpoints
type PackageHandler struct {
	BaseHandler
	service *catalogapp.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(service *catalogapp.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// Create registers a new package for a product
func (h *PackageHandler) Create(c *gin.Context) {
	var req catalogapp.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, pkg)
}

// List returns packages matching the filter
func (h *PackageHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	packages, err := h.service.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, packages)
}

// ListByShop returns the packages offered by a shop
func (h *PackageHandler) ListByShop(c *gin.Context) {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	packages, err := h.service.ListByShop(c.Request.Context(), shopID, listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, packages)
}

// GetByID returns a package by ID
func (h *PackageHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	pkg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pkg)
}

// Update updates a package
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	var req catalogapp.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pkg)
}

// Delete removes a package
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid package ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
