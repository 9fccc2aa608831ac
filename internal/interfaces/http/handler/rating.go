package handler

import (
	"github.com/gin-gonic/gin"

	shopapp "github.com/localmarket/backend/internal/application/shop"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// RatingHandler handles shop rating endpoints
type RatingHandler struct {
	BaseHandler
	service *shopapp.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(service *shopapp.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Rate records or replaces a user's rating of a shop and recomputes
// the shop's calification
func (h *RatingHandler) Rate(c *gin.Context) {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	var req shopapp.RateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.Rate(c.Request.Context(), shopID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, rating)
}

// ListByShop returns the ratings of a shop
func (h *RatingHandler) ListByShop(c *gin.Context) {
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

	ratings, err := h.service.ListByShop(c.Request.Context(), shopID, listReq.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ratings)
}

// GetByShopAndUser returns a specific user's rating of a shop
func (h *RatingHandler) GetByShopAndUser(c *gin.Context) {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shop ID format")
		return
	}

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	rating, err := h.service.GetByShopAndUser(c.Request.Context(), shopID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rating)
}

// Delete removes a rating and recomputes the shop's calification
func (h *RatingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid rating ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
