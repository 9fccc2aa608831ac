package handler

import (
	"github.com/gin-gonic/gin"

	orgapp "github.com/localmarket/backend/internal/application/organization"
)

// TransferHandler handles management transfer request endpoints
type TransferHandler struct {
	BaseHandler
	service *orgapp.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(service *orgapp.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Create proposes handing organization management to another user.
// Only one pending transfer per organization is allowed.
func (h *TransferHandler) Create(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	var req orgapp.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transfer)
}

// ListByOrg returns the transfer requests of an organization
func (h *TransferHandler) ListByOrg(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	transfers, err := h.service.ListByOrg(c.Request.Context(), orgID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfers)
}

// ListByRecipient returns the transfer requests addressed to a user
func (h *TransferHandler) ListByRecipient(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	transfers, err := h.service.ListByRecipient(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfers)
}

// GetByID returns a transfer request by ID
func (h *TransferHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer request ID format")
		return
	}

	transfer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// Accept hands management to the recipient: the sender is demoted, the
// recipient promoted, and both users' manager flags synced
func (h *TransferHandler) Accept(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer request ID format")
		return
	}

	var req orgapp.RespondTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.service.Accept(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// Reject declines a pending transfer request
func (h *TransferHandler) Reject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer request ID format")
		return
	}

	var req orgapp.RespondTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.service.Reject(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// Cancel withdraws a pending transfer request
func (h *TransferHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer request ID format")
		return
	}

	transfer, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}
