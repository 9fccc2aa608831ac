package handler

import (
	"github.com/gin-gonic/gin"

	orgapp "github.com/localmarket/backend/internal/application/organization"
)

// MembershipHandler handles participant and join request endpoints
type MembershipHandler struct {
	BaseHandler
	service *orgapp.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(service *orgapp.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// ListParticipants returns the participants of an organization
func (h *MembershipHandler) ListParticipants(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	participants, err := h.service.ListParticipants(c.Request.Context(), orgID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, participants)
}

// RemoveParticipant removes a participant from an organization. The
// acting manager cannot be removed while still managing.
func (h *MembershipHandler) RemoveParticipant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid participant ID format")
		return
	}

	if err := h.service.RemoveParticipant(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RemoveParticipantByUser removes a participant addressed by user and
// organization id. Same manager guard as RemoveParticipant.
func (h *MembershipHandler) RemoveParticipantByUser(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.service.RemoveParticipantByUserAndOrg(c.Request.Context(), userID, orgID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// StepDown demotes a managing participant to a regular one and syncs
// the user's manager flag
func (h *MembershipHandler) StepDown(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid participant ID format")
		return
	}

	if err := h.service.StepDown(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RequestJoin files a request to join an organization
func (h *MembershipHandler) RequestJoin(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	var req orgapp.CreateJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	joinReq, err := h.service.RequestJoin(c.Request.Context(), orgID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, joinReq)
}

// ListJoinRequestsByOrg returns the join requests of an organization
func (h *MembershipHandler) ListJoinRequestsByOrg(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid organization ID format")
		return
	}

	requests, err := h.service.ListJoinRequestsByOrg(c.Request.Context(), orgID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requests)
}

// ListJoinRequestsByUser returns a user's join requests
func (h *MembershipHandler) ListJoinRequestsByUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	requests, err := h.service.ListJoinRequestsByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requests)
}

// ApproveJoin accepts a join request and adds the user as participant
func (h *MembershipHandler) ApproveJoin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid join request ID format")
		return
	}

	var req orgapp.RespondJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	joinReq, err := h.service.ApproveJoin(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, joinReq)
}

// RejectJoin declines a join request
func (h *MembershipHandler) RejectJoin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid join request ID format")
		return
	}

	var req orgapp.RespondJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	joinReq, err := h.service.RejectJoin(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, joinReq)
}
