package organization

import (
	"time"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
)

// CreateOrganizationRequest represents a request to found an organization
type CreateOrganizationRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=150"`
	Description string    `json:"description" binding:"max=500"`
	Scope       string    `json:"scope" binding:"max=100"`
	ManagerID   uuid.UUID `json:"manager_id" binding:"required"`
}

// UpdateOrganizationRequest represents a request to update an organization
type UpdateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"max=500"`
	Scope       string `json:"scope" binding:"max=100"`
}

// CreateTransferRequest proposes handing management to another user
type CreateTransferRequest struct {
	FromUserID uuid.UUID `json:"from_user_id" binding:"required"`
	ToUserID   uuid.UUID `json:"to_user_id" binding:"required"`
	Message    string    `json:"message" binding:"max=500"`
}

// RespondTransferRequest carries the recipient's response message
type RespondTransferRequest struct {
	ResponseMessage string `json:"response_message" binding:"max=500"`
}

// CreateJoinRequest asks to become a participant
type CreateJoinRequest struct {
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	Message string    `json:"message" binding:"max=500"`
}

// RespondJoinRequest carries the organization's response message
type RespondJoinRequest struct {
	ResponseMessage string `json:"response_message" binding:"max=500"`
}

// CreatePublicationRequest posts an announcement
type CreatePublicationRequest struct {
	Title string `json:"title" binding:"required,max=150"`
	Body  string `json:"body"`
}

// UpdatePublicationRequest edits an announcement
type UpdatePublicationRequest struct {
	Title string `json:"title" binding:"required,max=150"`
	Body  string `json:"body"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Scope       string    `json:"scope,omitempty"`
	ManagerID   uuid.UUID `json:"manager_id"`
	ImagePath   string    `json:"image_path,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ParticipantResponse represents a membership in API responses
type ParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	UserID    uuid.UUID `json:"user_id"`
	Managed   bool      `json:"managed"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferRequestResponse represents a transfer request in API responses
type TransferRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	OrgID           uuid.UUID `json:"org_id"`
	FromUserID      uuid.UUID `json:"from_user_id"`
	ToUserID        uuid.UUID `json:"to_user_id"`
	Message         string    `json:"message,omitempty"`
	Status          string    `json:"status"`
	ResponseMessage string    `json:"response_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JoinRequestResponse represents a join request in API responses
type JoinRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	OrgID           uuid.UUID `json:"org_id"`
	UserID          uuid.UUID `json:"user_id"`
	Message         string    `json:"message,omitempty"`
	Status          string    `json:"status"`
	ResponseMessage string    `json:"response_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicationResponse represents an announcement in API responses
type PublicationResponse struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToOrganizationResponse converts a domain organization
func ToOrganizationResponse(o *organization.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Scope:       o.Scope,
		ManagerID:   o.ManagerID,
		ImagePath:   o.ImagePath,
		Approved:    o.Approved,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrganizationResponses converts a slice of domain organizations
func ToOrganizationResponses(orgs []organization.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		out = append(out, *ToOrganizationResponse(&orgs[i]))
	}
	return out
}

// ToParticipantResponse converts a domain participant
func ToParticipantResponse(p *organization.Participant) *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID,
		OrgID:     p.OrgID,
		UserID:    p.UserID,
		Managed:   p.Managed,
		CreatedAt: p.CreatedAt,
	}
}

// ToParticipantResponses converts a slice of domain participants
func ToParticipantResponses(participants []organization.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(participants))
	for i := range participants {
		out = append(out, *ToParticipantResponse(&participants[i]))
	}
	return out
}

// ToTransferRequestResponse converts a domain transfer request
func ToTransferRequestResponse(r *organization.TransferRequest) *TransferRequestResponse {
	return &TransferRequestResponse{
		ID:              r.ID,
		OrgID:           r.OrgID,
		FromUserID:      r.FromUserID,
		ToUserID:        r.ToUserID,
		Message:         r.Message,
		Status:          string(r.Status),
		ResponseMessage: r.ResponseMessage,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToTransferRequestResponses converts a slice of domain transfer requests
func ToTransferRequestResponses(requests []organization.TransferRequest) []TransferRequestResponse {
	out := make([]TransferRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *ToTransferRequestResponse(&requests[i]))
	}
	return out
}

// ToJoinRequestResponse converts a domain join request
func ToJoinRequestResponse(r *organization.JoinRequest) *JoinRequestResponse {
	return &JoinRequestResponse{
		ID:              r.ID,
		OrgID:           r.OrgID,
		UserID:          r.UserID,
		Message:         r.Message,
		Status:          string(r.Status),
		ResponseMessage: r.ResponseMessage,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToJoinRequestResponses converts a slice of domain join requests
func ToJoinRequestResponses(requests []organization.JoinRequest) []JoinRequestResponse {
	out := make([]JoinRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *ToJoinRequestResponse(&requests[i]))
	}
	return out
}

// ToPublicationResponse converts a domain publication
func ToPublicationResponse(p *organization.Publication) *PublicationResponse {
	return &PublicationResponse{
		ID:        p.ID,
		OrgID:     p.OrgID,
		Title:     p.Title,
		Body:      p.Body,
		ImagePath: p.ImagePath,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPublicationResponses converts a slice of domain publications
func ToPublicationResponses(publications []organization.Publication) []PublicationResponse {
	out := make([]PublicationResponse, 0, len(publications))
	for i := range publications {
		out = append(out, *ToPublicationResponse(&publications[i]))
	}
	return out
}
