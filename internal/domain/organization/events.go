package organization

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Event types for the organization domain
const (
	EventTypeOrganizationCreated   = "organization.created"
	EventTypeTransferRequested     = "organization.transfer.requested"
	EventTypeManagementTransferred = "organization.management.transferred"
)

// OrganizationCreatedEvent is raised when an organization is created
type OrganizationCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string    `json:"name"`
	ManagerID uuid.UUID `json:"manager_id"`
}

// NewOrganizationCreatedEvent creates a new OrganizationCreatedEvent
func NewOrganizationCreatedEvent(orgID uuid.UUID, name string, managerID uuid.UUID) *OrganizationCreatedEvent {
	return &OrganizationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrganizationCreated, "Organization", orgID),
		Name:            name,
		ManagerID:       managerID,
	}
}

// TransferRequestedEvent is raised when a management transfer is proposed
type TransferRequestedEvent struct {
	shared.BaseDomainEvent
	OrgID      uuid.UUID `json:"org_id"`
	FromUserID uuid.UUID `json:"from_user_id"`
	ToUserID   uuid.UUID `json:"to_user_id"`
}

// NewTransferRequestedEvent creates a new TransferRequestedEvent
func NewTransferRequestedEvent(requestID, orgID, fromUserID, toUserID uuid.UUID) *TransferRequestedEvent {
	return &TransferRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferRequested, "TransferRequest", requestID),
		OrgID:           orgID,
		FromUserID:      fromUserID,
		ToUserID:        toUserID,
	}
}

// ManagementTransferredEvent is raised when a transfer request is accepted
type ManagementTransferredEvent struct {
	shared.BaseDomainEvent
	OrgID      uuid.UUID `json:"org_id"`
	FromUserID uuid.UUID `json:"from_user_id"`
	ToUserID   uuid.UUID `json:"to_user_id"`
}

// NewManagementTransferredEvent creates a new ManagementTransferredEvent
func NewManagementTransferredEvent(requestID, orgID, fromUserID, toUserID uuid.UUID) *ManagementTransferredEvent {
	return &ManagementTransferredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeManagementTransferred, "TransferRequest", requestID),
		OrgID:           orgID,
		FromUserID:      fromUserID,
		ToUserID:        toUserID,
	}
}
