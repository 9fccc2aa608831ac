package organization

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// TransferStatus represents the lifecycle of a management transfer request
type TransferStatus string

const (
	// TransferStatusPending means the recipient has not responded yet
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusAccepted means management changed hands
	TransferStatusAccepted TransferStatus = "accepted"
	// TransferStatusRejected means the recipient declined
	TransferStatusRejected TransferStatus = "rejected"
	// TransferStatusCancelled means the sender withdrew the request
	TransferStatusCancelled TransferStatus = "cancelled"
)

// TransferRequest asks another user to take over management of an
// organization. pending is the only non-terminal status; accepted,
// rejected, and cancelled are final.
type TransferRequest struct {
	shared.BaseAggregateRoot
	OrgID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	FromUserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ToUserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Message         string         `gorm:"type:varchar(500)"`
	Status          TransferStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	ResponseMessage string         `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (TransferRequest) TableName() string {
	return "transfer_requests"
}

// NewTransferRequest creates a pending management transfer request
func NewTransferRequest(orgID, fromUserID, toUserID uuid.UUID, message string) (*TransferRequest, *shared.DomainError) {
	if orgID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Organization ID is required")
	}
	if fromUserID == uuid.Nil || toUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sender and recipient are required")
	}
	if fromUserID == toUserID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cannot transfer management to yourself")
	}

	r := &TransferRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrgID:             orgID,
		FromUserID:        fromUserID,
		ToUserID:          toUserID,
		Message:           strings.TrimSpace(message),
		Status:            TransferStatusPending,
	}

	r.AddDomainEvent(NewTransferRequestedEvent(r.ID, orgID, fromUserID, toUserID))
	return r, nil
}

// Accept marks the request accepted. Participant and user flag updates
// happen alongside in the same transaction.
func (r *TransferRequest) Accept(responseMessage string) *shared.DomainError {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = TransferStatusAccepted
	r.ResponseMessage = strings.TrimSpace(responseMessage)
	r.IncrementVersion()
	r.AddDomainEvent(NewManagementTransferredEvent(r.ID, r.OrgID, r.FromUserID, r.ToUserID))
	return nil
}

// Reject marks the request declined by the recipient
func (r *TransferRequest) Reject(responseMessage string) *shared.DomainError {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = TransferStatusRejected
	r.ResponseMessage = strings.TrimSpace(responseMessage)
	r.IncrementVersion()
	return nil
}

// Cancel marks the request withdrawn by the sender
func (r *TransferRequest) Cancel() *shared.DomainError {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = TransferStatusCancelled
	r.IncrementVersion()
	return nil
}

// IsPending reports whether the request still awaits a response
func (r *TransferRequest) IsPending() bool {
	return r.Status == TransferStatusPending
}

func (r *TransferRequest) ensurePending() *shared.DomainError {
	if r.Status != TransferStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Transfer request is already %s", r.Status))
	}
	return nil
}
