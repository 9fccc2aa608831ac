package organization

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// JoinStatus represents the lifecycle of a membership request
type JoinStatus string

const (
	// JoinStatusPending means the organization has not responded yet
	JoinStatusPending JoinStatus = "pending"
	// JoinStatusApproved means the user became a participant
	JoinStatusApproved JoinStatus = "approved"
	// JoinStatusRejected means the organization declined
	JoinStatusRejected JoinStatus = "rejected"
)

// JoinRequest asks an organization to accept a user as participant.
type JoinRequest struct {
	shared.BaseAggregateRoot
	OrgID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Message         string     `gorm:"type:varchar(500)"`
	Status          JoinStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	ResponseMessage string     `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (JoinRequest) TableName() string {
	return "join_requests"
}

// NewJoinRequest creates a pending membership request
func NewJoinRequest(orgID, userID uuid.UUID, message string) (*JoinRequest, *shared.DomainError) {
	if orgID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Organization ID is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}

	return &JoinRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrgID:             orgID,
		UserID:            userID,
		Message:           strings.TrimSpace(message),
		Status:            JoinStatusPending,
	}, nil
}

// Approve marks the request approved. The participant row is created
// alongside in the same transaction.
func (r *JoinRequest) Approve(responseMessage string) *shared.DomainError {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = JoinStatusApproved
	r.ResponseMessage = strings.TrimSpace(responseMessage)
	r.IncrementVersion()
	return nil
}

// Reject marks the request declined
func (r *JoinRequest) Reject(responseMessage string) *shared.DomainError {
	if err := r.ensurePending(); err != nil {
		return err
	}
	r.Status = JoinStatusRejected
	r.ResponseMessage = strings.TrimSpace(responseMessage)
	r.IncrementVersion()
	return nil
}

// IsPending reports whether the request still awaits a response
func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinStatusPending
}

func (r *JoinRequest) ensurePending() *shared.DomainError {
	if r.Status != JoinStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Join request is already %s", r.Status))
	}
	return nil
}
