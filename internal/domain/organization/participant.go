package organization

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Participant is a user's membership in an organization. The Managed
// flag marks the organization's manager; a managed participant cannot
// be removed until the flag is cleared or management is transferred.
type Participant struct {
	shared.BaseEntity
	OrgID   uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_org_user,unique"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_participants_org_user,unique"`
	Managed bool      `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a new membership row
func NewParticipant(orgID, userID uuid.UUID, managed bool) (*Participant, *shared.DomainError) {
	if orgID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Organization ID is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}

	return &Participant{
		BaseEntity: shared.NewBaseEntity(),
		OrgID:      orgID,
		UserID:     userID,
		Managed:    managed,
	}, nil
}

// Promote marks the participant as the organization's manager
func (p *Participant) Promote() *shared.DomainError {
	if p.Managed {
		return shared.NewDomainError("INVALID_STATE", "Participant already manages this organization")
	}
	p.Managed = true
	return nil
}

// Demote clears the manager flag
func (p *Participant) Demote() *shared.DomainError {
	if !p.Managed {
		return shared.NewDomainError("INVALID_STATE", "Participant does not manage this organization")
	}
	p.Managed = false
	return nil
}

// CanBeRemoved reports whether the participant may leave or be removed
func (p *Participant) CanBeRemoved() bool {
	return !p.Managed
}
