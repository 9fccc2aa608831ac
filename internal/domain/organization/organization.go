// Package organization contains community organizations, their
// participants, and the request workflows around membership and
// management transfer.
package organization

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Organization is a community group with exactly one managing user.
// The manager is mirrored both here (ManagerID) and on the manager's
// participant row (Managed flag).
type Organization struct {
	shared.BaseAggregateRoot
	Name        string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(500)"`
	Scope       string    `gorm:"type:varchar(100)"`
	ManagerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ImagePath   string    `gorm:"type:varchar(255)"`
	Approved    bool      `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

// NewOrganization creates a new organization managed by the given user
func NewOrganization(name, description, scope string, managerID uuid.UUID) (*Organization, *shared.DomainError) {
	name = strings.TrimSpace(name)
	if err := validateOrganizationName(name); err != nil {
		return nil, err
	}
	if managerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Manager ID is required")
	}

	o := &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		Scope:             strings.TrimSpace(scope),
		ManagerID:         managerID,
	}

	o.AddDomainEvent(NewOrganizationCreatedEvent(o.ID, o.Name, o.ManagerID))
	return o, nil
}

// Update changes the mutable attributes of the organization
func (o *Organization) Update(name, description, scope string) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateOrganizationName(name); err != nil {
		return err
	}

	o.Name = name
	o.Description = strings.TrimSpace(description)
	o.Scope = strings.TrimSpace(scope)
	o.IncrementVersion()
	return nil
}

// Approve marks the organization as reviewed by an administrator
func (o *Organization) Approve() *shared.DomainError {
	if o.Approved {
		return shared.NewDomainError("INVALID_STATE", "Organization is already approved")
	}
	o.Approved = true
	o.IncrementVersion()
	return nil
}

// AssignManager points the organization at a new managing user
func (o *Organization) AssignManager(userID uuid.UUID) *shared.DomainError {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Manager ID is required")
	}
	o.ManagerID = userID
	o.IncrementVersion()
	return nil
}

// SetImagePath records the stored image location
func (o *Organization) SetImagePath(path string) {
	o.ImagePath = path
	o.IncrementVersion()
}

func validateOrganizationName(name string) *shared.DomainError {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_INPUT", "Name must be at least 2 characters")
	}
	if len(name) > 150 {
		return shared.NewDomainError("INVALID_INPUT", "Name must not exceed 150 characters")
	}
	return nil
}
