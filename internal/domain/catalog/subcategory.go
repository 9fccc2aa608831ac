package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Subcategory refines a Category. Products reference subcategories
// directly, so deleting one either blocks on dependents or cascades.
type Subcategory struct {
	shared.AuditedAggregateRoot
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_subcategories_category_name,unique"`
	Description string    `gorm:"type:varchar(255)"`
	Verified    bool      `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (Subcategory) TableName() string {
	return "subcategories"
}

// NewSubcategory creates a new unverified subcategory under the given category
func NewSubcategory(categoryID uuid.UUID, name, description string, createdBy uuid.UUID) (*Subcategory, *shared.DomainError) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category ID is required")
	}
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	s := &Subcategory{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		CategoryID:           categoryID,
		Name:                 name,
		Description:          strings.TrimSpace(description),
	}

	s.AddDomainEvent(NewSubcategoryCreatedEvent(s.ID, s.CategoryID, s.Name))
	return s, nil
}

// Update changes the mutable attributes of the subcategory
func (s *Subcategory) Update(name, description string) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return err
	}

	s.Name = name
	s.Description = strings.TrimSpace(description)
	s.IncrementVersion()
	return nil
}

// Verify marks the subcategory as approved for product use
func (s *Subcategory) Verify() *shared.DomainError {
	if s.Verified {
		return shared.NewDomainError("INVALID_STATE", "Subcategory is already verified")
	}
	s.Verified = true
	s.IncrementVersion()
	return nil
}

// Unverify revokes the approval
func (s *Subcategory) Unverify() *shared.DomainError {
	if !s.Verified {
		return shared.NewDomainError("INVALID_STATE", "Subcategory is not verified")
	}
	s.Verified = false
	s.IncrementVersion()
	return nil
}
