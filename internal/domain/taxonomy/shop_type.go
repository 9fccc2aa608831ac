// Package taxonomy contains the shop classification registry:
// shop types and their subtypes.
package taxonomy

import (
	"strings"

	"github.com/localmarket/backend/internal/domain/shared"
)

// ShopTypeStatus represents the lifecycle status of a shop type
type ShopTypeStatus string

const (
	// ShopTypeStatusActive means the type is selectable for shops
	ShopTypeStatusActive ShopTypeStatus = "active"
	// ShopTypeStatusInactive means the type is soft-deleted but still queryable
	ShopTypeStatusInactive ShopTypeStatus = "inactive"
)

// ShopType classifies shops at the top level (e.g. "Gastronomy", "Retail").
// Types are soft-deleted: deactivation keeps the row queryable by ID so
// existing shops keep a resolvable reference.
type ShopType struct {
	shared.BaseAggregateRoot
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string         `gorm:"type:varchar(255)"`
	Status      ShopTypeStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Verified    bool           `gorm:"not null;default:false"`
	SortOrder   int            `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ShopType) TableName() string {
	return "shop_types"
}

// NewShopType creates a new active shop type
func NewShopType(name, description string) (*ShopType, *shared.DomainError) {
	name = strings.TrimSpace(name)
	if err := validateTaxonomyName(name); err != nil {
		return nil, err
	}

	t := &ShopType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		Status:            ShopTypeStatusActive,
	}

	t.AddDomainEvent(NewShopTypeCreatedEvent(t.ID, t.Name))
	return t, nil
}

// Update changes the mutable attributes of the type
func (t *ShopType) Update(name, description string, sortOrder int) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateTaxonomyName(name); err != nil {
		return err
	}

	t.Name = name
	t.Description = strings.TrimSpace(description)
	t.SortOrder = sortOrder
	t.IncrementVersion()
	return nil
}

// Deactivate soft-deletes the type
func (t *ShopType) Deactivate() *shared.DomainError {
	if t.Status == ShopTypeStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Shop type is already inactive")
	}
	t.Status = ShopTypeStatusInactive
	t.IncrementVersion()
	t.AddDomainEvent(NewShopTypeDeactivatedEvent(t.ID, t.Name))
	return nil
}

// Activate restores a soft-deleted type
func (t *ShopType) Activate() *shared.DomainError {
	if t.Status == ShopTypeStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Shop type is already active")
	}
	t.Status = ShopTypeStatusActive
	t.IncrementVersion()
	return nil
}

// Verify marks the type as reviewed by an administrator
func (t *ShopType) Verify() {
	if !t.Verified {
		t.Verified = true
		t.IncrementVersion()
	}
}

// IsActive returns true when the type is selectable
func (t *ShopType) IsActive() bool {
	return t.Status == ShopTypeStatusActive
}

func validateTaxonomyName(name string) *shared.DomainError {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_INPUT", "Name must be at least 2 characters")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Name must not exceed 100 characters")
	}
	return nil
}
