package taxonomy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// ShopSubtype refines a ShopType (e.g. "Gastronomy" -> "Bakery").
// Subtype names are unique within their parent type.
type ShopSubtype struct {
	shared.BaseAggregateRoot
	TypeID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(100);not null;index:idx_shop_subtypes_type_name,unique"`
	Description string         `gorm:"type:varchar(255)"`
	Status      ShopTypeStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Verified    bool           `gorm:"not null;default:false"`
	SortOrder   int            `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ShopSubtype) TableName() string {
	return "shop_subtypes"
}

// NewShopSubtype creates a new active subtype under the given type
func NewShopSubtype(typeID uuid.UUID, name, description string) (*ShopSubtype, *shared.DomainError) {
	if typeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shop type ID is required")
	}
	name = strings.TrimSpace(name)
	if err := validateTaxonomyName(name); err != nil {
		return nil, err
	}

	s := &ShopSubtype{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TypeID:            typeID,
		Name:              name,
		Description:       strings.TrimSpace(description),
		Status:            ShopTypeStatusActive,
	}

	s.AddDomainEvent(NewShopSubtypeCreatedEvent(s.ID, s.TypeID, s.Name))
	return s, nil
}

// Update changes the mutable attributes of the subtype
func (s *ShopSubtype) Update(name, description string, sortOrder int) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateTaxonomyName(name); err != nil {
		return err
	}

	s.Name = name
	s.Description = strings.TrimSpace(description)
	s.SortOrder = sortOrder
	s.IncrementVersion()
	return nil
}

// Deactivate soft-deletes the subtype
func (s *ShopSubtype) Deactivate() *shared.DomainError {
	if s.Status == ShopTypeStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Shop subtype is already inactive")
	}
	s.Status = ShopTypeStatusInactive
	s.IncrementVersion()
	return nil
}

// Activate restores a soft-deleted subtype
func (s *ShopSubtype) Activate() *shared.DomainError {
	if s.Status == ShopTypeStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Shop subtype is already active")
	}
	s.Status = ShopTypeStatusActive
	s.IncrementVersion()
	return nil
}

// IsActive returns true when the subtype is selectable
func (s *ShopSubtype) IsActive() bool {
	return s.Status == ShopTypeStatusActive
}
