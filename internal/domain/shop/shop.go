// Package shop contains the shop aggregate and its ratings.
package shop

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Shop is a storefront run by a seller, classified by a shop type and
// subtype from the taxonomy registry.
type Shop struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description  string          `gorm:"type:varchar(500)"`
	Location     string          `gorm:"type:varchar(255);not null"`
	Phone        string          `gorm:"type:varchar(30)"`
	OpeningHours string          `gorm:"type:varchar(100)"`
	TypeID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubtypeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Calification decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	RatingCount  int64           `gorm:"not null;default:0"`
	ImagePath    string          `gorm:"type:varchar(255)"`
	Verified     bool            `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new unverified shop
func NewShop(name, description, location string, typeID, subtypeID, ownerID uuid.UUID) (*Shop, *shared.DomainError) {
	name = strings.TrimSpace(name)
	if err := validateShopName(name); err != nil {
		return nil, err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Location is required")
	}
	if typeID == uuid.Nil || subtypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shop type and subtype are required")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner ID is required")
	}

	s := &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		Location:          location,
		TypeID:            typeID,
		SubtypeID:         subtypeID,
		OwnerID:           ownerID,
		Calification:      decimal.Zero,
	}

	s.AddDomainEvent(NewShopCreatedEvent(s.ID, s.Name, s.OwnerID))
	return s, nil
}

// Update changes the mutable attributes of the shop
func (s *Shop) Update(name, description, location, phone, openingHours string) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateShopName(name); err != nil {
		return err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return shared.NewDomainError("INVALID_INPUT", "Location is required")
	}

	s.Name = name
	s.Description = strings.TrimSpace(description)
	s.Location = location
	s.Phone = strings.TrimSpace(phone)
	s.OpeningHours = strings.TrimSpace(openingHours)
	s.IncrementVersion()
	return nil
}

// Reclassify moves the shop to another type/subtype pair
func (s *Shop) Reclassify(typeID, subtypeID uuid.UUID) *shared.DomainError {
	if typeID == uuid.Nil || subtypeID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Shop type and subtype are required")
	}
	s.TypeID = typeID
	s.SubtypeID = subtypeID
	s.IncrementVersion()
	return nil
}

// Verify marks the shop as reviewed by an administrator
func (s *Shop) Verify() *shared.DomainError {
	if s.Verified {
		return shared.NewDomainError("INVALID_STATE", "Shop is already verified")
	}
	s.Verified = true
	s.IncrementVersion()
	return nil
}

// SetImagePath records the stored image location
func (s *Shop) SetImagePath(path string) {
	s.ImagePath = path
	s.IncrementVersion()
}

// ApplyCalification updates the aggregated rating average and count
func (s *Shop) ApplyCalification(average decimal.Decimal, count int64) {
	s.Calification = average
	s.RatingCount = count
	s.IncrementVersion()
}

func validateShopName(name string) *shared.DomainError {
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
