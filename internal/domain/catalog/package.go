package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Package is a promotional bundle a shop builds around one of its
// products, usually at a discounted price.
type Package struct {
	shared.BaseAggregateRoot
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImagePath   string          `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (Package) TableName() string {
	return "packages"
}

// NewPackage creates a new package for a shop product
func NewPackage(shopID, productID uuid.UUID, name, description string, price decimal.Decimal) (*Package, *shared.DomainError) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shop ID is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	return &Package{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShopID:            shopID,
		ProductID:         productID,
		Name:              name,
		Description:       strings.TrimSpace(description),
		Price:             price,
	}, nil
}

// Update changes the mutable attributes of the package
func (p *Package) Update(name, description string, price decimal.Decimal) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.Price = price
	p.IncrementVersion()
	return nil
}

// SetImagePath records the stored image location
func (p *Package) SetImagePath(path string) {
	p.ImagePath = path
	p.IncrementVersion()
}
