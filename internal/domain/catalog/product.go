package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is an item a shop offers, classified under a subcategory.
type Product struct {
	shared.BaseAggregateRoot
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubcategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(150);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Active        bool            `gorm:"not null;default:true;index"`
	ImagePath     string          `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(shopID, subcategoryID uuid.UUID, name, description string, price decimal.Decimal) (*Product, *shared.DomainError) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shop ID is required")
	}
	if subcategoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Subcategory ID is required")
	}
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShopID:            shopID,
		SubcategoryID:     subcategoryID,
		Name:              name,
		Description:       strings.TrimSpace(description),
		Price:             price,
		Active:            true,
	}, nil
}

// Update changes the mutable attributes of the product
func (p *Product) Update(name, description string, price decimal.Decimal) *shared.DomainError {
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

// Reclassify moves the product to another subcategory
func (p *Product) Reclassify(subcategoryID uuid.UUID) *shared.DomainError {
	if subcategoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Subcategory ID is required")
	}
	if subcategoryID == p.SubcategoryID {
		return shared.NewDomainError("INVALID_INPUT", "Product is already in this subcategory")
	}
	p.SubcategoryID = subcategoryID
	p.IncrementVersion()
	return nil
}

// SetImagePath records the stored image location
func (p *Product) SetImagePath(path string) {
	p.ImagePath = path
	p.IncrementVersion()
}
