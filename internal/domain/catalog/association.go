package catalog

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// TypeCategory links a shop type to a product category. Pure join row,
// unique per (type, category) pair.
type TypeCategory struct {
	shared.BaseEntity
	TypeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_type_categories_pair,unique"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_type_categories_pair,unique"`
}

// TableName specifies the table name for GORM
func (TypeCategory) TableName() string {
	return "type_categories"
}

// NewTypeCategory creates a new type-category association
func NewTypeCategory(typeID, categoryID uuid.UUID) (*TypeCategory, *shared.DomainError) {
	if typeID == uuid.Nil || categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Type ID and category ID are required")
	}
	return &TypeCategory{
		BaseEntity: shared.NewBaseEntity(),
		TypeID:     typeID,
		CategoryID: categoryID,
	}, nil
}

// CategorySubcategory links a category to a subcategory. Unique per
// (category, subcategory) pair.
type CategorySubcategory struct {
	shared.BaseEntity
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index:idx_category_subcategories_pair,unique"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_category_subcategories_pair,unique"`
}

// TableName specifies the table name for GORM
func (CategorySubcategory) TableName() string {
	return "category_subcategories"
}

// NewCategorySubcategory creates a new category-subcategory association
func NewCategorySubcategory(categoryID, subcategoryID uuid.UUID) (*CategorySubcategory, *shared.DomainError) {
	if categoryID == uuid.Nil || subcategoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category ID and subcategory ID are required")
	}
	return &CategorySubcategory{
		BaseEntity:    shared.NewBaseEntity(),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}, nil
}
