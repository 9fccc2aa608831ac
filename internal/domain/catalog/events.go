package catalog

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Event types for the catalog domain
const (
	EventTypeCategoryCreated    = "catalog.category.created"
	EventTypeCategoryDeleted    = "catalog.category.deleted"
	EventTypeSubcategoryCreated = "catalog.subcategory.created"
	EventTypeProductsMigrated   = "catalog.products.migrated"
)

// CategoryCreatedEvent is raised when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(categoryID uuid.UUID, name string) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, "Category", categoryID),
		Name:            name,
	}
}

// CategoryDeletedEvent is raised after a category (and its cascade) is removed
type CategoryDeletedEvent struct {
	shared.BaseDomainEvent
	DeletedSubcategories int64 `json:"deleted_subcategories"`
	DeletedProducts      int64 `json:"deleted_products"`
}

// NewCategoryDeletedEvent creates a new CategoryDeletedEvent
func NewCategoryDeletedEvent(categoryID uuid.UUID, subcategories, products int64) *CategoryDeletedEvent {
	return &CategoryDeletedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeCategoryDeleted, "Category", categoryID),
		DeletedSubcategories: subcategories,
		DeletedProducts:      products,
	}
}

// SubcategoryCreatedEvent is raised when a subcategory is created
type SubcategoryCreatedEvent struct {
	shared.BaseDomainEvent
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
}

// NewSubcategoryCreatedEvent creates a new SubcategoryCreatedEvent
func NewSubcategoryCreatedEvent(subcategoryID, categoryID uuid.UUID, name string) *SubcategoryCreatedEvent {
	return &SubcategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSubcategoryCreated, "Subcategory", subcategoryID),
		CategoryID:      categoryID,
		Name:            name,
	}
}

// ProductsMigratedEvent is raised after products move between subcategories
type ProductsMigratedEvent struct {
	shared.BaseDomainEvent
	FromSubcategoryID uuid.UUID `json:"from_subcategory_id"`
	ToSubcategoryID   uuid.UUID `json:"to_subcategory_id"`
	MigratedCount     int64     `json:"migrated_count"`
}

// NewProductsMigratedEvent creates a new ProductsMigratedEvent
func NewProductsMigratedEvent(from, to uuid.UUID, count int64) *ProductsMigratedEvent {
	return &ProductsMigratedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypeProductsMigrated, "Subcategory", from),
		FromSubcategoryID: from,
		ToSubcategoryID:   to,
		MigratedCount:     count,
	}
}
