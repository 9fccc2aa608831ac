package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// CascadeResult reports what a cascading delete removed
type CascadeResult struct {
	Subcategories int64 `json:"subcategories"`
	Products      int64 `json:"products"`
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, category *Category) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountSubcategories(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountProducts(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// CreateWithTypeLink inserts the category and its shop-type association
	// in one transaction.
	CreateWithTypeLink(ctx context.Context, category *Category, typeID uuid.UUID) error
	// Delete removes the bare category row. Dependent checks are the
	// caller's responsibility.
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteCascade removes the category, its subcategories, the products
	// under them, and all association rows in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) (CascadeResult, error)
}

// SubcategoryRepository defines persistence operations for subcategories
type SubcategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Subcategory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Subcategory, error)
	ExistsByNameInCategory(ctx context.Context, categoryID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, subcategory *Subcategory) error
	CountProducts(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
	FindProducts(ctx context.Context, subcategoryID uuid.UUID) ([]Product, error)
	// Delete removes the bare subcategory row.
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteCascade removes the subcategory, its products, and its
	// association rows in one transaction. Returns the product count.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
	// MigrateProducts reassigns every product from one subcategory to
	// another in a single pass and returns the number moved.
	MigrateProducts(ctx context.Context, fromID, toID uuid.UUID) (int64, error)
}

// BatchLinkResult reports the outcome of a batch association create
type BatchLinkResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// AssociationRepository defines persistence operations for the
// type-category and category-subcategory join tables
type AssociationRepository interface {
	FindTypeCategoryByID(ctx context.Context, id uuid.UUID) (*TypeCategory, error)
	FindTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) ([]TypeCategory, error)
	TypeCategoryExists(ctx context.Context, typeID, categoryID uuid.UUID) (bool, error)
	SaveTypeCategory(ctx context.Context, link *TypeCategory) error
	DeleteTypeCategory(ctx context.Context, id uuid.UUID) error
	DeleteTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) (int64, error)
	DeleteTypeCategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	FindCategorySubcategoryByID(ctx context.Context, id uuid.UUID) (*CategorySubcategory, error)
	FindCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]CategorySubcategory, error)
	CategorySubcategoryExists(ctx context.Context, categoryID, subcategoryID uuid.UUID) (bool, error)
	SaveCategorySubcategory(ctx context.Context, link *CategorySubcategory) error
	DeleteCategorySubcategory(ctx context.Context, id uuid.UUID) error
	DeleteCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// SaveCategorySubcategoryBatch links a category to several
	// subcategories in one transaction, skipping pairs that already exist.
	SaveCategorySubcategoryBatch(ctx context.Context, categoryID uuid.UUID, subcategoryIDs []uuid.UUID) (BatchLinkResult, error)
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Product, error)
	FindBySubcategory(ctx context.Context, subcategoryID uuid.UUID, filter shared.Filter) ([]Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}

// PackageRepository defines persistence operations for packages
type PackageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Package, error)
	FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Package, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Package, error)
	Save(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}
