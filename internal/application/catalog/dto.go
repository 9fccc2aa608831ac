package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a category.
// TypeID names the shop type the category is linked to on creation.
type CreateCategoryRequest struct {
	TypeID      uuid.UUID  `json:"type_id" binding:"required"`
	Name        string     `json:"name" binding:"required,min=2,max=100"`
	Description string     `json:"description" binding:"max=255"`
	CreatedBy   *uuid.UUID `json:"created_by"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// CreateSubcategoryRequest represents a request to create a subcategory
type CreateSubcategoryRequest struct {
	CategoryID  uuid.UUID  `json:"category_id" binding:"required"`
	Name        string     `json:"name" binding:"required,min=2,max=100"`
	Description string     `json:"description" binding:"max=255"`
	CreatedBy   *uuid.UUID `json:"created_by"`
}

// UpdateSubcategoryRequest represents a request to update a subcategory
type UpdateSubcategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// MigrateProductsRequest asks to move all products between subcategories
type MigrateProductsRequest struct {
	FromSubcategoryID uuid.UUID `json:"from_subcategory_id" binding:"required"`
	ToSubcategoryID   uuid.UUID `json:"to_subcategory_id" binding:"required"`
}

// CreateTypeCategoryRequest links a shop type to a category
type CreateTypeCategoryRequest struct {
	TypeID     uuid.UUID `json:"type_id" binding:"required"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// CreateCategorySubcategoryRequest links a category to a subcategory
type CreateCategorySubcategoryRequest struct {
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`
	SubcategoryID uuid.UUID `json:"subcategory_id" binding:"required"`
}

// BatchLinkSubcategoriesRequest links a category to several subcategories
type BatchLinkSubcategoriesRequest struct {
	CategoryID     uuid.UUID   `json:"category_id" binding:"required"`
	SubcategoryIDs []uuid.UUID `json:"subcategory_ids" binding:"required,min=1"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	ShopID        uuid.UUID       `json:"shop_id" binding:"required"`
	SubcategoryID uuid.UUID       `json:"subcategory_id" binding:"required"`
	Name          string          `json:"name" binding:"required,min=2,max=150"`
	Description   string          `json:"description" binding:"max=500"`
	Price         decimal.Decimal `json:"price" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=150"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// CreatePackageRequest represents a request to create a package
type CreatePackageRequest struct {
	ShopID      uuid.UUID       `json:"shop_id" binding:"required"`
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	Name        string          `json:"name" binding:"required,min=2,max=150"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// UpdatePackageRequest represents a request to update a package
type UpdatePackageRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=150"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Verified    bool       `json:"verified"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SubcategoryResponse represents a subcategory in API responses
type SubcategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Verified    bool       `json:"verified"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AssociationResponse represents a join row in API responses
type AssociationResponse struct {
	ID        uuid.UUID `json:"id"`
	LeftID    uuid.UUID `json:"left_id"`
	RightID   uuid.UUID `json:"right_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AffectedProductsResponse reports dependents before a destructive change
type AffectedProductsResponse struct {
	Count    int64             `json:"count"`
	Products []ProductResponse `json:"products"`
}

// MigrationResponse reports the outcome of a product migration
type MigrationResponse struct {
	FromSubcategoryID uuid.UUID `json:"from_subcategory_id"`
	ToSubcategoryID   uuid.UUID `json:"to_subcategory_id"`
	MigratedCount     int64     `json:"migrated_count"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	ShopID        uuid.UUID       `json:"shop_id"`
	SubcategoryID uuid.UUID       `json:"subcategory_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Active        bool            `json:"active"`
	ImagePath     string          `json:"image_path,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PackageResponse represents a package in API responses
type PackageResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image_path,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to its response form
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Verified:    c.Verified,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *ToCategoryResponse(&categories[i]))
	}
	return out
}

// ToSubcategoryResponse converts a domain subcategory to its response form
func ToSubcategoryResponse(s *catalog.Subcategory) *SubcategoryResponse {
	return &SubcategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Verified:    s.Verified,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSubcategoryResponses converts a slice of domain subcategories
func ToSubcategoryResponses(subcategories []catalog.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		out = append(out, *ToSubcategoryResponse(&subcategories[i]))
	}
	return out
}

// ToProductResponse converts a domain product to its response form
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		ShopID:        p.ShopID,
		SubcategoryID: p.SubcategoryID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Active:        p.Active,
		ImagePath:     p.ImagePath,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *ToProductResponse(&products[i]))
	}
	return out
}

// ToPackageResponse converts a domain package to its response form
func ToPackageResponse(p *catalog.Package) *PackageResponse {
	return &PackageResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImagePath:   p.ImagePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPackageResponses converts a slice of domain packages
func ToPackageResponses(packages []catalog.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, *ToPackageResponse(&packages[i]))
	}
	return out
}
