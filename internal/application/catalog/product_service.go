package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
)

// ProductService handles product business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	subcatRepo  catalog.SubcategoryRepository
	shopRepo    shop.Repository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	subcatRepo catalog.SubcategoryRepository,
	shopRepo shop.Repository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		subcatRepo:  subcatRepo,
		shopRepo:    shopRepo,
	}
}

// Create creates a product in a shop under a verified subcategory
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, req.ShopID); err != nil {
		return nil, err
	}

	subcategory, err := s.subcatRepo.FindByID(ctx, req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if !subcategory.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Subcategory has not been verified")
	}

	product, derr := catalog.NewProduct(req.ShopID, req.SubcategoryID, req.Name, req.Description, req.Price)
	if derr != nil {
		return nil, derr
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// ListByShop retrieves the products of one shop
func (s *ProductService) ListByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ListBySubcategory retrieves the products under one subcategory
func (s *ProductService) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindBySubcategory(ctx, subcategoryID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update changes a product's attributes
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if derr := product.Update(req.Name, req.Description, req.Price); derr != nil {
		return nil, derr
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
