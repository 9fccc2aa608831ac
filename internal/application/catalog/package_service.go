package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
)

// PackageService handles package business operations
type PackageService struct {
	packageRepo catalog.PackageRepository
	productRepo catalog.ProductRepository
	shopRepo    shop.Repository
}

// NewPackageService creates a new PackageService
func NewPackageService(
	packageRepo catalog.PackageRepository,
	productRepo catalog.ProductRepository,
	shopRepo shop.Repository,
) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

// Create creates a package around a product of the same shop
func (s *PackageService) Create(ctx context.Context, req CreatePackageRequest) (*PackageResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, req.ShopID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.ShopID != req.ShopID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product belongs to a different shop")
	}

	pkg, derr := catalog.NewPackage(req.ShopID, req.ProductID, req.Name, req.Description, req.Price)
	if derr != nil {
		return nil, derr
	}

	if err := s.packageRepo.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return ToPackageResponse(pkg), nil
}

// List retrieves packages with pagination
func (s *PackageService) List(ctx context.Context, filter shared.Filter) ([]PackageResponse, error) {
	packages, err := s.packageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPackageResponses(packages), nil
}

// ListByShop retrieves the packages of one shop
func (s *PackageService) ListByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]PackageResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		return nil, err
	}

	packages, err := s.packageRepo.FindByShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	return ToPackageResponses(packages), nil
}

// GetByID retrieves a package by ID
func (s *PackageService) GetByID(ctx context.Context, id uuid.UUID) (*PackageResponse, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPackageResponse(pkg), nil
}

// Update changes a package's attributes
func (s *PackageService) Update(ctx context.Context, id uuid.UUID, req UpdatePackageRequest) (*PackageResponse, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if derr := pkg.Update(req.Name, req.Description, req.Price); derr != nil {
		return nil, derr
	}

	if err := s.packageRepo.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return ToPackageResponse(pkg), nil
}

// Delete removes a package
func (s *PackageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.packageRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.packageRepo.Delete(ctx, id)
}
