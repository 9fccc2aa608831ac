// Package shop implements the application services for shops and
// their ratings.
package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/localmarket/backend/internal/domain/taxonomy"
)

// Service handles shop business operations
type Service struct {
	shopRepo    shop.Repository
	typeRepo    taxonomy.ShopTypeRepository
	subtypeRepo taxonomy.ShopSubtypeRepository
	userRepo    identity.UserRepository
	publisher   shared.EventPublisher
}

// NewService creates a new shop Service
func NewService(
	shopRepo shop.Repository,
	typeRepo taxonomy.ShopTypeRepository,
	subtypeRepo taxonomy.ShopSubtypeRepository,
	userRepo identity.UserRepository,
	publisher shared.EventPublisher,
) *Service {
	return &Service{
		shopRepo:    shopRepo,
		typeRepo:    typeRepo,
		subtypeRepo: subtypeRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// Create opens a new shop for a seller
func (s *Service) Create(ctx context.Context, req CreateShopRequest) (*ShopResponse, error) {
	owner, err := s.userRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !owner.CanOwnShop() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only sellers can own shops")
	}

	if err := s.validateClassification(ctx, req.TypeID, req.SubtypeID); err != nil {
		return nil, err
	}

	exists, err := s.shopRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop with this name already exists")
	}

	sh, derr := shop.NewShop(req.Name, req.Description, req.Location, req.TypeID, req.SubtypeID, req.OwnerID)
	if derr != nil {
		return nil, derr
	}
	if req.Phone != "" || req.OpeningHours != "" {
		if derr := sh.Update(req.Name, req.Description, req.Location, req.Phone, req.OpeningHours); derr != nil {
			return nil, derr
		}
	}

	if err := s.shopRepo.Save(ctx, sh); err != nil {
		return nil, err
	}

	s.publish(ctx, sh.GetDomainEvents()...)
	sh.ClearDomainEvents()
	return ToShopResponse(sh), nil
}

// List retrieves shops with pagination
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]ShopResponse, int64, error) {
	shops, err := s.shopRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.shopRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToShopResponses(shops), total, nil
}

// ListByType retrieves the shops of one shop type
func (s *Service) ListByType(ctx context.Context, typeID uuid.UUID, filter shared.Filter) ([]ShopResponse, error) {
	shops, err := s.shopRepo.FindByType(ctx, typeID, filter)
	if err != nil {
		return nil, err
	}
	return ToShopResponses(shops), nil
}

// ListBySubtype retrieves the shops of one shop subtype
func (s *Service) ListBySubtype(ctx context.Context, subtypeID uuid.UUID, filter shared.Filter) ([]ShopResponse, error) {
	shops, err := s.shopRepo.FindBySubtype(ctx, subtypeID, filter)
	if err != nil {
		return nil, err
	}
	return ToShopResponses(shops), nil
}

// ListByOwner retrieves the shops owned by one user
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ShopResponse, error) {
	shops, err := s.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToShopResponses(shops), nil
}

// GetByID retrieves a shop by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ShopResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShopResponse(sh), nil
}

// Update changes a shop's attributes
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateShopRequest) (*ShopResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != sh.Name {
		exists, err := s.shopRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop with this name already exists")
		}
	}

	if derr := sh.Update(req.Name, req.Description, req.Location, req.Phone, req.OpeningHours); derr != nil {
		return nil, derr
	}

	if err := s.shopRepo.Save(ctx, sh); err != nil {
		return nil, err
	}
	return ToShopResponse(sh), nil
}

// Reclassify moves a shop to another active type/subtype pair
func (s *Service) Reclassify(ctx context.Context, id uuid.UUID, req ReclassifyShopRequest) (*ShopResponse, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateClassification(ctx, req.TypeID, req.SubtypeID); err != nil {
		return nil, err
	}

	if derr := sh.Reclassify(req.TypeID, req.SubtypeID); derr != nil {
		return nil, derr
	}

	if err := s.shopRepo.Save(ctx, sh); err != nil {
		return nil, err
	}
	return ToShopResponse(sh), nil
}

// Verify marks a shop as administrator-reviewed
func (s *Service) Verify(ctx context.Context, id uuid.UUID) error {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if derr := sh.Verify(); derr != nil {
		return derr
	}
	return s.shopRepo.Save(ctx, sh)
}

// Delete removes a shop. Blocked with the product count while products
// still reference it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.shopRepo.FindByID(ctx, id); err != nil {
		return err
	}

	products, err := s.shopRepo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return shared.NewDomainError("IN_USE", "Shop still has products").
			WithDetails(map[string]interface{}{"products": products})
	}

	return s.shopRepo.Delete(ctx, id)
}

// DeleteWithProducts removes a shop together with its packages,
// products, and ratings in one transaction. Stored images are cleaned
// up after the commit by the shop-deleted event handler; storage
// failures never roll the delete back.
func (s *Service) DeleteWithProducts(ctx context.Context, id uuid.UUID) (*shop.CascadeResult, error) {
	sh, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imagePaths, err := s.shopRepo.CollectImagePaths(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.shopRepo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, shop.NewShopDeletedEvent(id, sh.Name, imagePaths))
	return &result, nil
}

func (s *Service) validateClassification(ctx context.Context, typeID, subtypeID uuid.UUID) error {
	shopType, err := s.typeRepo.FindByID(ctx, typeID)
	if err != nil {
		return err
	}
	if !shopType.IsActive() {
		return shared.NewDomainError("INVALID_STATE", "Shop type is inactive")
	}

	subtype, err := s.subtypeRepo.FindByID(ctx, subtypeID)
	if err != nil {
		return err
	}
	if !subtype.IsActive() {
		return shared.NewDomainError("INVALID_STATE", "Shop subtype is inactive")
	}
	if subtype.TypeID != typeID {
		return shared.NewDomainError("INVALID_INPUT", "Subtype does not belong to the given type")
	}
	return nil
}

func (s *Service) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.publisher != nil && len(events) > 0 {
		_ = s.publisher.Publish(ctx, events...)
	}
}
