// Package taxonomy implements the application services for the shop
// classification registry.
package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
)

// ShopUsageCounter reports how many shops reference a taxonomy record.
// Implemented by the shop repository.
type ShopUsageCounter interface {
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)
	CountBySubtype(ctx context.Context, subtypeID uuid.UUID) (int64, error)
}

// ListCache caches the active shop type list. Implementations may be
// absent; the service treats a nil cache as a pass-through.
type ListCache interface {
	GetTypeList(ctx context.Context) ([]ShopTypeResponse, bool)
	SetTypeList(ctx context.Context, items []ShopTypeResponse)
	Invalidate(ctx context.Context)
}

// Service handles shop type and subtype operations
type Service struct {
	typeRepo    taxonomy.ShopTypeRepository
	subtypeRepo taxonomy.ShopSubtypeRepository
	shopCounter ShopUsageCounter
	cache       ListCache
}

// NewService creates a new taxonomy Service
func NewService(
	typeRepo taxonomy.ShopTypeRepository,
	subtypeRepo taxonomy.ShopSubtypeRepository,
	shopCounter ShopUsageCounter,
	cache ListCache,
) *Service {
	return &Service{
		typeRepo:    typeRepo,
		subtypeRepo: subtypeRepo,
		shopCounter: shopCounter,
		cache:       cache,
	}
}

// CreateType creates a new shop type
func (s *Service) CreateType(ctx context.Context, req CreateShopTypeRequest) (*ShopTypeResponse, error) {
	exists, err := s.typeRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop type with this name already exists")
	}

	shopType, derr := taxonomy.NewShopType(req.Name, req.Description)
	if derr != nil {
		return nil, derr
	}

	if err := s.typeRepo.Save(ctx, shopType); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return ToShopTypeResponse(shopType), nil
}

// ListActiveTypes returns all active shop types, served from cache when warm
func (s *Service) ListActiveTypes(ctx context.Context) ([]ShopTypeResponse, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetTypeList(ctx); ok {
			return items, nil
		}
	}

	types, err := s.typeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	items := ToShopTypeResponses(types)
	if s.cache != nil {
		s.cache.SetTypeList(ctx, items)
	}
	return items, nil
}

// ListTypes returns shop types including inactive ones, paginated
func (s *Service) ListTypes(ctx context.Context, filter shared.Filter) ([]ShopTypeResponse, int64, error) {
	types, err := s.typeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.typeRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToShopTypeResponses(types), total, nil
}

// GetType retrieves a shop type by ID, active or not
func (s *Service) GetType(ctx context.Context, id uuid.UUID) (*ShopTypeResponse, error) {
	shopType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShopTypeResponse(shopType), nil
}

// UpdateType updates a shop type's attributes
func (s *Service) UpdateType(ctx context.Context, id uuid.UUID, req UpdateShopTypeRequest) (*ShopTypeResponse, error) {
	shopType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != shopType.Name {
		exists, err := s.typeRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop type with this name already exists")
		}
	}

	if derr := shopType.Update(req.Name, req.Description, req.SortOrder); derr != nil {
		return nil, derr
	}

	if err := s.typeRepo.Save(ctx, shopType); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return ToShopTypeResponse(shopType), nil
}

// DeactivateType soft-deletes a shop type. The operation is blocked
// while active subtypes or shops still reference the type.
func (s *Service) DeactivateType(ctx context.Context, id uuid.UUID) error {
	shopType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	subtypes, err := s.typeRepo.CountActiveSubtypes(ctx, id)
	if err != nil {
		return err
	}
	if subtypes > 0 {
		return shared.NewDomainError("IN_USE", "Shop type still has active subtypes").
			WithDetails(map[string]interface{}{"subtypes": subtypes})
	}

	shops, err := s.shopCounter.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if shops > 0 {
		return shared.NewDomainError("IN_USE", "Shop type is still used by shops").
			WithDetails(map[string]interface{}{"shops": shops})
	}

	if derr := shopType.Deactivate(); derr != nil {
		return derr
	}

	if err := s.typeRepo.Save(ctx, shopType); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// ActivateType restores a soft-deleted shop type
func (s *Service) ActivateType(ctx context.Context, id uuid.UUID) error {
	shopType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if derr := shopType.Activate(); derr != nil {
		return derr
	}

	if err := s.typeRepo.Save(ctx, shopType); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// VerifyType marks a shop type as administrator-reviewed
func (s *Service) VerifyType(ctx context.Context, id uuid.UUID) error {
	shopType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	shopType.Verify()
	if err := s.typeRepo.Save(ctx, shopType); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// CreateSubtype creates a new subtype under an active shop type
func (s *Service) CreateSubtype(ctx context.Context, req CreateShopSubtypeRequest) (*ShopSubtypeResponse, error) {
	shopType, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		return nil, err
	}
	if !shopType.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add a subtype to an inactive shop type")
	}

	exists, err := s.subtypeRepo.ExistsByNameInType(ctx, req.TypeID, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop subtype with this name already exists for this type")
	}

	subtype, derr := taxonomy.NewShopSubtype(req.TypeID, req.Name, req.Description)
	if derr != nil {
		return nil, derr
	}

	if err := s.subtypeRepo.Save(ctx, subtype); err != nil {
		return nil, err
	}

	return ToShopSubtypeResponse(subtype), nil
}

// ListSubtypesByType returns the subtypes of a shop type
func (s *Service) ListSubtypesByType(ctx context.Context, typeID uuid.UUID, onlyActive bool) ([]ShopSubtypeResponse, error) {
	if _, err := s.typeRepo.FindByID(ctx, typeID); err != nil {
		return nil, err
	}

	subtypes, err := s.subtypeRepo.FindByType(ctx, typeID, onlyActive)
	if err != nil {
		return nil, err
	}
	return ToShopSubtypeResponses(subtypes), nil
}

// GetSubtype retrieves a shop subtype by ID
func (s *Service) GetSubtype(ctx context.Context, id uuid.UUID) (*ShopSubtypeResponse, error) {
	subtype, err := s.subtypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToShopSubtypeResponse(subtype), nil
}

// UpdateSubtype updates a shop subtype's attributes
func (s *Service) UpdateSubtype(ctx context.Context, id uuid.UUID, req UpdateShopSubtypeRequest) (*ShopSubtypeResponse, error) {
	subtype, err := s.subtypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != subtype.Name {
		exists, err := s.subtypeRepo.ExistsByNameInType(ctx, subtype.TypeID, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Shop subtype with this name already exists for this type")
		}
	}

	if derr := subtype.Update(req.Name, req.Description, req.SortOrder); derr != nil {
		return nil, derr
	}

	if err := s.subtypeRepo.Save(ctx, subtype); err != nil {
		return nil, err
	}
	return ToShopSubtypeResponse(subtype), nil
}

// DeactivateSubtype soft-deletes a subtype. Blocked while shops use it.
func (s *Service) DeactivateSubtype(ctx context.Context, id uuid.UUID) error {
	subtype, err := s.subtypeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	shops, err := s.shopCounter.CountBySubtype(ctx, id)
	if err != nil {
		return err
	}
	if shops > 0 {
		return shared.NewDomainError("IN_USE", "Shop subtype is still used by shops").
			WithDetails(map[string]interface{}{"shops": shops})
	}

	if derr := subtype.Deactivate(); derr != nil {
		return derr
	}
	return s.subtypeRepo.Save(ctx, subtype)
}

// ActivateSubtype restores a soft-deleted subtype
func (s *Service) ActivateSubtype(ctx context.Context, id uuid.UUID) error {
	subtype, err := s.subtypeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if derr := subtype.Activate(); derr != nil {
		return derr
	}
	return s.subtypeRepo.Save(ctx, subtype)
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
