package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// ShopTypeRepository defines persistence operations for shop types
type ShopTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopType, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ShopType, error)
	FindActive(ctx context.Context) ([]ShopType, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, shopType *ShopType) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountActiveSubtypes(ctx context.Context, typeID uuid.UUID) (int64, error)
}

// ShopSubtypeRepository defines persistence operations for shop subtypes
type ShopSubtypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopSubtype, error)
	FindByType(ctx context.Context, typeID uuid.UUID, onlyActive bool) ([]ShopSubtype, error)
	FindActive(ctx context.Context) ([]ShopSubtype, error)
	ExistsByNameInType(ctx context.Context, typeID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, subtype *ShopSubtype) error
}
