package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CascadeResult reports what a cascading shop delete removed
type CascadeResult struct {
	Products int64 `json:"products"`
	Packages int64 `json:"packages"`
	Ratings  int64 `json:"ratings"`
}

// Repository defines persistence operations for shops
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Shop, error)
	FindByType(ctx context.Context, typeID uuid.UUID, filter shared.Filter) ([]Shop, error)
	FindBySubtype(ctx context.Context, subtypeID uuid.UUID, filter shared.Filter) ([]Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Shop, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, shop *Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)
	CountBySubtype(ctx context.Context, subtypeID uuid.UUID) (int64, error)
	CountProducts(ctx context.Context, shopID uuid.UUID) (int64, error)
	// CollectImagePaths gathers the stored image locations of the shop and
	// its products and packages, for cleanup after a cascading delete.
	CollectImagePaths(ctx context.Context, shopID uuid.UUID) ([]string, error)
	// DeleteCascade removes the shop with its packages, products, and
	// ratings in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) (CascadeResult, error)
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
	UpdateCalification(ctx context.Context, id uuid.UUID, average decimal.Decimal, count int64) error
}

// RatingRepository defines persistence operations for shop ratings
type RatingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Rating, error)
	FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Rating, error)
	FindByShopAndUser(ctx context.Context, shopID, userID uuid.UUID) (*Rating, error)
	Save(ctx context.Context, rating *Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Aggregate returns the average value and count of ratings for a shop.
	Aggregate(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, int64, error)
}
