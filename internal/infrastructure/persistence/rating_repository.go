package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GormRatingRepository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// FindByID finds a rating by its ID
func (r *GormRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Rating, error) {
	var rating shop.Rating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// FindByShop finds the ratings of a shop matching the filter
func (r *GormRatingRepository) FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]shop.Rating, error) {
	var ratings []shop.Rating
	query := r.db.WithContext(ctx).Where("shop_id = ?", shopID)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByShopAndUser finds the single rating a user left on a shop
func (r *GormRatingRepository) FindByShopAndUser(ctx context.Context, shopID, userID uuid.UUID) (*shop.Rating, error) {
	var rating shop.Rating
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Save creates or updates a rating
func (r *GormRatingRepository) Save(ctx context.Context, rating *shop.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

// Delete removes a rating
func (r *GormRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shop.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Aggregate returns the average value and count of ratings for a shop.
// A shop without ratings aggregates to zero.
func (r *GormRatingRepository) Aggregate(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, int64, error) {
	var row struct {
		Average decimal.Decimal
		Total   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&shop.Rating{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS total").
		Where("shop_id = ?", shopID).
		Scan(&row).Error; err != nil {
		return decimal.Zero, 0, err
	}
	return row.Average.Round(2), row.Total, nil
}

// Ensure GormRatingRepository implements RatingRepository
var _ shop.RatingRepository = (*GormRatingRepository)(nil)
