package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"gorm.io/gorm"
)

// GormShopTypeRepository implements ShopTypeRepository using GORM
type GormShopTypeRepository struct {
	db *gorm.DB
}

// NewGormShopTypeRepository creates a new GormShopTypeRepository
func NewGormShopTypeRepository(db *gorm.DB) *GormShopTypeRepository {
	return &GormShopTypeRepository{db: db}
}

// FindByID finds a shop type by its ID
func (r *GormShopTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopType, error) {
	var shopType taxonomy.ShopType
	if err := r.db.WithContext(ctx).First(&shopType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shopType, nil
}

// FindAll finds all shop types matching the filter
func (r *GormShopTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]taxonomy.ShopType, error) {
	var types []taxonomy.ShopType
	query := r.applyFilter(r.db.WithContext(ctx).Model(&taxonomy.ShopType{}), filter)

	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindActive finds all active shop types ordered for display
func (r *GormShopTypeRepository) FindActive(ctx context.Context) ([]taxonomy.ShopType, error) {
	var types []taxonomy.ShopType
	if err := r.db.WithContext(ctx).
		Where("status = ?", taxonomy.ShopTypeStatusActive).
		Order("sort_order ASC, name ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// ExistsByName checks whether another shop type already uses the name
func (r *GormShopTypeRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&taxonomy.ShopType{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a shop type
func (r *GormShopTypeRepository) Save(ctx context.Context, shopType *taxonomy.ShopType) error {
	return r.db.WithContext(ctx).Save(shopType).Error
}

// Count counts shop types matching the filter
func (r *GormShopTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&taxonomy.ShopType{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveSubtypes counts the active subtypes under a type
func (r *GormShopTypeRepository) CountActiveSubtypes(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&taxonomy.ShopSubtype{}).
		Where("type_id = ? AND status = ?", typeID, taxonomy.ShopTypeStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormShopTypeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TaxonomySortFields, "sort_order")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormShopTypeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "verified":
			query = query.Where("verified = ?", value)
		}
	}

	return query
}

// Ensure GormShopTypeRepository implements ShopTypeRepository
var _ taxonomy.ShopTypeRepository = (*GormShopTypeRepository)(nil)
