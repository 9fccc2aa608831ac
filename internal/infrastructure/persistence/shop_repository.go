package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormShopRepository implements shop.Repository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	var s shop.Shop
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds all shops matching the filter
func (r *GormShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	var shops []shop.Shop
	query := r.applyFilter(r.db.WithContext(ctx).Model(&shop.Shop{}), filter)

	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByType finds the shops classified under a shop type
func (r *GormShopRepository) FindByType(ctx context.Context, typeID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	var shops []shop.Shop
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&shop.Shop{}).Where("type_id = ?", typeID), filter)

	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindBySubtype finds the shops classified under a subtype
func (r *GormShopRepository) FindBySubtype(ctx context.Context, subtypeID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	var shops []shop.Shop
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&shop.Shop{}).Where("subtype_id = ?", subtypeID), filter)

	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByOwner finds the shops owned by a user
func (r *GormShopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]shop.Shop, error) {
	var shops []shop.Shop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// ExistsByName checks whether another shop already uses the name
func (r *GormShopRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes the bare shop row. Dependent checks are the caller's
// responsibility.
func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shop.Shop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts shops matching the filter
func (r *GormShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&shop.Shop{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByType counts the shops classified under a shop type
func (r *GormShopRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySubtype counts the shops classified under a subtype
func (r *GormShopRepository) CountBySubtype(ctx context.Context, subtypeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("subtype_id = ?", subtypeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts counts the products a shop offers
func (r *GormShopRepository) CountProducts(ctx context.Context, shopID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("shop_id = ?", shopID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CollectImagePaths gathers the stored image locations of the shop and its
// products and packages, for cleanup after a cascading delete
func (r *GormShopRepository) CollectImagePaths(ctx context.Context, shopID uuid.UUID) ([]string, error) {
	var paths []string

	var shopPath string
	if err := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("id = ?", shopID).
		Pluck("image_path", &shopPath).Error; err != nil {
		return nil, err
	}
	if shopPath != "" {
		paths = append(paths, shopPath)
	}

	var productPaths []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("shop_id = ? AND image_path <> ''", shopID).
		Pluck("image_path", &productPaths).Error; err != nil {
		return nil, err
	}
	paths = append(paths, productPaths...)

	var packagePaths []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Package{}).
		Where("shop_id = ? AND image_path <> ''", shopID).
		Pluck("image_path", &packagePaths).Error; err != nil {
		return nil, err
	}
	paths = append(paths, packagePaths...)

	return paths, nil
}

// DeleteCascade removes the shop with its packages, products, and ratings
// in one transaction
func (r *GormShopRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (shop.CascadeResult, error) {
	var cascade shop.CascadeResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		packages := tx.Where("shop_id = ?", id).Delete(&catalog.Package{})
		if packages.Error != nil {
			return packages.Error
		}
		cascade.Packages = packages.RowsAffected

		products := tx.Where("shop_id = ?", id).Delete(&catalog.Product{})
		if products.Error != nil {
			return products.Error
		}
		cascade.Products = products.RowsAffected

		ratings := tx.Where("shop_id = ?", id).Delete(&shop.Rating{})
		if ratings.Error != nil {
			return ratings.Error
		}
		cascade.Ratings = ratings.RowsAffected

		result := tx.Delete(&shop.Shop{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return shop.CascadeResult{}, err
	}
	return cascade, nil
}

// SetImagePath records the stored image location of a shop
func (r *GormShopRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	result := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("id = ?", id).
		Update("image_path", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateCalification writes the recomputed rating average and count
func (r *GormShopRepository) UpdateCalification(ctx context.Context, id uuid.UUID, average decimal.Decimal, count int64) error {
	result := r.db.WithContext(ctx).
		Model(&shop.Shop{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"calification": average,
			"rating_count": count,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormShopRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ShopSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormShopRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type_id":
			query = query.Where("type_id = ?", value)
		case "subtype_id":
			query = query.Where("subtype_id = ?", value)
		case "owner_id":
			query = query.Where("owner_id = ?", value)
		case "verified":
			query = query.Where("verified = ?", value)
		}
	}

	return query
}

// Ensure GormShopRepository implements shop.Repository
var _ shop.Repository = (*GormShopRepository)(nil)
