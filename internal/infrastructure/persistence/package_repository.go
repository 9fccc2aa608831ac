package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// FindByID finds a package by its ID
func (r *GormPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	var pkg catalog.Package
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// FindByShop finds the packages of a shop matching the filter
func (r *GormPackageRepository) FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]catalog.Package, error) {
	var packages []catalog.Package
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Package{}).Where("shop_id = ?", shopID), filter)

	if err := query.Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// FindAll finds all packages matching the filter
func (r *GormPackageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Package, error) {
	var packages []catalog.Package
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Package{}), filter)

	if err := query.Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// Save creates or updates a package
func (r *GormPackageRepository) Save(ctx context.Context, pkg *catalog.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

// Delete removes a package
func (r *GormPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Package{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetImagePath records the stored image location of a package
func (r *GormPackageRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	result := r.db.WithContext(ctx).
		Model(&catalog.Package{}).
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

// applyFilter applies filter options to the query
func (r *GormPackageRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// Ensure GormPackageRepository implements PackageRepository
var _ catalog.PackageRepository = (*GormPackageRepository)(nil)
