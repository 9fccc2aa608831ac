package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSubcategoryRepository implements SubcategoryRepository using GORM
type GormSubcategoryRepository struct {
	db *gorm.DB
}

// NewGormSubcategoryRepository creates a new GormSubcategoryRepository
func NewGormSubcategoryRepository(db *gorm.DB) *GormSubcategoryRepository {
	return &GormSubcategoryRepository{db: db}
}

// FindByID finds a subcategory by its ID
func (r *GormSubcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Subcategory, error) {
	var subcategory catalog.Subcategory
	if err := r.db.WithContext(ctx).First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

// FindByCategory finds the subcategories under a category
func (r *GormSubcategoryRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error) {
	var subcategories []catalog.Subcategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

// FindAll finds all subcategories matching the filter
func (r *GormSubcategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Subcategory, error) {
	var subcategories []catalog.Subcategory
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Subcategory{}), filter)

	if err := query.Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

// ExistsByNameInCategory checks whether another subcategory of the category uses the name
func (r *GormSubcategoryRepository) ExistsByNameInCategory(ctx context.Context, categoryID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&catalog.Subcategory{}).
		Where("category_id = ? AND LOWER(name) = LOWER(?)", categoryID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a subcategory
func (r *GormSubcategoryRepository) Save(ctx context.Context, subcategory *catalog.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

// CountProducts counts the products classified under the subcategory
func (r *GormSubcategoryRepository) CountProducts(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("subcategory_id = ?", subcategoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindProducts lists the products classified under the subcategory
func (r *GormSubcategoryRepository) FindProducts(ctx context.Context, subcategoryID uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("subcategory_id = ?", subcategoryID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes the bare subcategory row
func (r *GormSubcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Subcategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the subcategory, its products, and its association
// rows in one transaction. Returns the number of products removed.
func (r *GormSubcategoryRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var removed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := tx.Where("subcategory_id = ?", id).Delete(&catalog.Product{})
		if products.Error != nil {
			return products.Error
		}
		removed = products.RowsAffected

		if err := tx.Where("subcategory_id = ?", id).Delete(&catalog.CategorySubcategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&catalog.Subcategory{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// MigrateProducts reassigns every product from one subcategory to another
// and returns the number moved
func (r *GormSubcategoryRepository) MigrateProducts(ctx context.Context, fromID, toID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("subcategory_id = ?", fromID).
		Update("subcategory_id", toID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// applyFilter applies filter options to the query
func (r *GormSubcategoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CategorySortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSubcategoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "verified":
			query = query.Where("verified = ?", value)
		}
	}

	return query
}

// Ensure GormSubcategoryRepository implements SubcategoryRepository
var _ catalog.SubcategoryRepository = (*GormSubcategoryRepository)(nil)
