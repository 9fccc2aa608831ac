package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAssociationRepository implements AssociationRepository using GORM
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GormAssociationRepository
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

// FindTypeCategoryByID finds a type-category link by its ID
func (r *GormAssociationRepository) FindTypeCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.TypeCategory, error) {
	var link catalog.TypeCategory
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindTypeCategoriesByType lists the category links of a shop type
func (r *GormAssociationRepository) FindTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) ([]catalog.TypeCategory, error) {
	var links []catalog.TypeCategory
	if err := r.db.WithContext(ctx).
		Where("type_id = ?", typeID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// TypeCategoryExists checks whether the (type, category) pair is already linked
func (r *GormAssociationRepository) TypeCategoryExists(ctx context.Context, typeID, categoryID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.TypeCategory{}).
		Where("type_id = ? AND category_id = ?", typeID, categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveTypeCategory creates or updates a type-category link
func (r *GormAssociationRepository) SaveTypeCategory(ctx context.Context, link *catalog.TypeCategory) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// DeleteTypeCategory removes a type-category link
func (r *GormAssociationRepository) DeleteTypeCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.TypeCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteTypeCategoriesByType removes all category links of a shop type
func (r *GormAssociationRepository) DeleteTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("type_id = ?", typeID).Delete(&catalog.TypeCategory{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteTypeCategoriesByCategory removes all type links of a category
func (r *GormAssociationRepository) DeleteTypeCategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&catalog.TypeCategory{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindCategorySubcategoryByID finds a category-subcategory link by its ID
func (r *GormAssociationRepository) FindCategorySubcategoryByID(ctx context.Context, id uuid.UUID) (*catalog.CategorySubcategory, error) {
	var link catalog.CategorySubcategory
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindCategorySubcategoriesByCategory lists the subcategory links of a category
func (r *GormAssociationRepository) FindCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.CategorySubcategory, error) {
	var links []catalog.CategorySubcategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// CategorySubcategoryExists checks whether the (category, subcategory) pair is already linked
func (r *GormAssociationRepository) CategorySubcategoryExists(ctx context.Context, categoryID, subcategoryID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.CategorySubcategory{}).
		Where("category_id = ? AND subcategory_id = ?", categoryID, subcategoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveCategorySubcategory creates or updates a category-subcategory link
func (r *GormAssociationRepository) SaveCategorySubcategory(ctx context.Context, link *catalog.CategorySubcategory) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// DeleteCategorySubcategory removes a category-subcategory link
func (r *GormAssociationRepository) DeleteCategorySubcategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CategorySubcategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteCategorySubcategoriesByCategory removes all subcategory links of a category
func (r *GormAssociationRepository) DeleteCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&catalog.CategorySubcategory{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SaveCategorySubcategoryBatch links a category to several subcategories in
// one transaction, skipping pairs that already exist
func (r *GormAssociationRepository) SaveCategorySubcategoryBatch(ctx context.Context, categoryID uuid.UUID, subcategoryIDs []uuid.UUID) (catalog.BatchLinkResult, error) {
	var batch catalog.BatchLinkResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, subcategoryID := range subcategoryIDs {
			var count int64
			if err := tx.Model(&catalog.CategorySubcategory{}).
				Where("category_id = ? AND subcategory_id = ?", categoryID, subcategoryID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				batch.Skipped++
				continue
			}

			link, derr := catalog.NewCategorySubcategory(categoryID, subcategoryID)
			if derr != nil {
				return derr
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
			batch.Created++
		}
		return nil
	})
	if err != nil {
		return catalog.BatchLinkResult{}, err
	}
	return batch, nil
}

// Ensure GormAssociationRepository implements AssociationRepository
var _ catalog.AssociationRepository = (*GormAssociationRepository)(nil)
