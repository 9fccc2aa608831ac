package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"gorm.io/gorm"
)

// GormShopSubtypeRepository implements ShopSubtypeRepository using GORM
type GormShopSubtypeRepository struct {
	db *gorm.DB
}

// NewGormShopSubtypeRepository creates a new GormShopSubtypeRepository
func NewGormShopSubtypeRepository(db *gorm.DB) *GormShopSubtypeRepository {
	return &GormShopSubtypeRepository{db: db}
}

// FindByID finds a subtype by its ID
func (r *GormShopSubtypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopSubtype, error) {
	var subtype taxonomy.ShopSubtype
	if err := r.db.WithContext(ctx).First(&subtype, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &subtype, nil
}

// FindByType finds the subtypes under a type, optionally only active ones
func (r *GormShopSubtypeRepository) FindByType(ctx context.Context, typeID uuid.UUID, onlyActive bool) ([]taxonomy.ShopSubtype, error) {
	var subtypes []taxonomy.ShopSubtype
	query := r.db.WithContext(ctx).Where("type_id = ?", typeID)
	if onlyActive {
		query = query.Where("status = ?", taxonomy.ShopTypeStatusActive)
	}
	if err := query.Order("sort_order ASC, name ASC").Find(&subtypes).Error; err != nil {
		return nil, err
	}
	return subtypes, nil
}

// FindActive finds all active subtypes across types
func (r *GormShopSubtypeRepository) FindActive(ctx context.Context) ([]taxonomy.ShopSubtype, error) {
	var subtypes []taxonomy.ShopSubtype
	if err := r.db.WithContext(ctx).
		Where("status = ?", taxonomy.ShopTypeStatusActive).
		Order("sort_order ASC, name ASC").
		Find(&subtypes).Error; err != nil {
		return nil, err
	}
	return subtypes, nil
}

// ExistsByNameInType checks whether another subtype of the type uses the name
func (r *GormShopSubtypeRepository) ExistsByNameInType(ctx context.Context, typeID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&taxonomy.ShopSubtype{}).
		Where("type_id = ? AND LOWER(name) = LOWER(?)", typeID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a subtype
func (r *GormShopSubtypeRepository) Save(ctx context.Context, subtype *taxonomy.ShopSubtype) error {
	return r.db.WithContext(ctx).Save(subtype).Error
}

// Ensure GormShopSubtypeRepository implements ShopSubtypeRepository
var _ taxonomy.ShopSubtypeRepository = (*GormShopSubtypeRepository)(nil)
