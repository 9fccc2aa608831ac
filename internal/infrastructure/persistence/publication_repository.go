package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPublicationRepository implements PublicationRepository using GORM
type GormPublicationRepository struct {
	db *gorm.DB
}

// NewGormPublicationRepository creates a new GormPublicationRepository
func NewGormPublicationRepository(db *gorm.DB) *GormPublicationRepository {
	return &GormPublicationRepository{db: db}
}

// FindByID finds a publication by its ID
func (r *GormPublicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Publication, error) {
	var publication organization.Publication
	if err := r.db.WithContext(ctx).First(&publication, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &publication, nil
}

// FindByOrg finds the publications of an organization matching the filter
func (r *GormPublicationRepository) FindByOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]organization.Publication, error) {
	var publications []organization.Publication
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&organization.Publication{}).Where("org_id = ?", orgID), filter)

	if err := query.Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

// FindAll finds all publications matching the filter
func (r *GormPublicationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]organization.Publication, error) {
	var publications []organization.Publication
	query := r.applyFilter(r.db.WithContext(ctx).Model(&organization.Publication{}), filter)

	if err := query.Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

// Save creates or updates a publication
func (r *GormPublicationRepository) Save(ctx context.Context, publication *organization.Publication) error {
	return r.db.WithContext(ctx).Save(publication).Error
}

// Delete removes a publication
func (r *GormPublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&organization.Publication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetImagePath records the stored image location of a publication
func (r *GormPublicationRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	result := r.db.WithContext(ctx).
		Model(&organization.Publication{}).
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
func (r *GormPublicationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR body ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "org_id":
			query = query.Where("org_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// Ensure GormPublicationRepository implements PublicationRepository
var _ organization.PublicationRepository = (*GormPublicationRepository)(nil)
