package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements organization.Repository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by its ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	var org organization.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindAll finds all organizations matching the filter
func (r *GormOrganizationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]organization.Organization, error) {
	var orgs []organization.Organization
	query := r.applyFilter(r.db.WithContext(ctx).Model(&organization.Organization{}), filter)

	if err := query.Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// FindByParticipant finds the organizations a user participates in
func (r *GormOrganizationRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]organization.Organization, error) {
	var orgs []organization.Organization
	if err := r.db.WithContext(ctx).
		Model(&organization.Organization{}).
		Joins("JOIN participants ON participants.org_id = organizations.id").
		Where("participants.user_id = ?", userID).
		Order("organizations.name ASC").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// ExistsByName checks whether another organization already uses the name
func (r *GormOrganizationRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&organization.Organization{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// Count counts organizations matching the filter
func (r *GormOrganizationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&organization.Organization{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateWithFounder inserts the organization and its founding manager
// participant, and raises the founder's manager flag, in one transaction
func (r *GormOrganizationRepository) CreateWithFounder(ctx context.Context, org *organization.Organization, founder *organization.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		if err := tx.Create(founder).Error; err != nil {
			return err
		}
		return tx.Model(&identity.User{}).
			Where("id = ?", founder.UserID).
			Update("is_manager", true).Error
	})
}

// DeleteCascade removes the organization together with its remaining
// participants, requests, and publications in one transaction
func (r *GormOrganizationRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org organization.Organization
		if err := tx.First(&org, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("org_id = ?", id).Delete(&organization.Publication{}).Error; err != nil {
			return err
		}
		if err := tx.Where("org_id = ?", id).Delete(&organization.JoinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("org_id = ?", id).Delete(&organization.TransferRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("org_id = ?", id).Delete(&organization.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&organization.Organization{}, "id = ?", id).Error; err != nil {
			return err
		}

		// The dissolved organization no longer counts toward its
		// manager's flag.
		return syncManagerFlag(tx, org.ManagerID)
	})
}

// SetImagePath records the stored image location of an organization
func (r *GormOrganizationRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	result := r.db.WithContext(ctx).
		Model(&organization.Organization{}).
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

// syncManagerFlag recomputes a user's is_manager flag from the participant
// rows that still mark them as managing
func syncManagerFlag(tx *gorm.DB, userID uuid.UUID) error {
	var managed int64
	if err := tx.Model(&organization.Participant{}).
		Where("user_id = ? AND managed = ?", userID, true).
		Count(&managed).Error; err != nil {
		return err
	}
	return tx.Model(&identity.User{}).
		Where("id = ?", userID).
		Update("is_manager", managed > 0).Error
}

// applyFilter applies filter options to the query
func (r *GormOrganizationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, OrganizationSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrganizationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR scope ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "approved":
			query = query.Where("approved = ?", value)
		case "manager_id":
			query = query.Where("manager_id = ?", value)
		}
	}

	return query
}

// Ensure GormOrganizationRepository implements organization.Repository
var _ organization.Repository = (*GormOrganizationRepository)(nil)
