package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormJoinRequestRepository implements JoinRequestRepository using GORM
type GormJoinRequestRepository struct {
	db *gorm.DB
}

// NewGormJoinRequestRepository creates a new GormJoinRequestRepository
func NewGormJoinRequestRepository(db *gorm.DB) *GormJoinRequestRepository {
	return &GormJoinRequestRepository{db: db}
}

// FindByID finds a join request by its ID
func (r *GormJoinRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.JoinRequest, error) {
	var request organization.JoinRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindByOrg lists the join requests of an organization, newest first
func (r *GormJoinRequestRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.JoinRequest, error) {
	var requests []organization.JoinRequest
	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByUser lists the join requests a user has filed, newest first
func (r *GormJoinRequestRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]organization.JoinRequest, error) {
	var requests []organization.JoinRequest
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// HasPending checks whether the user already has an open request for the organization
func (r *GormJoinRequestRepository) HasPending(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&organization.JoinRequest{}).
		Where("user_id = ? AND org_id = ? AND status = ?", userID, orgID, organization.JoinStatusPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a join request
func (r *GormJoinRequestRepository) Save(ctx context.Context, request *organization.JoinRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// ApplyApproval persists an approved request and creates the non-manager
// participant row in one transaction
func (r *GormJoinRequestRepository) ApplyApproval(ctx context.Context, request *organization.JoinRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		participant, derr := organization.NewParticipant(request.OrgID, request.UserID, false)
		if derr != nil {
			return derr
		}
		return tx.Create(participant).Error
	})
}

// Ensure GormJoinRequestRepository implements JoinRequestRepository
var _ organization.JoinRequestRepository = (*GormJoinRequestRepository)(nil)
