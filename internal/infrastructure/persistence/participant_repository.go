package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormParticipantRepository implements ParticipantRepository using GORM
type GormParticipantRepository struct {
	db *gorm.DB
}

// NewGormParticipantRepository creates a new GormParticipantRepository
func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	return &GormParticipantRepository{db: db}
}

// FindByID finds a participant by its ID
func (r *GormParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Participant, error) {
	var participant organization.Participant
	if err := r.db.WithContext(ctx).First(&participant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// FindByOrg lists the participants of an organization
func (r *GormParticipantRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.Participant, error) {
	var participants []organization.Participant
	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// FindByUserAndOrg finds a user's membership row in an organization
func (r *GormParticipantRepository) FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*organization.Participant, error) {
	var participant organization.Participant
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// ExistsByUserAndOrg checks whether the user already participates in the organization
func (r *GormParticipantRepository) ExistsByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&organization.Participant{}).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a participant
func (r *GormParticipantRepository) Save(ctx context.Context, participant *organization.Participant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}

// Delete removes a participant
func (r *GormParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&organization.Participant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByOrg counts the participants of an organization
func (r *GormParticipantRepository) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&organization.Participant{}).
		Where("org_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountManagedByUser counts the organizations a user manages
func (r *GormParticipantRepository) CountManagedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&organization.Participant{}).
		Where("user_id = ? AND managed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DemoteAndSyncUser clears the participant's manager flag and, when the user
// manages no other organization, lowers the user's manager flag in the same
// transaction
func (r *GormParticipantRepository) DemoteAndSyncUser(ctx context.Context, participant *organization.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(participant).Error; err != nil {
			return err
		}
		return syncManagerFlag(tx, participant.UserID)
	})
}

// Ensure GormParticipantRepository implements ParticipantRepository
var _ organization.ParticipantRepository = (*GormParticipantRepository)(nil)
