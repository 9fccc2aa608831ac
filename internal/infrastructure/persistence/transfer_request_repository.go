package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransferRequestRepository implements TransferRequestRepository using GORM
type GormTransferRequestRepository struct {
	db *gorm.DB
}

// NewGormTransferRequestRepository creates a new GormTransferRequestRepository
func NewGormTransferRequestRepository(db *gorm.DB) *GormTransferRequestRepository {
	return &GormTransferRequestRepository{db: db}
}

// FindByID finds a transfer request by its ID
func (r *GormTransferRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.TransferRequest, error) {
	var request organization.TransferRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindByOrg lists the transfer requests of an organization, newest first
func (r *GormTransferRequestRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.TransferRequest, error) {
	var requests []organization.TransferRequest
	if err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByRecipient lists the transfer requests addressed to a user, newest first
func (r *GormTransferRequestRepository) FindByRecipient(ctx context.Context, userID uuid.UUID) ([]organization.TransferRequest, error) {
	var requests []organization.TransferRequest
	if err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindPendingByOrg finds the organization's open transfer request, if any
func (r *GormTransferRequestRepository) FindPendingByOrg(ctx context.Context, orgID uuid.UUID) (*organization.TransferRequest, error) {
	var request organization.TransferRequest
	if err := r.db.WithContext(ctx).
		Where("org_id = ? AND status = ?", orgID, organization.TransferStatusPending).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// Save creates or updates a transfer request
func (r *GormTransferRequestRepository) Save(ctx context.Context, request *organization.TransferRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// ApplyAcceptance persists an accepted request and the management handover
// it implies in one transaction: the sender's participant row is demoted,
// the recipient's row is promoted or created, both users' manager flags are
// synced, and the organization's manager is updated
func (r *GormTransferRequestRepository) ApplyAcceptance(ctx context.Context, request *organization.TransferRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(request).Error; err != nil {
			return err
		}

		if err := tx.Model(&organization.Participant{}).
			Where("org_id = ? AND user_id = ?", request.OrgID, request.FromUserID).
			Update("managed", false).Error; err != nil {
			return err
		}

		var recipient organization.Participant
		err := tx.Where("org_id = ? AND user_id = ?", request.OrgID, request.ToUserID).
			First(&recipient).Error
		switch {
		case err == nil:
			if err := tx.Model(&recipient).Update("managed", true).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			participant, derr := organization.NewParticipant(request.OrgID, request.ToUserID, true)
			if derr != nil {
				return derr
			}
			if err := tx.Create(participant).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := tx.Model(&organization.Organization{}).
			Where("id = ?", request.OrgID).
			Update("manager_id", request.ToUserID).Error; err != nil {
			return err
		}

		if err := syncManagerFlag(tx, request.FromUserID); err != nil {
			return err
		}
		return syncManagerFlag(tx, request.ToUserID)
	})
}

// Ensure GormTransferRequestRepository implements TransferRequestRepository
var _ organization.TransferRequestRepository = (*GormTransferRequestRepository)(nil)
