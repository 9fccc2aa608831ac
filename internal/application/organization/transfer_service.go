package organization

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
)

// TransferService handles management transfer requests
type TransferService struct {
	transferRepo    organization.TransferRequestRepository
	participantRepo organization.ParticipantRepository
	orgRepo         organization.Repository
	userRepo        identity.UserRepository
	publisher       shared.EventPublisher
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transferRepo organization.TransferRequestRepository,
	participantRepo organization.ParticipantRepository,
	orgRepo organization.Repository,
	userRepo identity.UserRepository,
	publisher shared.EventPublisher,
) *TransferService {
	return &TransferService{
		transferRepo:    transferRepo,
		participantRepo: participantRepo,
		orgRepo:         orgRepo,
		userRepo:        userRepo,
		publisher:       publisher,
	}
}

// Create files a management transfer request. Only the current manager
// may file one, and only one pending request per organization exists at
// a time.
func (s *TransferService) Create(ctx context.Context, orgID uuid.UUID, req CreateTransferRequest) (*TransferRequestResponse, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	sender, err := s.participantRepo.FindByUserAndOrg(ctx, req.FromUserID, orgID)
	if err != nil {
		return nil, err
	}
	if !sender.Managed {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the manager can transfer management")
	}

	if _, err := s.userRepo.FindByID(ctx, req.ToUserID); err != nil {
		return nil, err
	}

	pending, err := s.transferRepo.FindPendingByOrg(ctx, orgID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if pending != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A pending transfer request already exists")
	}

	request, derr := organization.NewTransferRequest(orgID, req.FromUserID, req.ToUserID, req.Message)
	if derr != nil {
		return nil, derr
	}

	if err := s.transferRepo.Save(ctx, request); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, request.GetDomainEvents()...)
	}
	request.ClearDomainEvents()
	return ToTransferRequestResponse(request), nil
}

// ListByOrg retrieves the transfer requests of an organization
func (s *TransferService) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]TransferRequestResponse, error) {
	requests, err := s.transferRepo.FindByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return ToTransferRequestResponses(requests), nil
}

// ListByRecipient retrieves the transfer requests addressed to a user
func (s *TransferService) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]TransferRequestResponse, error) {
	requests, err := s.transferRepo.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToTransferRequestResponses(requests), nil
}

// GetByID retrieves a transfer request by ID
func (s *TransferService) GetByID(ctx context.Context, id uuid.UUID) (*TransferRequestResponse, error) {
	request, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTransferRequestResponse(request), nil
}

// Accept hands management over. The request, both participant rows,
// both users' manager flags, and the organization's manager change in
// one transaction.
func (s *TransferService) Accept(ctx context.Context, id uuid.UUID, req RespondTransferRequest) (*TransferRequestResponse, error) {
	request, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if derr := request.Accept(req.ResponseMessage); derr != nil {
		return nil, derr
	}

	if err := s.transferRepo.ApplyAcceptance(ctx, request); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, request.GetDomainEvents()...)
	}
	request.ClearDomainEvents()
	return ToTransferRequestResponse(request), nil
}

// Reject declines a pending transfer request
func (s *TransferService) Reject(ctx context.Context, id uuid.UUID, req RespondTransferRequest) (*TransferRequestResponse, error) {
	request, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if derr := request.Reject(req.ResponseMessage); derr != nil {
		return nil, derr
	}
	if err := s.transferRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	return ToTransferRequestResponse(request), nil
}

// Cancel withdraws a pending transfer request
func (s *TransferService) Cancel(ctx context.Context, id uuid.UUID) (*TransferRequestResponse, error) {
	request, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if derr := request.Cancel(); derr != nil {
		return nil, derr
	}
	if err := s.transferRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	return ToTransferRequestResponse(request), nil
}
