package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
)

// MembershipService handles participants and join requests
type MembershipService struct {
	participantRepo organization.ParticipantRepository
	joinRepo        organization.JoinRequestRepository
	orgRepo         organization.Repository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(
	participantRepo organization.ParticipantRepository,
	joinRepo organization.JoinRequestRepository,
	orgRepo organization.Repository,
) *MembershipService {
	return &MembershipService{
		participantRepo: participantRepo,
		joinRepo:        joinRepo,
		orgRepo:         orgRepo,
	}
}

// ListParticipants retrieves the members of an organization
func (s *MembershipService) ListParticipants(ctx context.Context, orgID uuid.UUID) ([]ParticipantResponse, error) {
	participants, err := s.participantRepo.FindByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return ToParticipantResponses(participants), nil
}

// RemoveParticipant removes a member from an organization. The manager's
// row cannot be removed; management has to be transferred first.
func (s *MembershipService) RemoveParticipant(ctx context.Context, id uuid.UUID) error {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !participant.CanBeRemoved() {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove the managing participant")
	}
	return s.participantRepo.Delete(ctx, id)
}

// RemoveParticipantByUserAndOrg removes a member addressed by user and
// organization instead of the participant row id. The same manager
// guard applies.
func (s *MembershipService) RemoveParticipantByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) error {
	participant, err := s.participantRepo.FindByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return err
	}
	if !participant.CanBeRemoved() {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove the managing participant")
	}
	return s.participantRepo.Delete(ctx, participant.ID)
}

// StepDown clears a participant's manager flag without removing the
// membership. The user's global manager flag is synced in the same
// transaction.
func (s *MembershipService) StepDown(ctx context.Context, id uuid.UUID) error {
	participant, err := s.participantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if derr := participant.Demote(); derr != nil {
		return derr
	}
	return s.participantRepo.DemoteAndSyncUser(ctx, participant)
}

// RequestJoin files a membership request. A user with a pending request
// or an existing membership cannot file another.
func (s *MembershipService) RequestJoin(ctx context.Context, orgID uuid.UUID, req CreateJoinRequest) (*JoinRequestResponse, error) {
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	member, err := s.participantRepo.ExistsByUserAndOrg(ctx, req.UserID, orgID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User is already a participant")
	}

	pending, err := s.joinRepo.HasPending(ctx, req.UserID, orgID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A pending join request already exists")
	}

	request, derr := organization.NewJoinRequest(orgID, req.UserID, req.Message)
	if derr != nil {
		return nil, derr
	}
	if err := s.joinRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	return ToJoinRequestResponse(request), nil
}

// ListJoinRequestsByOrg retrieves the join requests of an organization
func (s *MembershipService) ListJoinRequestsByOrg(ctx context.Context, orgID uuid.UUID) ([]JoinRequestResponse, error) {
	requests, err := s.joinRepo.FindByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return ToJoinRequestResponses(requests), nil
}

// ListJoinRequestsByUser retrieves the join requests filed by a user
func (s *MembershipService) ListJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]JoinRequestResponse, error) {
	requests, err := s.joinRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToJoinRequestResponses(requests), nil
}

// ApproveJoin approves a pending join request. The participant row is
// created in the same transaction.
func (s *MembershipService) ApproveJoin(ctx context.Context, id uuid.UUID, req RespondJoinRequest) (*JoinRequestResponse, error) {
	request, err := s.joinRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if derr := request.Approve(req.ResponseMessage); derr != nil {
		return nil, derr
	}
	if err := s.joinRepo.ApplyApproval(ctx, request); err != nil {
		return nil, err
	}
	return ToJoinRequestResponse(request), nil
}

// RejectJoin declines a pending join request
func (s *MembershipService) RejectJoin(ctx context.Context, id uuid.UUID, req RespondJoinRequest) (*JoinRequestResponse, error) {
	request, err := s.joinRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if derr := request.Reject(req.ResponseMessage); derr != nil {
		return nil, derr
	}
	if err := s.joinRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	return ToJoinRequestResponse(request), nil
}
