// Package organization implements the application services for
// community organizations, memberships, and their request workflows.
package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Service handles organization lifecycle operations
type Service struct {
	orgRepo         organization.Repository
	participantRepo organization.ParticipantRepository
	userRepo        identity.UserRepository
	publisher       shared.EventPublisher
}

// NewService creates a new organization Service
func NewService(
	orgRepo organization.Repository,
	participantRepo organization.ParticipantRepository,
	userRepo identity.UserRepository,
	publisher shared.EventPublisher,
) *Service {
	return &Service{
		orgRepo:         orgRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		publisher:       publisher,
	}
}

// Create founds a new organization. The founding user is enrolled as
// its managed participant in the same transaction.
func (s *Service) Create(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.ManagerID); err != nil {
		return nil, err
	}

	exists, err := s.orgRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Organization with this name already exists")
	}

	org, derr := organization.NewOrganization(req.Name, req.Description, req.Scope, req.ManagerID)
	if derr != nil {
		return nil, derr
	}
	founder, derr := organization.NewParticipant(org.ID, req.ManagerID, true)
	if derr != nil {
		return nil, derr
	}

	if err := s.orgRepo.CreateWithFounder(ctx, org, founder); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, org.GetDomainEvents()...)
	}
	org.ClearDomainEvents()
	return ToOrganizationResponse(org), nil
}

// List retrieves organizations with pagination
func (s *Service) List(ctx context.Context, filter shared.Filter) ([]OrganizationResponse, int64, error) {
	orgs, err := s.orgRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orgRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToOrganizationResponses(orgs), total, nil
}

// ListByParticipant retrieves the organizations a user belongs to
func (s *Service) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.orgRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToOrganizationResponses(orgs), nil
}

// GetByID retrieves an organization by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrganizationResponse(org), nil
}

// Update changes an organization's attributes
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != org.Name {
		exists, err := s.orgRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Organization with this name already exists")
		}
	}

	if derr := org.Update(req.Name, req.Description, req.Scope); derr != nil {
		return nil, derr
	}

	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, err
	}
	return ToOrganizationResponse(org), nil
}

// Approve marks an organization as administrator-reviewed
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if derr := org.Approve(); derr != nil {
		return derr
	}
	return s.orgRepo.Save(ctx, org)
}

// Delete dissolves an organization. Blocked while other participants
// remain; the manager must be the last one out.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orgRepo.FindByID(ctx, id); err != nil {
		return err
	}

	participants, err := s.participantRepo.CountByOrg(ctx, id)
	if err != nil {
		return err
	}
	if participants > 1 {
		return shared.NewDomainError("IN_USE", "Organization still has participants").
			WithDetails(map[string]interface{}{"participants": participants})
	}

	return s.orgRepo.DeleteCascade(ctx, id)
}
