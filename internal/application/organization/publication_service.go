package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
)

// PublicationService handles organization announcements
type PublicationService struct {
	publicationRepo organization.PublicationRepository
	orgRepo         organization.Repository
}

// NewPublicationService creates a new PublicationService
func NewPublicationService(publicationRepo organization.PublicationRepository, orgRepo organization.Repository) *PublicationService {
	return &PublicationService{
		publicationRepo: publicationRepo,
		orgRepo:         orgRepo,
	}
}

// Create posts an announcement for an approved organization
func (s *PublicationService) Create(ctx context.Context, orgID uuid.UUID, req CreatePublicationRequest) (*PublicationResponse, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !org.Approved {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Organization is not approved yet")
	}

	publication, derr := organization.NewPublication(orgID, req.Title, req.Body)
	if derr != nil {
		return nil, derr
	}
	if err := s.publicationRepo.Save(ctx, publication); err != nil {
		return nil, err
	}
	return ToPublicationResponse(publication), nil
}

// List retrieves announcements across organizations
func (s *PublicationService) List(ctx context.Context, filter shared.Filter) ([]PublicationResponse, error) {
	publications, err := s.publicationRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPublicationResponses(publications), nil
}

// ListByOrg retrieves the announcements of one organization
func (s *PublicationService) ListByOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]PublicationResponse, error) {
	publications, err := s.publicationRepo.FindByOrg(ctx, orgID, filter)
	if err != nil {
		return nil, err
	}
	return ToPublicationResponses(publications), nil
}

// GetByID retrieves an announcement by ID
func (s *PublicationService) GetByID(ctx context.Context, id uuid.UUID) (*PublicationResponse, error) {
	publication, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPublicationResponse(publication), nil
}

// Update edits an announcement
func (s *PublicationService) Update(ctx context.Context, id uuid.UUID, req UpdatePublicationRequest) (*PublicationResponse, error) {
	publication, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if derr := publication.Update(req.Title, req.Body); derr != nil {
		return nil, derr
	}
	if err := s.publicationRepo.Save(ctx, publication); err != nil {
		return nil, err
	}
	return ToPublicationResponse(publication), nil
}

// Delete removes an announcement
func (s *PublicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.publicationRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.publicationRepo.Delete(ctx, id)
}
