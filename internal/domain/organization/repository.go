package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Repository defines persistence operations for organizations
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Organization, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]Organization, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, org *Organization) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// CreateWithFounder inserts the organization and its founding manager
	// participant, and raises the founder's manager flag, in one
	// transaction.
	CreateWithFounder(ctx context.Context, org *Organization, founder *Participant) error
	// DeleteCascade removes the organization together with its remaining
	// participants, requests, and publications in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}

// ParticipantRepository defines persistence operations for memberships
type ParticipantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Participant, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]Participant, error)
	FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*Participant, error)
	ExistsByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (bool, error)
	Save(ctx context.Context, participant *Participant) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountManagedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// DemoteAndSyncUser clears the participant's manager flag and, when the
	// user manages no other organization, lowers the user's manager flag in
	// the same transaction.
	DemoteAndSyncUser(ctx context.Context, participant *Participant) error
}

// TransferRequestRepository defines persistence operations for
// management transfer requests
type TransferRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransferRequest, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]TransferRequest, error)
	FindByRecipient(ctx context.Context, userID uuid.UUID) ([]TransferRequest, error)
	FindPendingByOrg(ctx context.Context, orgID uuid.UUID) (*TransferRequest, error)
	Save(ctx context.Context, request *TransferRequest) error
	// ApplyAcceptance persists an accepted request and the management
	// handover it implies in one transaction: the sender's participant row
	// is demoted, the recipient's row is promoted or created, both users'
	// manager flags are synced, and the organization's manager is updated.
	ApplyAcceptance(ctx context.Context, request *TransferRequest) error
}

// JoinRequestRepository defines persistence operations for membership requests
type JoinRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JoinRequest, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]JoinRequest, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]JoinRequest, error)
	HasPending(ctx context.Context, userID, orgID uuid.UUID) (bool, error)
	Save(ctx context.Context, request *JoinRequest) error
	// ApplyApproval persists an approved request and creates the
	// non-manager participant row in one transaction.
	ApplyApproval(ctx context.Context, request *JoinRequest) error
}

// PublicationRepository defines persistence operations for announcements
type PublicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Publication, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]Publication, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Publication, error)
	Save(ctx context.Context, publication *Publication) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}
