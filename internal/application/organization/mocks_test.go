package organization

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

type mockOrgRepo struct {
	mock.Mock
}

func (m *mockOrgRepo) FindByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *mockOrgRepo) FindAll(ctx context.Context, filter shared.Filter) ([]organization.Organization, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]organization.Organization), args.Error(1)
}

func (m *mockOrgRepo) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]organization.Organization, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]organization.Organization), args.Error(1)
}

func (m *mockOrgRepo) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrgRepo) Save(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *mockOrgRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrgRepo) CreateWithFounder(ctx context.Context, org *organization.Organization, founder *organization.Participant) error {
	args := m.Called(ctx, org, founder)
	return args.Error(0)
}

func (m *mockOrgRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrgRepo) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

type mockParticipantRepo struct {
	mock.Mock
}

func (m *mockParticipantRepo) FindByID(ctx context.Context, id uuid.UUID) (*organization.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Participant), args.Error(1)
}

func (m *mockParticipantRepo) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.Participant, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]organization.Participant), args.Error(1)
}

func (m *mockParticipantRepo) FindByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (*organization.Participant, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Participant), args.Error(1)
}

func (m *mockParticipantRepo) ExistsByUserAndOrg(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, orgID)
	return args.Bool(0), args.Error(1)
}

func (m *mockParticipantRepo) Save(ctx context.Context, participant *organization.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockParticipantRepo) CountByOrg(ctx context.Context, orgID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParticipantRepo) CountManagedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockParticipantRepo) DemoteAndSyncUser(ctx context.Context, participant *organization.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

type mockTransferRepo struct {
	mock.Mock
}

func (m *mockTransferRepo) FindByID(ctx context.Context, id uuid.UUID) (*organization.TransferRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.TransferRequest), args.Error(1)
}

func (m *mockTransferRepo) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.TransferRequest, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]organization.TransferRequest), args.Error(1)
}

func (m *mockTransferRepo) FindByRecipient(ctx context.Context, userID uuid.UUID) ([]organization.TransferRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]organization.TransferRequest), args.Error(1)
}

func (m *mockTransferRepo) FindPendingByOrg(ctx context.Context, orgID uuid.UUID) (*organization.TransferRequest, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.TransferRequest), args.Error(1)
}

func (m *mockTransferRepo) Save(ctx context.Context, request *organization.TransferRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockTransferRepo) ApplyAcceptance(ctx context.Context, request *organization.TransferRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type mockJoinRepo struct {
	mock.Mock
}

func (m *mockJoinRepo) FindByID(ctx context.Context, id uuid.UUID) (*organization.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.JoinRequest), args.Error(1)
}

func (m *mockJoinRepo) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]organization.JoinRequest, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]organization.JoinRequest), args.Error(1)
}

func (m *mockJoinRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]organization.JoinRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]organization.JoinRequest), args.Error(1)
}

func (m *mockJoinRepo) HasPending(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, orgID)
	return args.Bool(0), args.Error(1)
}

func (m *mockJoinRepo) Save(ctx context.Context, request *organization.JoinRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockJoinRepo) ApplyApproval(ctx context.Context, request *organization.JoinRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
