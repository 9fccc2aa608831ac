package organization

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizationServiceCreate(t *testing.T) {
	ctx := context.Background()
	founderUser, _ := identity.NewUser("Dana Fields", "dana@example.com", identity.RoleCustomer)
	founder := founderUser.ID

	t.Run("founder is enrolled as managed participant", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, founder).Return(founderUser, nil)
		orgRepo := new(mockOrgRepo)
		orgRepo.On("ExistsByName", ctx, "Farmers Guild", uuid.Nil).Return(false, nil)
		orgRepo.On("CreateWithFounder", ctx,
			mock.AnythingOfType("*organization.Organization"),
			mock.MatchedBy(func(p *organization.Participant) bool {
				return p.UserID == founder && p.Managed
			})).Return(nil)

		svc := NewService(orgRepo, new(mockParticipantRepo), userRepo, nil)
		resp, err := svc.Create(ctx, CreateOrganizationRequest{
			Name:      "Farmers Guild",
			ManagerID: founder,
		})

		require.NoError(t, err)
		assert.Equal(t, founder, resp.ManagerID)
		assert.False(t, resp.Approved)
		orgRepo.AssertExpectations(t)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, founder).Return(founderUser, nil)
		orgRepo := new(mockOrgRepo)
		orgRepo.On("ExistsByName", ctx, "Farmers Guild", uuid.Nil).Return(true, nil)

		svc := NewService(orgRepo, new(mockParticipantRepo), userRepo, nil)
		_, err := svc.Create(ctx, CreateOrganizationRequest{
			Name:      "Farmers Guild",
			ManagerID: founder,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		orgRepo.AssertNotCalled(t, "CreateWithFounder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown manager rejected", func(t *testing.T) {
		stranger := uuid.New()
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, stranger).Return(nil, shared.ErrNotFound)
		orgRepo := new(mockOrgRepo)

		svc := NewService(orgRepo, new(mockParticipantRepo), userRepo, nil)
		_, err := svc.Create(ctx, CreateOrganizationRequest{
			Name:      "Farmers Guild",
			ManagerID: stranger,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		orgRepo.AssertNotCalled(t, "CreateWithFounder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrganizationServiceDelete(t *testing.T) {
	ctx := context.Background()
	org, _ := organization.NewOrganization("Farmers Guild", "", "", uuid.New())
	org.ClearDomainEvents()

	t.Run("blocked while other participants remain", func(t *testing.T) {
		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("CountByOrg", ctx, org.ID).Return(int64(3), nil)

		svc := NewService(orgRepo, participantRepo, new(mockUserRepo), nil)
		err := svc.Delete(ctx, org.ID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "IN_USE", derr.Code)
		assert.EqualValues(t, int64(3), derr.Details["participants"])
		orgRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})

	t.Run("manager alone can dissolve", func(t *testing.T) {
		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("CountByOrg", ctx, org.ID).Return(int64(1), nil)
		orgRepo.On("DeleteCascade", ctx, org.ID).Return(nil)

		svc := NewService(orgRepo, participantRepo, new(mockUserRepo), nil)
		require.NoError(t, svc.Delete(ctx, org.ID))
		orgRepo.AssertExpectations(t)
	})
}

func TestMembershipServiceParticipants(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("managed participant cannot be removed", func(t *testing.T) {
		managerRow, _ := organization.NewParticipant(orgID, uuid.New(), true)

		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByID", ctx, managerRow.ID).Return(managerRow, nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), new(mockOrgRepo))
		err := svc.RemoveParticipant(ctx, managerRow.ID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_STATE", derr.Code)
		participantRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("plain participant removed", func(t *testing.T) {
		row, _ := organization.NewParticipant(orgID, uuid.New(), false)

		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByID", ctx, row.ID).Return(row, nil)
		participantRepo.On("Delete", ctx, row.ID).Return(nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), new(mockOrgRepo))
		require.NoError(t, svc.RemoveParticipant(ctx, row.ID))
		participantRepo.AssertExpectations(t)
	})

	t.Run("managed participant cannot be removed by user and org", func(t *testing.T) {
		managerID := uuid.New()
		managerRow, _ := organization.NewParticipant(orgID, managerID, true)

		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, managerID, orgID).Return(managerRow, nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), new(mockOrgRepo))
		err := svc.RemoveParticipantByUserAndOrg(ctx, managerID, orgID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_STATE", derr.Code)
		participantRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("plain participant removed by user and org", func(t *testing.T) {
		userID := uuid.New()
		row, _ := organization.NewParticipant(orgID, userID, false)

		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, userID, orgID).Return(row, nil)
		participantRepo.On("Delete", ctx, row.ID).Return(nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), new(mockOrgRepo))
		require.NoError(t, svc.RemoveParticipantByUserAndOrg(ctx, userID, orgID))
		participantRepo.AssertExpectations(t)
	})

	t.Run("step down demotes and syncs the user", func(t *testing.T) {
		managerRow, _ := organization.NewParticipant(orgID, uuid.New(), true)

		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByID", ctx, managerRow.ID).Return(managerRow, nil)
		participantRepo.On("DemoteAndSyncUser", ctx, managerRow).Return(nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), new(mockOrgRepo))
		require.NoError(t, svc.StepDown(ctx, managerRow.ID))
		assert.False(t, managerRow.Managed)
		participantRepo.AssertExpectations(t)
	})
}

func TestMembershipServiceJoinRequests(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	org, _ := organization.NewOrganization("Farmers Guild", "", "", uuid.New())
	org.ClearDomainEvents()

	t.Run("existing member cannot request", func(t *testing.T) {
		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("ExistsByUserAndOrg", ctx, userID, org.ID).Return(true, nil)

		svc := NewMembershipService(participantRepo, new(mockJoinRepo), orgRepo)
		_, err := svc.RequestJoin(ctx, org.ID, CreateJoinRequest{UserID: userID})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
	})

	t.Run("duplicate pending request rejected", func(t *testing.T) {
		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("ExistsByUserAndOrg", ctx, userID, org.ID).Return(false, nil)
		joinRepo := new(mockJoinRepo)
		joinRepo.On("HasPending", ctx, userID, org.ID).Return(true, nil)

		svc := NewMembershipService(participantRepo, joinRepo, orgRepo)
		_, err := svc.RequestJoin(ctx, org.ID, CreateJoinRequest{UserID: userID})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		joinRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("approval enrolls transactionally", func(t *testing.T) {
		request, _ := organization.NewJoinRequest(org.ID, userID, "let me in")

		joinRepo := new(mockJoinRepo)
		joinRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		joinRepo.On("ApplyApproval", ctx, request).Return(nil)

		svc := NewMembershipService(new(mockParticipantRepo), joinRepo, new(mockOrgRepo))
		resp, err := svc.ApproveJoin(ctx, request.ID, RespondJoinRequest{ResponseMessage: "welcome"})

		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		joinRepo.AssertExpectations(t)
	})

	t.Run("rejected request cannot be approved again", func(t *testing.T) {
		request, _ := organization.NewJoinRequest(org.ID, userID, "")
		require.Nil(t, request.Reject("no"))

		joinRepo := new(mockJoinRepo)
		joinRepo.On("FindByID", ctx, request.ID).Return(request, nil)

		svc := NewMembershipService(new(mockParticipantRepo), joinRepo, new(mockOrgRepo))
		_, err := svc.ApproveJoin(ctx, request.ID, RespondJoinRequest{})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_STATE", derr.Code)
		assert.Contains(t, derr.Message, "rejected")
		joinRepo.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything)
	})
}
