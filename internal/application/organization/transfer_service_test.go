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

func TestTransferServiceCreate(t *testing.T) {
	ctx := context.Background()
	manager := uuid.New()
	recipient := uuid.New()

	org, _ := organization.NewOrganization("Farmers Guild", "", "", manager)
	org.ClearDomainEvents()

	t.Run("manager files a pending request", func(t *testing.T) {
		managerRow, _ := organization.NewParticipant(org.ID, manager, true)
		user, _ := identity.NewUser("Rey", "rey@example.com", identity.RoleCustomer)

		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, manager, org.ID).Return(managerRow, nil)
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, recipient).Return(user, nil)
		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindPendingByOrg", ctx, org.ID).Return(nil, shared.ErrNotFound)
		transferRepo.On("Save", ctx, mock.AnythingOfType("*organization.TransferRequest")).Return(nil)

		svc := NewTransferService(transferRepo, participantRepo, orgRepo, userRepo, nil)
		resp, err := svc.Create(ctx, org.ID, CreateTransferRequest{
			FromUserID: manager,
			ToUserID:   recipient,
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		transferRepo.AssertExpectations(t)
	})

	t.Run("non-manager cannot file", func(t *testing.T) {
		plainRow, _ := organization.NewParticipant(org.ID, manager, false)

		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, manager, org.ID).Return(plainRow, nil)
		transferRepo := new(mockTransferRepo)

		svc := NewTransferService(transferRepo, participantRepo, orgRepo, new(mockUserRepo), nil)
		_, err := svc.Create(ctx, org.ID, CreateTransferRequest{
			FromUserID: manager,
			ToUserID:   recipient,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "FORBIDDEN", derr.Code)
		transferRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("second pending request rejected", func(t *testing.T) {
		managerRow, _ := organization.NewParticipant(org.ID, manager, true)
		user, _ := identity.NewUser("Rey", "rey@example.com", identity.RoleCustomer)
		existing, _ := organization.NewTransferRequest(org.ID, manager, recipient, "")

		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, manager, org.ID).Return(managerRow, nil)
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, recipient).Return(user, nil)
		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindPendingByOrg", ctx, org.ID).Return(existing, nil)

		svc := NewTransferService(transferRepo, participantRepo, orgRepo, userRepo, nil)
		_, err := svc.Create(ctx, org.ID, CreateTransferRequest{
			FromUserID: manager,
			ToUserID:   recipient,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		transferRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		managerRow, _ := organization.NewParticipant(org.ID, manager, true)
		user, _ := identity.NewUser("Ana", "ana@example.com", identity.RoleCustomer)

		orgRepo := new(mockOrgRepo)
		orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
		participantRepo := new(mockParticipantRepo)
		participantRepo.On("FindByUserAndOrg", ctx, manager, org.ID).Return(managerRow, nil)
		userRepo := new(mockUserRepo)
		userRepo.On("FindByID", ctx, manager).Return(user, nil)
		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindPendingByOrg", ctx, org.ID).Return(nil, shared.ErrNotFound)

		svc := NewTransferService(transferRepo, participantRepo, orgRepo, userRepo, nil)
		_, err := svc.Create(ctx, org.ID, CreateTransferRequest{
			FromUserID: manager,
			ToUserID:   manager,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})
}

func TestTransferServiceResponses(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	manager := uuid.New()
	recipient := uuid.New()

	t.Run("accept applies the handover transactionally", func(t *testing.T) {
		request, _ := organization.NewTransferRequest(orgID, manager, recipient, "take over?")
		request.ClearDomainEvents()

		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		transferRepo.On("ApplyAcceptance", ctx, request).Return(nil)

		svc := NewTransferService(transferRepo, new(mockParticipantRepo), new(mockOrgRepo), new(mockUserRepo), nil)
		resp, err := svc.Accept(ctx, request.ID, RespondTransferRequest{ResponseMessage: "gladly"})

		require.NoError(t, err)
		assert.Equal(t, "accepted", resp.Status)
		assert.Equal(t, "gladly", resp.ResponseMessage)
		transferRepo.AssertExpectations(t)
		transferRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("accepted request cannot be cancelled", func(t *testing.T) {
		request, _ := organization.NewTransferRequest(orgID, manager, recipient, "")
		require.Nil(t, request.Accept(""))

		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindByID", ctx, request.ID).Return(request, nil)

		svc := NewTransferService(transferRepo, new(mockParticipantRepo), new(mockOrgRepo), new(mockUserRepo), nil)
		_, err := svc.Cancel(ctx, request.ID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_STATE", derr.Code)
		assert.Contains(t, derr.Message, "accepted")
	})

	t.Run("reject persists without handover", func(t *testing.T) {
		request, _ := organization.NewTransferRequest(orgID, manager, recipient, "")

		transferRepo := new(mockTransferRepo)
		transferRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		transferRepo.On("Save", ctx, request).Return(nil)

		svc := NewTransferService(transferRepo, new(mockParticipantRepo), new(mockOrgRepo), new(mockUserRepo), nil)
		resp, err := svc.Reject(ctx, request.ID, RespondTransferRequest{ResponseMessage: "no thanks"})

		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
		transferRepo.AssertNotCalled(t, "ApplyAcceptance", mock.Anything, mock.Anything)
	})
}
