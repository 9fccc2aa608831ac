package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a seller", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", ctx, "ana@example.com", uuid.Nil).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := NewUserService(repo)
		resp, err := svc.Create(ctx, CreateUserRequest{
			Name:  "Ana",
			Email: "ana@example.com",
			Role:  "seller",
		})

		require.NoError(t, err)
		assert.Equal(t, "seller", resp.Role)
		assert.False(t, resp.IsManager)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", ctx, "ana@example.com", uuid.Nil).Return(true, nil)

		svc := NewUserService(repo)
		_, err := svc.Create(ctx, CreateUserRequest{
			Name:  "Ana",
			Email: "ana@example.com",
			Role:  "seller",
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", ctx, "not-an-email", uuid.Nil).Return(false, nil)

		svc := NewUserService(repo)
		_, err := svc.Create(ctx, CreateUserRequest{
			Name:  "Ana",
			Email: "not-an-email",
			Role:  "customer",
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()
	user, _ := identity.NewUser("Ana", "ana@example.com", identity.RoleCustomer)

	repo := new(mockUserRepo)
	repo.On("FindByID", ctx, user.ID).Return(user, nil)
	repo.On("Save", ctx, user).Return(nil)

	svc := NewUserService(repo)
	resp, err := svc.Update(ctx, user.ID, UpdateUserRequest{Name: "Ana B", Role: "seller"})

	require.NoError(t, err)
	assert.Equal(t, "Ana B", resp.Name)
	assert.Equal(t, "seller", resp.Role)
}
