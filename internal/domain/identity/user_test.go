package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		u, err := NewUser("Dana", " Dana@Example.COM ", RoleSeller)
		require.Nil(t, err)
		assert.Equal(t, "dana@example.com", u.Email)
		assert.True(t, u.CanOwnShop())
		assert.False(t, u.IsManager)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		u, err := NewUser("Dana", "not-an-email", RoleCustomer)
		require.NotNil(t, err)
		assert.Nil(t, u)
		assert.Equal(t, "INVALID_INPUT", err.Code)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		u, err := NewUser("Dana", "dana@example.com", UserRole("superuser"))
		require.NotNil(t, err)
		assert.Nil(t, u)
	})

	t.Run("customers cannot own shops", func(t *testing.T) {
		u, err := NewUser("Dana", "dana@example.com", RoleCustomer)
		require.Nil(t, err)
		assert.False(t, u.CanOwnShop())
	})
}

func TestUserManagerFlag(t *testing.T) {
	u, _ := NewUser("Dana", "dana@example.com", RoleCustomer)

	v := u.Version
	u.MarkManager()
	u.MarkManager()
	assert.True(t, u.IsManager)
	assert.Equal(t, v+1, u.Version)

	u.UnmarkManager()
	assert.False(t, u.IsManager)
}
