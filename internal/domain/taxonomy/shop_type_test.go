package taxonomy

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopType(t *testing.T) {
	t.Run("creates active type with trimmed fields", func(t *testing.T) {
		st, err := NewShopType("  Gastronomy  ", " Food and drink shops ")
		require.Nil(t, err)
		require.NotNil(t, st)

		assert.Equal(t, "Gastronomy", st.Name)
		assert.Equal(t, "Food and drink shops", st.Description)
		assert.Equal(t, ShopTypeStatusActive, st.Status)
		assert.False(t, st.Verified)
		assert.NotEqual(t, uuid.Nil, st.ID)
		assert.Len(t, st.GetDomainEvents(), 1)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		st, err := NewShopType("   ", "")
		require.NotNil(t, err)
		assert.Nil(t, st)
		assert.Equal(t, "INVALID_INPUT", err.Code)
	})

	t.Run("rejects overly long name", func(t *testing.T) {
		st, err := NewShopType(strings.Repeat("a", 101), "")
		require.NotNil(t, err)
		assert.Nil(t, st)
	})
}

func TestShopTypeLifecycle(t *testing.T) {
	t.Run("deactivate keeps entity queryable and flips status", func(t *testing.T) {
		st, _ := NewShopType("Retail", "")
		require.Nil(t, st.Deactivate())

		assert.Equal(t, ShopTypeStatusInactive, st.Status)
		assert.False(t, st.IsActive())
		assert.NotEqual(t, uuid.Nil, st.ID)
	})

	t.Run("deactivating twice fails", func(t *testing.T) {
		st, _ := NewShopType("Retail", "")
		require.Nil(t, st.Deactivate())

		err := st.Deactivate()
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_STATE", err.Code)
	})

	t.Run("activate restores a deactivated type", func(t *testing.T) {
		st, _ := NewShopType("Retail", "")
		require.Nil(t, st.Deactivate())
		require.Nil(t, st.Activate())
		assert.True(t, st.IsActive())
	})

	t.Run("verify is idempotent", func(t *testing.T) {
		st, _ := NewShopType("Retail", "")
		v := st.Version
		st.Verify()
		st.Verify()
		assert.True(t, st.Verified)
		assert.Equal(t, v+1, st.Version)
	})
}

func TestNewShopSubtype(t *testing.T) {
	typeID := uuid.New()

	t.Run("creates subtype under parent type", func(t *testing.T) {
		sub, err := NewShopSubtype(typeID, "Bakery", "Bread and pastry")
		require.Nil(t, err)
		require.NotNil(t, sub)

		assert.Equal(t, typeID, sub.TypeID)
		assert.Equal(t, ShopTypeStatusActive, sub.Status)
	})

	t.Run("requires parent type ID", func(t *testing.T) {
		sub, err := NewShopSubtype(uuid.Nil, "Bakery", "")
		require.NotNil(t, err)
		assert.Nil(t, sub)
		assert.Equal(t, "INVALID_INPUT", err.Code)
	})

	t.Run("update validates name", func(t *testing.T) {
		sub, _ := NewShopSubtype(typeID, "Bakery", "")
		err := sub.Update("x", "", 0)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "at least 2 characters")
	})
}
