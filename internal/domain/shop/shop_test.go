package shop

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	typeID, subtypeID, ownerID := uuid.New(), uuid.New(), uuid.New()

	t.Run("creates unverified shop with zero calification", func(t *testing.T) {
		s, err := NewShop("Panaderia Centro", "Fresh bread", "Main St 12", typeID, subtypeID, ownerID)
		require.Nil(t, err)
		require.NotNil(t, s)

		assert.False(t, s.Verified)
		assert.True(t, s.Calification.IsZero())
		assert.Equal(t, int64(0), s.RatingCount)
		assert.Len(t, s.GetDomainEvents(), 1)
	})

	t.Run("requires location", func(t *testing.T) {
		s, err := NewShop("Panaderia Centro", "", "  ", typeID, subtypeID, ownerID)
		require.NotNil(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "Location")
	})

	t.Run("requires type and subtype", func(t *testing.T) {
		s, err := NewShop("Panaderia Centro", "", "Main St 12", uuid.Nil, subtypeID, ownerID)
		require.NotNil(t, err)
		assert.Nil(t, s)
	})

	t.Run("requires owner", func(t *testing.T) {
		s, err := NewShop("Panaderia Centro", "", "Main St 12", typeID, subtypeID, uuid.Nil)
		require.NotNil(t, err)
		assert.Nil(t, s)
	})
}

func TestShopApplyCalification(t *testing.T) {
	s, _ := NewShop("Panaderia Centro", "", "Main St 12", uuid.New(), uuid.New(), uuid.New())

	avg := decimal.NewFromFloat(4.25)
	s.ApplyCalification(avg, 8)

	assert.True(t, s.Calification.Equal(avg))
	assert.Equal(t, int64(8), s.RatingCount)
}

func TestNewRating(t *testing.T) {
	shopID, userID := uuid.New(), uuid.New()

	t.Run("accepts values 1 through 5", func(t *testing.T) {
		for v := 1; v <= 5; v++ {
			r, err := NewRating(shopID, userID, v, "")
			require.Nil(t, err)
			assert.Equal(t, v, r.Value)
		}
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		for _, v := range []int{0, 6, -3} {
			r, err := NewRating(shopID, userID, v, "")
			require.NotNil(t, err)
			assert.Nil(t, r)
			assert.Equal(t, "INVALID_INPUT", err.Code)
		}
	})

	t.Run("revise replaces value and comment", func(t *testing.T) {
		r, _ := NewRating(shopID, userID, 3, "ok")
		require.Nil(t, r.Revise(5, " great "))
		assert.Equal(t, 5, r.Value)
		assert.Equal(t, "great", r.Comment)
	})

	t.Run("revise validates range", func(t *testing.T) {
		r, _ := NewRating(shopID, userID, 3, "")
		err := r.Revise(9, "")
		require.NotNil(t, err)
	})
}
