package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	creator := uuid.New()

	t.Run("creates unverified category", func(t *testing.T) {
		c, err := NewCategory("Produce", "Fruit and vegetables", creator)
		require.Nil(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "Produce", c.Name)
		assert.False(t, c.Verified)
		require.NotNil(t, c.CreatedBy)
		assert.Equal(t, creator, *c.CreatedBy)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		c, err := NewCategory("  ", "", creator)
		require.NotNil(t, err)
		assert.Nil(t, c)
		assert.Equal(t, "INVALID_INPUT", err.Code)
	})
}

func TestCategoryVerification(t *testing.T) {
	creator := uuid.New()

	t.Run("verify then unverify", func(t *testing.T) {
		c, _ := NewCategory("Produce", "", creator)

		require.Nil(t, c.Verify())
		assert.True(t, c.Verified)

		err := c.Verify()
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_STATE", err.Code)

		require.Nil(t, c.Unverify())
		assert.False(t, c.Verified)
	})
}

func TestNewSubcategory(t *testing.T) {
	creator := uuid.New()
	categoryID := uuid.New()

	t.Run("creates subcategory under category", func(t *testing.T) {
		s, err := NewSubcategory(categoryID, "Citrus", "", creator)
		require.Nil(t, err)
		assert.Equal(t, categoryID, s.CategoryID)
		assert.False(t, s.Verified)
	})

	t.Run("requires category ID", func(t *testing.T) {
		s, err := NewSubcategory(uuid.Nil, "Citrus", "", creator)
		require.NotNil(t, err)
		assert.Nil(t, s)
	})
}

func TestProductReclassify(t *testing.T) {
	shopID := uuid.New()
	subID := uuid.New()

	p, err := NewProduct(shopID, subID, "Orange juice", "", decimal.NewFromFloat(3.50))
	require.Nil(t, err)

	t.Run("rejects same subcategory", func(t *testing.T) {
		err := p.Reclassify(subID)
		require.NotNil(t, err)
		assert.Equal(t, "INVALID_INPUT", err.Code)
	})

	t.Run("moves to a different subcategory", func(t *testing.T) {
		target := uuid.New()
		require.Nil(t, p.Reclassify(target))
		assert.Equal(t, target, p.SubcategoryID)
	})
}

func TestProductValidation(t *testing.T) {
	t.Run("rejects negative price", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), uuid.New(), "Bread", "", decimal.NewFromInt(-1))
		require.NotNil(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestNewTypeCategory(t *testing.T) {
	t.Run("requires both sides", func(t *testing.T) {
		link, err := NewTypeCategory(uuid.Nil, uuid.New())
		require.NotNil(t, err)
		assert.Nil(t, link)
	})

	t.Run("creates join row", func(t *testing.T) {
		typeID, catID := uuid.New(), uuid.New()
		link, err := NewTypeCategory(typeID, catID)
		require.Nil(t, err)
		assert.Equal(t, typeID, link.TypeID)
		assert.Equal(t, catID, link.CategoryID)
	})
}
