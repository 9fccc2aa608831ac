package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryService(catRepo *mockCategoryRepo, subRepo *mockSubcategoryRepo, typeRepo *mockTypeRepo) *CategoryService {
	return NewCategoryService(catRepo, subRepo, typeRepo, nil)
}

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category linked to shop type", func(t *testing.T) {
		shopType, _ := taxonomy.NewShopType("Gastronomy", "")

		typeRepo := new(mockTypeRepo)
		typeRepo.On("FindByID", ctx, shopType.ID).Return(shopType, nil)

		catRepo := new(mockCategoryRepo)
		catRepo.On("ExistsByName", ctx, "Produce", uuid.Nil).Return(false, nil)
		catRepo.On("CreateWithTypeLink", ctx, mock.AnythingOfType("*catalog.Category"), shopType.ID).Return(nil)

		svc := newCategoryService(catRepo, new(mockSubcategoryRepo), typeRepo)
		resp, err := svc.Create(ctx, CreateCategoryRequest{TypeID: shopType.ID, Name: "Produce"})

		require.NoError(t, err)
		assert.Equal(t, "Produce", resp.Name)
		assert.False(t, resp.Verified)
		catRepo.AssertExpectations(t)
	})

	t.Run("duplicate name fails without insert", func(t *testing.T) {
		shopType, _ := taxonomy.NewShopType("Gastronomy", "")

		typeRepo := new(mockTypeRepo)
		typeRepo.On("FindByID", ctx, shopType.ID).Return(shopType, nil)

		catRepo := new(mockCategoryRepo)
		catRepo.On("ExistsByName", ctx, "Produce", uuid.Nil).Return(true, nil)

		svc := newCategoryService(catRepo, new(mockSubcategoryRepo), typeRepo)
		resp, err := svc.Create(ctx, CreateCategoryRequest{TypeID: shopType.ID, Name: "Produce"})

		require.Error(t, err)
		assert.Nil(t, resp)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		catRepo.AssertNotCalled(t, "CreateWithTypeLink", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive shop type refuses new categories", func(t *testing.T) {
		shopType, _ := taxonomy.NewShopType("Gastronomy", "")
		require.Nil(t, shopType.Deactivate())

		typeRepo := new(mockTypeRepo)
		typeRepo.On("FindByID", ctx, shopType.ID).Return(shopType, nil)

		svc := newCategoryService(new(mockCategoryRepo), new(mockSubcategoryRepo), typeRepo)
		_, err := svc.Create(ctx, CreateCategoryRequest{TypeID: shopType.ID, Name: "Produce"})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_STATE", derr.Code)
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("blocked with dependent counts", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		catRepo.On("CountSubcategories", ctx, category.ID).Return(int64(2), nil)
		catRepo.On("CountProducts", ctx, category.ID).Return(int64(7), nil)

		svc := newCategoryService(catRepo, new(mockSubcategoryRepo), new(mockTypeRepo))
		err := svc.Delete(ctx, category.ID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "IN_USE", derr.Code)
		assert.EqualValues(t, int64(2), derr.Details["subcategories"])
		assert.EqualValues(t, int64(7), derr.Details["products"])
		catRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes when no dependents", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		catRepo.On("CountSubcategories", ctx, category.ID).Return(int64(0), nil)
		catRepo.On("CountProducts", ctx, category.ID).Return(int64(0), nil)
		catRepo.On("Delete", ctx, category.ID).Return(nil)

		svc := newCategoryService(catRepo, new(mockSubcategoryRepo), new(mockTypeRepo))
		require.NoError(t, svc.Delete(ctx, category.ID))
		catRepo.AssertExpectations(t)
	})

	t.Run("cascade reports deleted counts", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		catRepo.On("DeleteCascade", ctx, category.ID).
			Return(catalog.CascadeResult{Subcategories: 2, Products: 7}, nil)

		svc := newCategoryService(catRepo, new(mockSubcategoryRepo), new(mockTypeRepo))
		result, err := svc.DeleteCascade(ctx, category.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Subcategories)
		assert.Equal(t, int64(7), result.Products)
	})
}

func TestCategoryServiceUpdateCascade(t *testing.T) {
	ctx := context.Background()
	category, _ := catalog.NewCategory("Produce", "", uuid.New())

	catRepo := new(mockCategoryRepo)
	catRepo.On("CountProducts", ctx, category.ID).Return(int64(4), nil)
	catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	catRepo.On("ExistsByName", ctx, "Fresh Produce", category.ID).Return(false, nil)
	catRepo.On("Save", ctx, category).Return(nil)

	svc := newCategoryService(catRepo, new(mockSubcategoryRepo), new(mockTypeRepo))
	resp, affected, err := svc.UpdateCascade(ctx, category.ID, UpdateCategoryRequest{Name: "Fresh Produce"})

	require.NoError(t, err)
	assert.Equal(t, "Fresh Produce", resp.Name)
	assert.Equal(t, int64(4), affected)
}
