package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubcategoryServiceMigrateProducts(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	categoryID := uuid.New()

	t.Run("rejects identical source and target", func(t *testing.T) {
		id := uuid.New()
		svc := NewSubcategoryService(new(mockSubcategoryRepo), new(mockCategoryRepo), nil)

		resp, err := svc.MigrateProducts(ctx, MigrateProductsRequest{
			FromSubcategoryID: id,
			ToSubcategoryID:   id,
		})

		require.Error(t, err)
		assert.Nil(t, resp)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		from, to := uuid.New(), uuid.New()

		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, from).Return(nil, shared.ErrNotFound)

		svc := NewSubcategoryService(subRepo, new(mockCategoryRepo), nil)
		_, err := svc.MigrateProducts(ctx, MigrateProductsRequest{FromSubcategoryID: from, ToSubcategoryID: to})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		subRepo.AssertNotCalled(t, "MigrateProducts", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("freshly created target accepted without verification", func(t *testing.T) {
		source, _ := catalog.NewSubcategory(categoryID, "Citrus", "", creator)
		target, _ := catalog.NewSubcategory(categoryID, "Stone fruit", "", creator)
		require.False(t, target.Verified)

		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, source.ID).Return(source, nil)
		subRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		subRepo.On("MigrateProducts", ctx, source.ID, target.ID).Return(int64(4), nil)

		svc := NewSubcategoryService(subRepo, new(mockCategoryRepo), nil)
		resp, err := svc.MigrateProducts(ctx, MigrateProductsRequest{
			FromSubcategoryID: source.ID,
			ToSubcategoryID:   target.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.MigratedCount)
		subRepo.AssertExpectations(t)
	})

	t.Run("moves every product and reports the count", func(t *testing.T) {
		source, _ := catalog.NewSubcategory(categoryID, "Citrus", "", creator)
		target, _ := catalog.NewSubcategory(categoryID, "Stone fruit", "", creator)

		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, source.ID).Return(source, nil)
		subRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		subRepo.On("MigrateProducts", ctx, source.ID, target.ID).Return(int64(12), nil)

		svc := NewSubcategoryService(subRepo, new(mockCategoryRepo), nil)
		resp, err := svc.MigrateProducts(ctx, MigrateProductsRequest{
			FromSubcategoryID: source.ID,
			ToSubcategoryID:   target.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.MigratedCount)
		assert.Equal(t, source.ID, resp.FromSubcategoryID)
		assert.Equal(t, target.ID, resp.ToSubcategoryID)
	})
}

func TestSubcategoryServiceDelete(t *testing.T) {
	ctx := context.Background()
	sub, _ := catalog.NewSubcategory(uuid.New(), "Citrus", "", uuid.New())

	t.Run("blocked with product count", func(t *testing.T) {
		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)
		subRepo.On("CountProducts", ctx, sub.ID).Return(int64(5), nil)

		svc := NewSubcategoryService(subRepo, new(mockCategoryRepo), nil)
		err := svc.Delete(ctx, sub.ID)

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "IN_USE", derr.Code)
		assert.EqualValues(t, int64(5), derr.Details["products"])
		subRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("cascade returns removed product count", func(t *testing.T) {
		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)
		subRepo.On("DeleteCascade", ctx, sub.ID).Return(int64(5), nil)

		svc := NewSubcategoryService(subRepo, new(mockCategoryRepo), nil)
		count, err := svc.DeleteCascade(ctx, sub.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}

func TestAssociationServiceVerifiedGating(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	t.Run("unverified category cannot be linked", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)
		sub, _ := catalog.NewSubcategory(category.ID, "Citrus", "", creator)

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)

		svc := NewAssociationService(new(mockAssociationRepo), new(mockTypeRepo), catRepo, new(mockSubcategoryRepo))
		_, err := svc.LinkCategorySubcategory(ctx, CreateCategorySubcategoryRequest{
			CategoryID:    category.ID,
			SubcategoryID: sub.ID,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "NOT_VERIFIED", derr.Code)
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)
		require.Nil(t, category.Verify())
		sub, _ := catalog.NewSubcategory(category.ID, "Citrus", "", creator)
		require.Nil(t, sub.Verify())

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)

		assocRepo := new(mockAssociationRepo)
		assocRepo.On("CategorySubcategoryExists", ctx, category.ID, sub.ID).Return(true, nil)

		svc := NewAssociationService(assocRepo, new(mockTypeRepo), catRepo, subRepo)
		_, err := svc.LinkCategorySubcategory(ctx, CreateCategorySubcategoryRequest{
			CategoryID:    category.ID,
			SubcategoryID: sub.ID,
		})

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "ALREADY_EXISTS", derr.Code)
		assocRepo.AssertNotCalled(t, "SaveCategorySubcategory", mock.Anything, mock.Anything)
	})

	t.Run("batch link skips existing pairs", func(t *testing.T) {
		category, _ := catalog.NewCategory("Produce", "", creator)
		require.Nil(t, category.Verify())
		subA, _ := catalog.NewSubcategory(category.ID, "Citrus", "", creator)
		subB, _ := catalog.NewSubcategory(category.ID, "Berries", "", creator)

		catRepo := new(mockCategoryRepo)
		catRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		subRepo := new(mockSubcategoryRepo)
		subRepo.On("FindByID", ctx, subA.ID).Return(subA, nil)
		subRepo.On("FindByID", ctx, subB.ID).Return(subB, nil)

		ids := []uuid.UUID{subA.ID, subB.ID}
		assocRepo := new(mockAssociationRepo)
		assocRepo.On("SaveCategorySubcategoryBatch", ctx, category.ID, ids).
			Return(catalog.BatchLinkResult{Created: 1, Skipped: 1}, nil)

		svc := NewAssociationService(assocRepo, new(mockTypeRepo), catRepo, subRepo)
		result, err := svc.LinkSubcategoriesBatch(ctx, BatchLinkSubcategoriesRequest{
			CategoryID:     category.ID,
			SubcategoryIDs: ids,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})
}
