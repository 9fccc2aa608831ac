package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"github.com/stretchr/testify/mock"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) CountSubcategories(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) CreateWithTypeLink(ctx context.Context, category *catalog.Category, typeID uuid.UUID) error {
	args := m.Called(ctx, category, typeID)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryRepo) DeleteCascade(ctx context.Context, id uuid.UUID) (catalog.CascadeResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.CascadeResult), args.Error(1)
}

type mockSubcategoryRepo struct {
	mock.Mock
}

func (m *mockSubcategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Subcategory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) ExistsByNameInCategory(ctx context.Context, categoryID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubcategoryRepo) Save(ctx context.Context, subcategory *catalog.Subcategory) error {
	args := m.Called(ctx, subcategory)
	return args.Error(0)
}

func (m *mockSubcategoryRepo) CountProducts(ctx context.Context, subcategoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subcategoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubcategoryRepo) FindProducts(ctx context.Context, subcategoryID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, subcategoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockSubcategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSubcategoryRepo) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubcategoryRepo) MigrateProducts(ctx context.Context, fromID, toID uuid.UUID) (int64, error) {
	args := m.Called(ctx, fromID, toID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTypeRepo struct {
	mock.Mock
}

func (m *mockTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.ShopType), args.Error(1)
}

func (m *mockTypeRepo) FindAll(ctx context.Context, filter shared.Filter) ([]taxonomy.ShopType, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]taxonomy.ShopType), args.Error(1)
}

func (m *mockTypeRepo) FindActive(ctx context.Context) ([]taxonomy.ShopType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.ShopType), args.Error(1)
}

func (m *mockTypeRepo) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTypeRepo) Save(ctx context.Context, shopType *taxonomy.ShopType) error {
	args := m.Called(ctx, shopType)
	return args.Error(0)
}

func (m *mockTypeRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTypeRepo) CountActiveSubtypes(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

type mockAssociationRepo struct {
	mock.Mock
}

func (m *mockAssociationRepo) FindTypeCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.TypeCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.TypeCategory), args.Error(1)
}

func (m *mockAssociationRepo) FindTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) ([]catalog.TypeCategory, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).([]catalog.TypeCategory), args.Error(1)
}

func (m *mockAssociationRepo) TypeCategoryExists(ctx context.Context, typeID, categoryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, typeID, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAssociationRepo) SaveTypeCategory(ctx context.Context, link *catalog.TypeCategory) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockAssociationRepo) DeleteTypeCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAssociationRepo) DeleteTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssociationRepo) DeleteTypeCategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssociationRepo) FindCategorySubcategoryByID(ctx context.Context, id uuid.UUID) (*catalog.CategorySubcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CategorySubcategory), args.Error(1)
}

func (m *mockAssociationRepo) FindCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.CategorySubcategory, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.CategorySubcategory), args.Error(1)
}

func (m *mockAssociationRepo) CategorySubcategoryExists(ctx context.Context, categoryID, subcategoryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID, subcategoryID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAssociationRepo) SaveCategorySubcategory(ctx context.Context, link *catalog.CategorySubcategory) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockAssociationRepo) DeleteCategorySubcategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAssociationRepo) DeleteCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssociationRepo) SaveCategorySubcategoryBatch(ctx context.Context, categoryID uuid.UUID, subcategoryIDs []uuid.UUID) (catalog.BatchLinkResult, error) {
	args := m.Called(ctx, categoryID, subcategoryIDs)
	return args.Get(0).(catalog.BatchLinkResult), args.Error(1)
}
