package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/identity"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindByType(ctx context.Context, typeID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, typeID, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindBySubtype(ctx context.Context, subtypeID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, subtypeID, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockShopRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]shop.Shop, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *mockShopRepo) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockShopRepo) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockShopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockShopRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShopRepo) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShopRepo) CountBySubtype(ctx context.Context, subtypeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subtypeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShopRepo) CountProducts(ctx context.Context, shopID uuid.UUID) (int64, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShopRepo) CollectImagePaths(ctx context.Context, shopID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockShopRepo) DeleteCascade(ctx context.Context, id uuid.UUID) (shop.CascadeResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(shop.CascadeResult), args.Error(1)
}

func (m *mockShopRepo) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *mockShopRepo) UpdateCalification(ctx context.Context, id uuid.UUID, average decimal.Decimal, count int64) error {
	args := m.Called(ctx, id, average, count)
	return args.Error(0)
}

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) FindByID(ctx context.Context, id uuid.UUID) (*shop.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Rating), args.Error(1)
}

func (m *mockRatingRepo) FindByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]shop.Rating, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]shop.Rating), args.Error(1)
}

func (m *mockRatingRepo) FindByShopAndUser(ctx context.Context, shopID, userID uuid.UUID) (*shop.Rating, error) {
	args := m.Called(ctx, shopID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Rating), args.Error(1)
}

func (m *mockRatingRepo) Save(ctx context.Context, rating *shop.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRatingRepo) Aggregate(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, int64, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
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

type mockSubtypeRepo struct {
	mock.Mock
}

func (m *mockSubtypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopSubtype, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.ShopSubtype), args.Error(1)
}

func (m *mockSubtypeRepo) FindByType(ctx context.Context, typeID uuid.UUID, onlyActive bool) ([]taxonomy.ShopSubtype, error) {
	args := m.Called(ctx, typeID, onlyActive)
	return args.Get(0).([]taxonomy.ShopSubtype), args.Error(1)
}

func (m *mockSubtypeRepo) FindActive(ctx context.Context) ([]taxonomy.ShopSubtype, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.ShopSubtype), args.Error(1)
}

func (m *mockSubtypeRepo) ExistsByNameInType(ctx context.Context, typeID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, typeID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubtypeRepo) Save(ctx context.Context, subtype *taxonomy.ShopSubtype) error {
	args := m.Called(ctx, subtype)
	return args.Error(0)
}

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

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
