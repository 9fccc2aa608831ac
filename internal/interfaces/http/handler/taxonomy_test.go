package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	taxonomyapp "github.com/localmarket/backend/internal/application/taxonomy"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
	"github.com/localmarket/backend/internal/interfaces/http/dto"
)

// MockShopTypeRepository implements taxonomy.ShopTypeRepository for testing
type MockShopTypeRepository struct {
	mock.Mock
}

func (m *MockShopTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.ShopType), args.Error(1)
}

func (m *MockShopTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]taxonomy.ShopType, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]taxonomy.ShopType), args.Error(1)
}

func (m *MockShopTypeRepository) FindActive(ctx context.Context) ([]taxonomy.ShopType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.ShopType), args.Error(1)
}

func (m *MockShopTypeRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopTypeRepository) Save(ctx context.Context, shopType *taxonomy.ShopType) error {
	args := m.Called(ctx, shopType)
	return args.Error(0)
}

func (m *MockShopTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopTypeRepository) CountActiveSubtypes(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockShopSubtypeRepository implements taxonomy.ShopSubtypeRepository for testing
type MockShopSubtypeRepository struct {
	mock.Mock
}

func (m *MockShopSubtypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.ShopSubtype, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.ShopSubtype), args.Error(1)
}

func (m *MockShopSubtypeRepository) FindByType(ctx context.Context, typeID uuid.UUID, onlyActive bool) ([]taxonomy.ShopSubtype, error) {
	args := m.Called(ctx, typeID, onlyActive)
	return args.Get(0).([]taxonomy.ShopSubtype), args.Error(1)
}

func (m *MockShopSubtypeRepository) FindActive(ctx context.Context) ([]taxonomy.ShopSubtype, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.ShopSubtype), args.Error(1)
}

func (m *MockShopSubtypeRepository) ExistsByNameInType(ctx context.Context, typeID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, typeID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopSubtypeRepository) Save(ctx context.Context, subtype *taxonomy.ShopSubtype) error {
	args := m.Called(ctx, subtype)
	return args.Error(0)
}

// MockShopCounter implements taxonomyapp.ShopUsageCounter for testing
type MockShopCounter struct {
	mock.Mock
}

func (m *MockShopCounter) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopCounter) CountBySubtype(ctx context.Context, subtypeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subtypeID)
	return args.Get(0).(int64), args.Error(1)
}

func setupTaxonomyRouter(typeRepo *MockShopTypeRepository, subtypeRepo *MockShopSubtypeRepository, counter *MockShopCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := taxonomyapp.NewService(typeRepo, subtypeRepo, counter, nil)
	h := NewTaxonomyHandler(service)

	engine := gin.New()
	engine.POST("/taxonomy/types", h.CreateType)
	engine.GET("/taxonomy/types/:id", h.GetType)
	engine.DELETE("/taxonomy/types/:id", h.DeactivateType)
	return engine
}

func TestTaxonomyHandler_CreateType(t *testing.T) {
	t.Run("creates a shop type", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		typeRepo.On("ExistsByName", mock.Anything, "Bakery", uuid.Nil).Return(false, nil)
		typeRepo.On("Save", mock.Anything, mock.AnythingOfType("*taxonomy.ShopType")).Return(nil)

		body, _ := json.Marshal(map[string]string{"name": "Bakery", "description": "Bread and pastry shops"})
		req := httptest.NewRequest(http.MethodPost, "/taxonomy/types", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		typeRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate names with 409", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		typeRepo.On("ExistsByName", mock.Anything, "Bakery", uuid.Nil).Return(true, nil)

		body, _ := json.Marshal(map[string]string{"name": "Bakery"})
		req := httptest.NewRequest(http.MethodPost, "/taxonomy/types", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("rejects invalid payloads with 400", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		req := httptest.NewRequest(http.MethodPost, "/taxonomy/types", bytes.NewReader([]byte(`{"name":"x"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaxonomyHandler_GetType(t *testing.T) {
	t.Run("returns 404 for missing types", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		id := uuid.New()
		typeRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/taxonomy/types/"+id.String(), nil)
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		req := httptest.NewRequest(http.MethodGet, "/taxonomy/types/not-a-uuid", nil)
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaxonomyHandler_DeactivateType(t *testing.T) {
	t.Run("blocks deletion when shops reference the type", func(t *testing.T) {
		typeRepo := new(MockShopTypeRepository)
		subtypeRepo := new(MockShopSubtypeRepository)
		counter := new(MockShopCounter)
		engine := setupTaxonomyRouter(typeRepo, subtypeRepo, counter)

		shopType, derr := taxonomy.NewShopType("Bakery", "")
		require.Nil(t, derr)

		typeRepo.On("FindByID", mock.Anything, shopType.ID).Return(shopType, nil)
		typeRepo.On("CountActiveSubtypes", mock.Anything, shopType.ID).Return(int64(0), nil)
		counter.On("CountByType", mock.Anything, shopType.ID).Return(int64(3), nil)

		req := httptest.NewRequest(http.MethodDelete, "/taxonomy/types/"+shopType.ID.String(), nil)
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "IN_USE", resp.Error.Code)
		assert.EqualValues(t, 3, resp.Error.Details["shops"])
	})
}
