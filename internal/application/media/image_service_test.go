package media

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Convert(data []byte, maxBytes int) ([]byte, error) {
	args := m.Called(data, maxBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type mockBinder struct {
	mock.Mock
}

func (m *mockBinder) Exists(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

// pngData fakes a PNG upload by leading with the PNG signature
func pngData(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func TestImageServiceUpload(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	t.Run("converts, stores, and binds", func(t *testing.T) {
		raw := pngData(2048)
		converted := []byte("webp-bytes")
		wantName := fmt.Sprintf("shop_%s.webp", shopID)

		processor := new(mockProcessor)
		processor.On("Convert", raw, MaxStoredBytes).Return(converted, nil)
		store := new(mockStore)
		store.On("Save", ctx, wantName, converted).Return("/assets/images/"+wantName, nil)
		binder := new(mockBinder)
		binder.On("Exists", ctx, shopID).Return(nil)
		binder.On("SetImage", ctx, shopID, "/assets/images/"+wantName).Return(nil)

		svc := NewImageService(processor, store)
		svc.Register("shop", "shop", binder)

		resp, err := svc.Upload(ctx, "shop", shopID, raw)

		require.NoError(t, err)
		assert.Equal(t, "/assets/images/"+wantName, resp.Path)
		assert.Equal(t, len(converted), resp.Size)
		store.AssertExpectations(t)
		binder.AssertExpectations(t)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		svc := NewImageService(new(mockProcessor), new(mockStore))

		_, err := svc.Upload(ctx, "banner", shopID, pngData(128))

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("oversized upload rejected", func(t *testing.T) {
		svc := NewImageService(new(mockProcessor), new(mockStore))
		svc.Register("shop", "shop", new(mockBinder))

		_, err := svc.Upload(ctx, "shop", shopID, pngData(MaxUploadBytes+1))

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
		assert.Contains(t, derr.Message, "10MB")
	})

	t.Run("non-image content rejected", func(t *testing.T) {
		svc := NewImageService(new(mockProcessor), new(mockStore))
		svc.Register("shop", "shop", new(mockBinder))

		_, err := svc.Upload(ctx, "shop", shopID, []byte("definitely not an image"))

		var derr *shared.DomainError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})

	t.Run("missing entity stops before conversion", func(t *testing.T) {
		processor := new(mockProcessor)
		binder := new(mockBinder)
		binder.On("Exists", ctx, shopID).Return(shared.ErrNotFound)

		svc := NewImageService(processor, new(mockStore))
		svc.Register("shop", "shop", binder)

		_, err := svc.Upload(ctx, "shop", shopID, pngData(128))

		assert.ErrorIs(t, err, shared.ErrNotFound)
		processor.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
	})
}

func TestCleanupHandler(t *testing.T) {
	ctx := context.Background()
	paths := []string{"/assets/images/shop_a.webp", "/assets/images/product_b.webp"}
	event := shop.NewShopDeletedEvent(uuid.New(), "La Esquina", paths)

	t.Run("deletes every carried path", func(t *testing.T) {
		store := new(mockStore)
		for _, p := range paths {
			store.On("Delete", ctx, p).Return(nil)
		}

		handler := NewCleanupHandler(store, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, event))
		store.AssertExpectations(t)
	})

	t.Run("storage failure does not abort the rest", func(t *testing.T) {
		store := new(mockStore)
		store.On("Delete", ctx, paths[0]).Return(errors.New("io error"))
		store.On("Delete", ctx, paths[1]).Return(nil)

		handler := NewCleanupHandler(store, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, event))
		store.AssertExpectations(t)
	})
}
