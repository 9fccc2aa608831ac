package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func TestInMemoryEventBus(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by event type", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		deleted := &recordingHandler{types: []string{shop.EventTypeShopDeleted}}
		rated := &recordingHandler{types: []string{shop.EventTypeShopRated}}
		bus.Subscribe(deleted)
		bus.Subscribe(rated)

		event := shop.NewShopDeletedEvent(uuid.New(), "La Esquina", nil)
		require.NoError(t, bus.Publish(ctx, event))

		require.Len(t, deleted.received, 1)
		assert.Empty(t, rated.received)
	})

	t.Run("catch-all handler sees everything", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		all := &recordingHandler{}
		bus.Subscribe(all)

		require.NoError(t, bus.Publish(ctx,
			shop.NewShopRatedEvent(uuid.New(), uuid.New(), 5),
			shop.NewShopDeletedEvent(uuid.New(), "La Esquina", nil),
		))

		assert.Len(t, all.received, 2)
	})

	t.Run("failing handler does not stop the rest", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{types: []string{shop.EventTypeShopRated}, err: errors.New("boom")}
		healthy := &recordingHandler{types: []string{shop.EventTypeShopRated}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(ctx, shop.NewShopRatedEvent(uuid.New(), uuid.New(), 3)))
		assert.Len(t, healthy.received, 1)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{shop.EventTypeShopRated}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		require.NoError(t, bus.Publish(ctx, shop.NewShopRatedEvent(uuid.New(), uuid.New(), 3)))
		assert.Empty(t, handler.received)
	})
}
