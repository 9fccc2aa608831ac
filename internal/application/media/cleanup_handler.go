package media

import (
	"context"

	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
	"go.uber.org/zap"
)

// CleanupHandler removes stored images after a cascading shop delete.
// Cleanup is best effort: a failed delete is logged and skipped so the
// already-committed database delete stands.
type CleanupHandler struct {
	store  ImageStore
	logger *zap.Logger
}

// NewCleanupHandler creates a new CleanupHandler
func NewCleanupHandler(store ImageStore, logger *zap.Logger) *CleanupHandler {
	return &CleanupHandler{store: store, logger: logger}
}

// EventTypes returns the event types this handler reacts to
func (h *CleanupHandler) EventTypes() []string {
	return []string{shop.EventTypeShopDeleted}
}

// Handle deletes every image path carried by the event
func (h *CleanupHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	deleted, ok := event.(*shop.ShopDeletedEvent)
	if !ok {
		return nil
	}

	for _, path := range deleted.ImagePaths {
		if err := h.store.Delete(ctx, path); err != nil {
			h.logger.Warn("failed to delete image after shop removal",
				zap.String("path", path),
				zap.Error(err))
		}
	}
	return nil
}
