package shop

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Event types for the shop domain
const (
	EventTypeShopCreated = "shop.created"
	EventTypeShopDeleted = "shop.deleted"
	EventTypeShopRated   = "shop.rated"
)

// ShopCreatedEvent is raised when a shop is created
type ShopCreatedEvent struct {
	shared.BaseDomainEvent
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

// NewShopCreatedEvent creates a new ShopCreatedEvent
func NewShopCreatedEvent(shopID uuid.UUID, name string, ownerID uuid.UUID) *ShopCreatedEvent {
	return &ShopCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopCreated, "Shop", shopID),
		Name:            name,
		OwnerID:         ownerID,
	}
}

// ShopDeletedEvent is raised after a shop and its dependents are removed.
// ImagePaths carries the stored image locations of the shop and its
// products and packages so a handler can clean them up after the commit.
type ShopDeletedEvent struct {
	shared.BaseDomainEvent
	Name       string   `json:"name"`
	ImagePaths []string `json:"image_paths"`
}

// NewShopDeletedEvent creates a new ShopDeletedEvent
func NewShopDeletedEvent(shopID uuid.UUID, name string, imagePaths []string) *ShopDeletedEvent {
	return &ShopDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopDeleted, "Shop", shopID),
		Name:            name,
		ImagePaths:      imagePaths,
	}
}

// ShopRatedEvent is raised after a rating is created or revised
type ShopRatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Value  int       `json:"value"`
}

// NewShopRatedEvent creates a new ShopRatedEvent
func NewShopRatedEvent(shopID, userID uuid.UUID, value int) *ShopRatedEvent {
	return &ShopRatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopRated, "Shop", shopID),
		UserID:          userID,
		Value:           value,
	}
}
