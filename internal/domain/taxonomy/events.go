package taxonomy

import (
	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Event types for the taxonomy domain
const (
	EventTypeShopTypeCreated     = "taxonomy.shop_type.created"
	EventTypeShopTypeDeactivated = "taxonomy.shop_type.deactivated"
	EventTypeShopSubtypeCreated  = "taxonomy.shop_subtype.created"
)

// ShopTypeCreatedEvent is raised when a shop type is created
type ShopTypeCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewShopTypeCreatedEvent creates a new ShopTypeCreatedEvent
func NewShopTypeCreatedEvent(typeID uuid.UUID, name string) *ShopTypeCreatedEvent {
	return &ShopTypeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopTypeCreated, "ShopType", typeID),
		Name:            name,
	}
}

// ShopTypeDeactivatedEvent is raised when a shop type is soft-deleted
type ShopTypeDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewShopTypeDeactivatedEvent creates a new ShopTypeDeactivatedEvent
func NewShopTypeDeactivatedEvent(typeID uuid.UUID, name string) *ShopTypeDeactivatedEvent {
	return &ShopTypeDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopTypeDeactivated, "ShopType", typeID),
		Name:            name,
	}
}

// ShopSubtypeCreatedEvent is raised when a shop subtype is created
type ShopSubtypeCreatedEvent struct {
	shared.BaseDomainEvent
	TypeID uuid.UUID `json:"type_id"`
	Name   string    `json:"name"`
}

// NewShopSubtypeCreatedEvent creates a new ShopSubtypeCreatedEvent
func NewShopSubtypeCreatedEvent(subtypeID, typeID uuid.UUID, name string) *ShopSubtypeCreatedEvent {
	return &ShopSubtypeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopSubtypeCreated, "ShopSubtype", subtypeID),
		TypeID:          typeID,
		Name:            name,
	}
}
