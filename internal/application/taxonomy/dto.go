package taxonomy

import (
	"time"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/taxonomy"
)

// CreateShopTypeRequest represents a request to create a shop type
type CreateShopTypeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateShopTypeRequest represents a request to update a shop type
type UpdateShopTypeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
	SortOrder   int    `json:"sort_order" binding:"gte=0"`
}

// CreateShopSubtypeRequest represents a request to create a shop subtype
type CreateShopSubtypeRequest struct {
	TypeID      uuid.UUID `json:"type_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=2,max=100"`
	Description string    `json:"description" binding:"max=255"`
}

// UpdateShopSubtypeRequest represents a request to update a shop subtype
type UpdateShopSubtypeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=255"`
	SortOrder   int    `json:"sort_order" binding:"gte=0"`
}

// ShopTypeResponse represents a shop type in API responses
type ShopTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Verified    bool      `json:"verified"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShopSubtypeResponse represents a shop subtype in API responses
type ShopSubtypeResponse struct {
	ID          uuid.UUID `json:"id"`
	TypeID      uuid.UUID `json:"type_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Verified    bool      `json:"verified"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToShopTypeResponse converts a domain shop type to its response form
func ToShopTypeResponse(t *taxonomy.ShopType) *ShopTypeResponse {
	return &ShopTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Verified:    t.Verified,
		SortOrder:   t.SortOrder,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToShopTypeResponses converts a slice of domain shop types
func ToShopTypeResponses(types []taxonomy.ShopType) []ShopTypeResponse {
	out := make([]ShopTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, *ToShopTypeResponse(&types[i]))
	}
	return out
}

// ToShopSubtypeResponse converts a domain shop subtype to its response form
func ToShopSubtypeResponse(s *taxonomy.ShopSubtype) *ShopSubtypeResponse {
	return &ShopSubtypeResponse{
		ID:          s.ID,
		TypeID:      s.TypeID,
		Name:        s.Name,
		Description: s.Description,
		Status:      string(s.Status),
		Verified:    s.Verified,
		SortOrder:   s.SortOrder,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToShopSubtypeResponses converts a slice of domain shop subtypes
func ToShopSubtypeResponses(subtypes []taxonomy.ShopSubtype) []ShopSubtypeResponse {
	out := make([]ShopSubtypeResponse, 0, len(subtypes))
	for i := range subtypes {
		out = append(out, *ToShopSubtypeResponse(&subtypes[i]))
	}
	return out
}
