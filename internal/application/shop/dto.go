package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shop"
	"github.com/shopspring/decimal"
)

// CreateShopRequest represents a request to open a shop
type CreateShopRequest struct {
	Name         string    `json:"name" binding:"required,min=2,max=150"`
	Description  string    `json:"description" binding:"max=500"`
	Location     string    `json:"location" binding:"required,max=255"`
	Phone        string    `json:"phone" binding:"max=30"`
	OpeningHours string    `json:"opening_hours" binding:"max=100"`
	TypeID       uuid.UUID `json:"type_id" binding:"required"`
	SubtypeID    uuid.UUID `json:"subtype_id" binding:"required"`
	OwnerID      uuid.UUID `json:"owner_id" binding:"required"`
}

// UpdateShopRequest represents a request to update a shop
type UpdateShopRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	Description  string `json:"description" binding:"max=500"`
	Location     string `json:"location" binding:"required,max=255"`
	Phone        string `json:"phone" binding:"max=30"`
	OpeningHours string `json:"opening_hours" binding:"max=100"`
}

// ReclassifyShopRequest moves a shop to another type/subtype pair
type ReclassifyShopRequest struct {
	TypeID    uuid.UUID `json:"type_id" binding:"required"`
	SubtypeID uuid.UUID `json:"subtype_id" binding:"required"`
}

// RateShopRequest represents a request to rate a shop
type RateShopRequest struct {
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	Value   int       `json:"value" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"max=500"`
}

// ShopResponse represents a shop in API responses
type ShopResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Phone        string          `json:"phone,omitempty"`
	OpeningHours string          `json:"opening_hours,omitempty"`
	TypeID       uuid.UUID       `json:"type_id"`
	SubtypeID    uuid.UUID       `json:"subtype_id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Calification decimal.Decimal `json:"calification"`
	RatingCount  int64           `json:"rating_count"`
	ImagePath    string          `json:"image_path,omitempty"`
	Verified     bool            `json:"verified"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RatingResponse represents a rating in API responses
type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shop_id"`
	UserID    uuid.UUID `json:"user_id"`
	Value     int       `json:"value"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToShopResponse converts a domain shop to its response form
func ToShopResponse(s *shop.Shop) *ShopResponse {
	return &ShopResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Location:     s.Location,
		Phone:        s.Phone,
		OpeningHours: s.OpeningHours,
		TypeID:       s.TypeID,
		SubtypeID:    s.SubtypeID,
		OwnerID:      s.OwnerID,
		Calification: s.Calification,
		RatingCount:  s.RatingCount,
		ImagePath:    s.ImagePath,
		Verified:     s.Verified,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToShopResponses converts a slice of domain shops
func ToShopResponses(shops []shop.Shop) []ShopResponse {
	out := make([]ShopResponse, 0, len(shops))
	for i := range shops {
		out = append(out, *ToShopResponse(&shops[i]))
	}
	return out
}

// ToRatingResponse converts a domain rating to its response form
func ToRatingResponse(r *shop.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		ShopID:    r.ShopID,
		UserID:    r.UserID,
		Value:     r.Value,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToRatingResponses converts a slice of domain ratings
func ToRatingResponses(ratings []shop.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		out = append(out, *ToRatingResponse(&ratings[i]))
	}
	return out
}
