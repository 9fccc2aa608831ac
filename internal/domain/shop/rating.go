package shop

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Rating is a user's score for a shop. One rating per user and shop;
// rating again replaces the previous score.
type Rating struct {
	shared.BaseEntity
	ShopID  uuid.UUID `gorm:"type:uuid;not null;index:idx_ratings_shop_user,unique"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_ratings_shop_user,unique"`
	Value   int       `gorm:"not null"`
	Comment string    `gorm:"type:varchar(500)"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}

// NewRating creates a new rating for a shop
func NewRating(shopID, userID uuid.UUID, value int, comment string) (*Rating, *shared.DomainError) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shop ID is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if err := validateRatingValue(value); err != nil {
		return nil, err
	}

	return &Rating{
		BaseEntity: shared.NewBaseEntity(),
		ShopID:     shopID,
		UserID:     userID,
		Value:      value,
		Comment:    strings.TrimSpace(comment),
	}, nil
}

// Revise replaces the score and comment of an existing rating
func (r *Rating) Revise(value int, comment string) *shared.DomainError {
	if err := validateRatingValue(value); err != nil {
		return err
	}
	r.Value = value
	r.Comment = strings.TrimSpace(comment)
	return nil
}

func validateRatingValue(value int) *shared.DomainError {
	if value < 1 || value > 5 {
		return shared.NewDomainError("INVALID_INPUT", "Rating value must be between 1 and 5")
	}
	return nil
}
