package shop

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/shop"
)

// RatingService handles shop rating operations
type RatingService struct {
	ratingRepo shop.RatingRepository
	shopRepo   shop.Repository
	publisher  shared.EventPublisher
}

// NewRatingService creates a new RatingService
func NewRatingService(ratingRepo shop.RatingRepository, shopRepo shop.Repository, publisher shared.EventPublisher) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		shopRepo:   shopRepo,
		publisher:  publisher,
	}
}

// Rate records a user's rating of a shop. A second rating by the same
// user revises the first instead of adding a row. The shop's stored
// average and count are recomputed afterwards.
func (s *RatingService) Rate(ctx context.Context, shopID uuid.UUID, req RateShopRequest) (*RatingResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.FindByShopAndUser(ctx, shopID, req.UserID)
	switch {
	case err == nil:
		if derr := rating.Revise(req.Value, req.Comment); derr != nil {
			return nil, derr
		}
	case errors.Is(err, shared.ErrNotFound):
		var derr *shared.DomainError
		rating, derr = shop.NewRating(shopID, req.UserID, req.Value, req.Comment)
		if derr != nil {
			return nil, derr
		}
	default:
		return nil, err
	}

	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		return nil, err
	}
	if err := s.recompute(ctx, shopID); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, shop.NewShopRatedEvent(shopID, req.UserID, req.Value))
	}
	return ToRatingResponse(rating), nil
}

// ListByShop retrieves the ratings of one shop
func (s *RatingService) ListByShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]RatingResponse, error) {
	ratings, err := s.ratingRepo.FindByShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	return ToRatingResponses(ratings), nil
}

// GetByShopAndUser retrieves a user's rating of a shop
func (s *RatingService) GetByShopAndUser(ctx context.Context, shopID, userID uuid.UUID) (*RatingResponse, error) {
	rating, err := s.ratingRepo.FindByShopAndUser(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	return ToRatingResponse(rating), nil
}

// Delete removes a rating and recomputes the shop's average
func (s *RatingService) Delete(ctx context.Context, id uuid.UUID) error {
	rating, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ratingRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.recompute(ctx, rating.ShopID)
}

func (s *RatingService) recompute(ctx context.Context, shopID uuid.UUID) error {
	average, count, err := s.ratingRepo.Aggregate(ctx, shopID)
	if err != nil {
		return err
	}
	return s.shopRepo.UpdateCalification(ctx, shopID, average, count)
}
