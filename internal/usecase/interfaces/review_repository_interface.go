package interfaces

import (
	"context"

	"servease/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.
//
// Create is conditional on the booking id not having a review yet.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Review, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Review, error)
}
