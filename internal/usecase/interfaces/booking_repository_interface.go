package interfaces

import (
	"context"
	"time"

	"servease/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Transition methods are conditional writes: they succeed only when the
// stored status matches the expected one and return a zero-value Booking
// when the condition fails. That conditional write is the per-booking
// serialization point: concurrent transitions on the same booking resolve
// to exactly one winner.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)

	// ConfirmWithPayment atomically flips a pending booking to confirmed and
	// creates its payment in one transactional write. Returns a zero-value
	// Booking when the booking is no longer pending; the payment is then not
	// written, so at most one payment ever exists per booking.
	ConfirmWithPayment(ctx context.Context, bookingID string, confirmedAt time.Time, p entities.Payment) (entities.Booking, error)

	// TransitionStatus updates status from -> to, stamping the transition
	// timestamp that belongs to the target status.
	TransitionStatus(ctx context.Context, id string, from, to entities.BookingStatus, at time.Time) (entities.Booking, error)

	// Close flips a completed booking to closed and sets is_closed/closed_date.
	Close(ctx context.Context, id string, at time.Time) (entities.Booking, error)

	// ListClosed pages through closed bookings, optionally scoped to one
	// provider. afterID restarts the sequence from the last id already seen;
	// an empty result means the sequence is exhausted.
	ListClosed(ctx context.Context, providerID string, afterID string, limit int32) ([]entities.Booking, error)
}
