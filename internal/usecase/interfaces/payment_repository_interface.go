package interfaces

import (
	"context"
	"time"

	"servease/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// MarkPaid and MarkCancelled are transactional writes pairing the payment
// status flip (conditional on status = pending) with the owning booking's
// transition (conditional on status = confirmed). Either both conditions
// hold and both rows change, or neither does; a zero-value Payment signals
// the failed condition.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error)
	MarkPaid(ctx context.Context, id string, method entities.PaymentMethod, bookingID string, at time.Time) (entities.Payment, error)
	MarkCancelled(ctx context.Context, id string, bookingID string, at time.Time) (entities.Payment, error)
}
