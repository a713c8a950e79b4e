package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"
)

const reportPageSize = 100

// ClosedBookingRow is one line of the closed-bookings export: the booking
// joined with its service, customer and settled payment.

type ClosedBookingRow struct {
	BookingID           string
	ServiceName         string
	CustomerName        string
	BookDate            time.Time
	ClosedDate          *time.Time
	Amount              int64
	CommissionFee       int64
	FinalProviderAmount int64
}

// ProviderEarnings are derived lazily at read time from closed bookings and
// reviews; nothing is stored or incrementally maintained.

type ProviderEarnings struct {
	ProviderID     string  `json:"provider_id"`
	ClosedBookings int     `json:"closed_bookings"`
	TotalEarned    int64   `json:"total_earned"`
	AverageRating  float64 `json:"average_rating"`
	ReviewCount    int     `json:"review_count"`
}

// IReportUseCase serves the read-only export/reporting queries. The closed
// bookings stream is a finite, restartable sequence: rows arrive through the
// callback page by page, so a report never holds the full result set, and a
// re-run cannot corrupt booking or payment state.

type IReportUseCase interface {
	StreamClosedBookings(ctx context.Context, providerID string, fn func(ClosedBookingRow) error) error
	GetProviderEarnings(ctx context.Context, providerID string) (ProviderEarnings, error)
}

type ReportUseCase struct {
	bookingRepo  interfaces.IBookingRepository
	paymentRepo  interfaces.IPaymentRepository
	serviceRepo  interfaces.IServiceRepository
	customerRepo interfaces.ICustomerRepository
	reviewRepo   interfaces.IReviewRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(bookingRepo interfaces.IBookingRepository, paymentRepo interfaces.IPaymentRepository, serviceRepo interfaces.IServiceRepository, customerRepo interfaces.ICustomerRepository, reviewRepo interfaces.IReviewRepository) *ReportUseCase {
	return &ReportUseCase{bookingRepo: bookingRepo, paymentRepo: paymentRepo, serviceRepo: serviceRepo, customerRepo: customerRepo, reviewRepo: reviewRepo}
}

// StreamClosedBookings walks every closed booking (all providers when
// providerID is empty) and invokes fn per row. A non-nil error from fn stops
// the stream.
func (u *ReportUseCase) StreamClosedBookings(ctx context.Context, providerID string, fn func(ClosedBookingRow) error) error {
	providerID = strings.TrimSpace(providerID)

	afterID := ""
	for {
		page, err := u.bookingRepo.ListClosed(ctx, providerID, afterID, reportPageSize)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}

		for _, b := range page {
			row, err := u.buildRow(ctx, b)
			if err != nil {
				return err
			}
			if err := fn(row); err != nil {
				return err
			}
			afterID = b.ID
		}
	}
}

func (u *ReportUseCase) buildRow(ctx context.Context, b entities.Booking) (ClosedBookingRow, error) {
	row := ClosedBookingRow{
		BookingID:  b.ID,
		BookDate:   b.BookDate,
		ClosedDate: b.ClosedDate,
	}

	svc, err := u.serviceRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		return ClosedBookingRow{}, err
	}
	row.ServiceName = svc.Name

	cust, err := u.customerRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		return ClosedBookingRow{}, err
	}
	row.CustomerName = cust.Name

	p, err := u.paymentRepo.GetByBookingID(ctx, b.ID)
	if err != nil {
		return ClosedBookingRow{}, err
	}
	if p.ID == "" {
		// A closed booking without a payment would violate the lifecycle;
		// surface the gap rather than emitting a half-empty row.
		log.Printf("[report][usecase] closed booking without payment booking_id=%s", b.ID)
		return ClosedBookingRow{}, ErrPaymentNotFound
	}
	row.Amount = p.Amount
	row.CommissionFee = p.CommissionFee
	row.FinalProviderAmount = p.FinalProviderAmount()
	return row, nil
}

func (u *ReportUseCase) GetProviderEarnings(ctx context.Context, providerID string) (ProviderEarnings, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return ProviderEarnings{}, ErrInvalidActorID
	}

	earnings := ProviderEarnings{ProviderID: providerID}
	err := u.StreamClosedBookings(ctx, providerID, func(row ClosedBookingRow) error {
		earnings.ClosedBookings++
		earnings.TotalEarned += row.FinalProviderAmount
		return nil
	})
	if err != nil {
		return ProviderEarnings{}, err
	}

	reviews, err := u.reviewRepo.ListByProviderID(ctx, providerID)
	if err != nil {
		return ProviderEarnings{}, err
	}
	earnings.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		earnings.AverageRating = float64(sum) / float64(len(reviews))
	}
	return earnings, nil
}
