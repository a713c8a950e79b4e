package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrNotOwner            = errors.New("actor does not own this resource")
	ErrServiceNotBookable  = errors.New("service is not bookable")
	ErrCustomerBlocked     = errors.New("customer is blocked")
	ErrMissingDates        = errors.New("missing booking dates")
	ErrInvalidDateOrder    = errors.New("fulfillment date before book date")
	ErrInvalidTransition   = errors.New("transition not allowed from current status")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
	ErrBookingNotReviewed  = errors.New("booking not completed yet")
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
)

// BookingConfig tunes the state machine's handling of transitions attempted
// from a state that does not permit them. The default (false) preserves the
// permissive behavior: such calls are swallowed and the unchanged booking is
// returned. Strict mode turns them into ErrInvalidTransition.
type BookingConfig struct {
	StrictTransitions bool
}

// IBookingUseCase is the booking lifecycle state machine.
//
//	(create, customer)           -> pending, gated on the moderation registry
//	pending  -> confirmed (provider), creates the pending Payment exactly once
//	pending  -> rejected  (provider)
//	confirmed -> active   driven by the payment machine reaching paid
//	active   -> completed (customer)
//	completed -> closed   (provider acknowledgement), terminal

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, customerID, serviceID string, bookDate, fulfillmentDate time.Time, remark string) (entities.Booking, error)
	ConfirmBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error)
	RejectBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error)
	CompleteBooking(ctx context.Context, customerID, bookingID string) (entities.Booking, error)
	CloseBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (entities.Booking, error)
	CreateReview(ctx context.Context, customerID, bookingID string, rating int, comment string) (entities.Review, error)
}

type BookingUseCase struct {
	bookingRepo  interfaces.IBookingRepository
	paymentRepo  interfaces.IPaymentRepository
	serviceRepo  interfaces.IServiceRepository
	providerRepo interfaces.IProviderRepository
	categoryRepo interfaces.ICategoryRepository
	customerRepo interfaces.ICustomerRepository
	reviewRepo   interfaces.IReviewRepository
	moderation   interfaces.IModerationRegistry
	cfg          BookingConfig
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookingRepo interfaces.IBookingRepository,
	paymentRepo interfaces.IPaymentRepository,
	serviceRepo interfaces.IServiceRepository,
	providerRepo interfaces.IProviderRepository,
	categoryRepo interfaces.ICategoryRepository,
	customerRepo interfaces.ICustomerRepository,
	reviewRepo interfaces.IReviewRepository,
	moderation interfaces.IModerationRegistry,
	cfg BookingConfig,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
		reviewRepo:   reviewRepo,
		moderation:   moderation,
		cfg:          cfg,
	}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, customerID, serviceID string, bookDate, fulfillmentDate time.Time, remark string) (entities.Booking, error) {
	customerID = strings.TrimSpace(customerID)
	serviceID = strings.TrimSpace(serviceID)
	if customerID == "" {
		return entities.Booking{}, ErrInvalidActorID
	}
	if serviceID == "" {
		return entities.Booking{}, ErrServiceNotFound
	}
	if bookDate.IsZero() || fulfillmentDate.IsZero() {
		return entities.Booking{}, ErrMissingDates
	}
	if fulfillmentDate.Before(bookDate) {
		return entities.Booking{}, ErrInvalidDateOrder
	}

	cust, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Booking{}, err
	}
	if cust.ID == "" {
		return entities.Booking{}, ErrCustomerNotFound
	}
	if cust.IsBlocked {
		return entities.Booking{}, ErrCustomerBlocked
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Booking{}, err
	}
	if svc.ID == "" {
		return entities.Booking{}, ErrServiceNotFound
	}

	// Moderation gate, evaluated at the moment of the operation.
	bookable, err := u.moderation.IsBookable(ctx, serviceID)
	if err != nil {
		return entities.Booking{}, err
	}
	if !bookable {
		log.Printf("[booking][usecase] create rejected by moderation gate service_id=%s", serviceID)
		return entities.Booking{}, ErrServiceNotBookable
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ServiceID:       serviceID,
		ProviderID:      svc.ProviderID,
		Status:          entities.BookingStatusPending,
		BookDate:        bookDate,
		FulfillmentDate: fulfillmentDate,
		Remark:          strings.TrimSpace(remark),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create failed service_id=%s err=%v", serviceID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] create success booking_id=%s service_id=%s", created.ID, serviceID)
	return created, nil
}

// ConfirmBooking moves a pending booking to confirmed and settles its
// payment. Re-confirming an already-confirmed booking is a no-op returning
// the stored booking. On a completed booking the provider's confirm action
// acknowledges completion and closes it.
func (u *BookingUseCase) ConfirmBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	b, err := u.getOwnedByProvider(ctx, providerID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}

	switch b.Status {
	case entities.BookingStatusPending:
		return u.confirmPending(ctx, b)
	case entities.BookingStatusConfirmed:
		// Idempotent: the payment already exists, never create a second one.
		return b, nil
	case entities.BookingStatusCompleted:
		return u.closeCompleted(ctx, b)
	default:
		return u.noopOr(b, ErrInvalidTransition)
	}
}

func (u *BookingUseCase) confirmPending(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	svc, err := u.serviceRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		return entities.Booking{}, err
	}
	if svc.ID == "" {
		return entities.Booking{}, ErrServiceNotFound
	}

	prov, err := u.providerRepo.GetByID(ctx, svc.ProviderID)
	if err != nil {
		return entities.Booking{}, err
	}
	if prov.ID == "" {
		return entities.Booking{}, ErrProviderNotFound
	}

	cat, err := u.categoryRepo.GetByID(ctx, prov.CategoryID)
	if err != nil {
		return entities.Booking{}, err
	}
	if cat.ID == "" {
		return entities.Booking{}, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	s := ComputeSettlement(svc.Price, svc.DurationHours, cat)
	p := entities.Payment{
		ID:             uuid.NewString(),
		BookingID:      b.ID,
		CustomerID:     b.CustomerID,
		Status:         entities.PaymentStatusPending,
		Amount:         s.Amount,
		CommissionFee:  s.CommissionFee,
		PlatformFee:    s.PlatformFee,
		TransactionFee: s.TransactionFee,
		Discount:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	updated, err := u.bookingRepo.ConfirmWithPayment(ctx, b.ID, now, p)
	if err != nil {
		log.Printf("[booking][usecase] confirm failed booking_id=%s err=%v", b.ID, err)
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		// Lost the conditional write: someone else transitioned this booking
		// first. Re-read and report what actually happened.
		current, err := u.bookingRepo.GetByID(ctx, b.ID)
		if err != nil {
			return entities.Booking{}, err
		}
		if current.Status == entities.BookingStatusConfirmed {
			return current, nil
		}
		return u.noopOr(current, ErrInvalidTransition)
	}

	log.Printf("[booking][usecase] confirm success booking_id=%s payment_id=%s amount=%d commission=%d platform=%d transaction=%d",
		b.ID, p.ID, s.Amount, s.CommissionFee, s.PlatformFee, s.TransactionFee)
	return updated, nil
}

func (u *BookingUseCase) RejectBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	b, err := u.getOwnedByProvider(ctx, providerID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}

	if b.Status != entities.BookingStatusPending {
		return u.noopOr(b, ErrInvalidTransition)
	}

	updated, err := u.bookingRepo.TransitionStatus(ctx, b.ID, entities.BookingStatusPending, entities.BookingStatusRejected, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		current, err := u.bookingRepo.GetByID(ctx, b.ID)
		if err != nil {
			return entities.Booking{}, err
		}
		return u.noopOr(current, ErrInvalidTransition)
	}
	log.Printf("[booking][usecase] reject success booking_id=%s", b.ID)
	return updated, nil
}

func (u *BookingUseCase) CompleteBooking(ctx context.Context, customerID, bookingID string) (entities.Booking, error) {
	b, err := u.getOwnedByCustomer(ctx, customerID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}

	if b.Status != entities.BookingStatusActive {
		return u.noopOr(b, ErrInvalidTransition)
	}

	updated, err := u.bookingRepo.TransitionStatus(ctx, b.ID, entities.BookingStatusActive, entities.BookingStatusCompleted, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		current, err := u.bookingRepo.GetByID(ctx, b.ID)
		if err != nil {
			return entities.Booking{}, err
		}
		return u.noopOr(current, ErrInvalidTransition)
	}
	log.Printf("[booking][usecase] complete success booking_id=%s", b.ID)
	return updated, nil
}

// CloseBooking acknowledges a completed booking, flipping it to the terminal
// closed state. Closing an already-closed booking is a no-op.
func (u *BookingUseCase) CloseBooking(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	b, err := u.getOwnedByProvider(ctx, providerID, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}

	switch b.Status {
	case entities.BookingStatusCompleted:
		return u.closeCompleted(ctx, b)
	case entities.BookingStatusClosed:
		return b, nil
	default:
		return u.noopOr(b, ErrInvalidTransition)
	}
}

func (u *BookingUseCase) closeCompleted(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	updated, err := u.bookingRepo.Close(ctx, b.ID, time.Now().UTC())
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		current, err := u.bookingRepo.GetByID(ctx, b.ID)
		if err != nil {
			return entities.Booking{}, err
		}
		if current.Status == entities.BookingStatusClosed {
			return current, nil
		}
		return u.noopOr(current, ErrInvalidTransition)
	}
	log.Printf("[booking][usecase] close success booking_id=%s", b.ID)
	return updated, nil
}

func (u *BookingUseCase) GetBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// CreateReview records the customer's rating once the booking reached
// completed or closed. At most one review exists per booking.
func (u *BookingUseCase) CreateReview(ctx context.Context, customerID, bookingID string, rating int, comment string) (entities.Review, error) {
	if rating < 0 || rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}

	b, err := u.getOwnedByCustomer(ctx, customerID, bookingID)
	if err != nil {
		return entities.Review{}, err
	}
	if b.Status != entities.BookingStatusCompleted && b.Status != entities.BookingStatusClosed {
		return entities.Review{}, ErrBookingNotReviewed
	}

	existing, err := u.reviewRepo.GetByBookingID(ctx, b.ID)
	if err != nil {
		return entities.Review{}, err
	}
	if existing.BookingID != "" {
		return entities.Review{}, ErrReviewAlreadyExists
	}

	r := entities.Review{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.reviewRepo.Create(ctx, r)
	if err != nil {
		return entities.Review{}, err
	}
	log.Printf("[booking][usecase] review created booking_id=%s rating=%d", b.ID, rating)
	return created, nil
}

// noopOr implements the permissive/strict switch for transitions attempted
// from a state that does not allow them.
func (u *BookingUseCase) noopOr(b entities.Booking, strictErr error) (entities.Booking, error) {
	if u.cfg.StrictTransitions {
		return entities.Booking{}, strictErr
	}
	return b, nil
}

func (u *BookingUseCase) getOwnedByProvider(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	providerID = strings.TrimSpace(providerID)
	bookingID = strings.TrimSpace(bookingID)
	if providerID == "" {
		return entities.Booking{}, ErrInvalidActorID
	}
	if bookingID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.ProviderID != providerID {
		return entities.Booking{}, ErrNotOwner
	}
	return b, nil
}

func (u *BookingUseCase) getOwnedByCustomer(ctx context.Context, customerID, bookingID string) (entities.Booking, error) {
	customerID = strings.TrimSpace(customerID)
	bookingID = strings.TrimSpace(bookingID)
	if customerID == "" {
		return entities.Booking{}, ErrInvalidActorID
	}
	if bookingID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.CustomerID != customerID {
		return entities.Booking{}, ErrNotOwner
	}
	return b, nil
}
