package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrPaymentNotPending          = errors.New("payment is either paid or cancelled")
	ErrBookingFraud               = errors.New("payment references a booking that is not confirmed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase is the payment state machine: pending -> paid | cancelled,
// both terminal.
//
// Unlike the booking machine there is no permissive mode here: a payment
// that already left pending is immutable and any further transition attempt
// is rejected with ErrPaymentNotPending. Both transitions also verify that
// the owning booking is still in confirmed status, the fraud check against
// a stale or tampered client.

type IPaymentUseCase interface {
	GetPayment(ctx context.Context, customerID, paymentID string) (entities.Payment, entities.Booking, error)
	Pay(ctx context.Context, customerID, paymentID string, method entities.PaymentMethod) (entities.Payment, error)
	Cancel(ctx context.Context, customerID, paymentID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(paymentRepo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, bookingRepo: bookingRepo, gateway: gateway}
}

// GetPayment returns a pending payment together with its confirmed booking,
// applying the same ownership and fraud checks as the transitions.
func (u *PaymentUseCase) GetPayment(ctx context.Context, customerID, paymentID string) (entities.Payment, entities.Booking, error) {
	p, err := u.getOwned(ctx, customerID, paymentID)
	if err != nil {
		return entities.Payment{}, entities.Booking{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, entities.Booking{}, ErrPaymentNotPending
	}

	b, err := u.confirmedBooking(ctx, p)
	if err != nil {
		return entities.Payment{}, entities.Booking{}, err
	}
	return p, b, nil
}

// Pay settles a pending payment. Side effects: the payment method is
// recorded (credit card when unspecified), the customer is charged the
// total through the gateway, and the booking flips to active in the same
// transactional write as the payment flip.
func (u *PaymentUseCase) Pay(ctx context.Context, customerID, paymentID string, method entities.PaymentMethod) (entities.Payment, error) {
	p, err := u.getOwned(ctx, customerID, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, ErrPaymentNotPending
	}

	b, err := u.confirmedBooking(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	if method == "" {
		method = entities.PaymentMethodCreditCard
	}

	if u.gateway != nil {
		if err := u.charge(ctx, p, method); err != nil {
			log.Printf("[payment][usecase] gateway charge failed payment_id=%s err=%v", p.ID, err)
			return entities.Payment{}, err
		}
	}

	updated, err := u.paymentRepo.MarkPaid(ctx, p.ID, method, b.ID, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][usecase] pay failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		// Conditional write lost: either the payment left pending or the
		// booking left confirmed since our reads. Re-check to report which.
		return entities.Payment{}, u.classifyLostWrite(ctx, p)
	}

	log.Printf("[payment][usecase] pay success payment_id=%s booking_id=%s method=%s total=%d", updated.ID, b.ID, method, updated.TotalAmount())
	return updated, nil
}

// Cancel voids a pending payment; the booking flips to cancelled in
// lockstep.
func (u *PaymentUseCase) Cancel(ctx context.Context, customerID, paymentID string) (entities.Payment, error) {
	p, err := u.getOwned(ctx, customerID, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, ErrPaymentNotPending
	}

	b, err := u.confirmedBooking(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}

	updated, err := u.paymentRepo.MarkCancelled(ctx, p.ID, b.ID, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][usecase] cancel failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, u.classifyLostWrite(ctx, p)
	}

	log.Printf("[payment][usecase] cancel success payment_id=%s booking_id=%s", updated.ID, b.ID)
	return updated, nil
}

func (u *PaymentUseCase) charge(ctx context.Context, p entities.Payment, method entities.PaymentMethod) error {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": float64(p.TotalAmount()) / 100,
		"payment_method_id":  string(method),
		"external_reference": p.BookingID,
		"description":        "Booking " + p.BookingID,
	})
	if err != nil {
		return err
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		if isGatewayUnauthorized(err) {
			return ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return ErrPaymentGatewayBadRequest
		}
		return err
	}
	log.Printf("[payment][usecase] gateway charge success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerID, providerStatus)
	return nil
}

func (u *PaymentUseCase) classifyLostWrite(ctx context.Context, p entities.Payment) error {
	current, err := u.paymentRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if current.ID != "" && current.Status != entities.PaymentStatusPending {
		return ErrPaymentNotPending
	}
	return ErrBookingFraud
}

func (u *PaymentUseCase) getOwned(ctx context.Context, customerID, paymentID string) (entities.Payment, error) {
	customerID = strings.TrimSpace(customerID)
	paymentID = strings.TrimSpace(paymentID)
	if customerID == "" {
		return entities.Payment{}, ErrInvalidActorID
	}
	if paymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	// A payment owned by someone else is reported as not found, not as
	// forbidden, to avoid confirming its existence.
	if p.ID == "" || p.CustomerID != customerID {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) confirmedBooking(ctx context.Context, p entities.Payment) (entities.Booking, error) {
	b, err := u.bookingRepo.GetByID(ctx, p.BookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" || b.Status != entities.BookingStatusConfirmed {
		return entities.Booking{}, ErrBookingFraud
	}
	return b, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
