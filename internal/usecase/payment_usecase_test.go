package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"servease/internal/domain/entities"
	mock_interfaces "servease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentUseCase(paymentRepo, bookingRepo, gateway), paymentRepo, bookingRepo, gateway
}

func pendingPaymentFixture() entities.Payment {
	return entities.Payment{
		ID:             "pay-1",
		BookingID:      "book-1",
		CustomerID:     "cust-1",
		Status:         entities.PaymentStatusPending,
		Amount:         200,
		CommissionFee:  12,
		PlatformFee:    10,
		TransactionFee: 2,
	}
}

func confirmedBookingFixture() entities.Booking {
	return entities.Booking{ID: "book-1", CustomerID: "cust-1", ProviderID: "prov-1", Status: entities.BookingStatusConfirmed}
}

func TestPaymentUseCase_GetPayment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, paymentRepo, _, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, _, err := uc.GetPayment(context.Background(), "cust-1", "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("foreign payment reported as not found", func(t *testing.T) {
		uc, paymentRepo, _, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)

		_, _, err := uc.GetPayment(context.Background(), "cust-2", "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("settled payment rejected", func(t *testing.T) {
		paid := pendingPaymentFixture()
		paid.Status = entities.PaymentStatusPaid

		uc, paymentRepo, _, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(paid, nil)

		_, _, err := uc.GetPayment(context.Background(), "cust-1", "pay-1")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("booking no longer confirmed", func(t *testing.T) {
		b := confirmedBookingFixture()
		b.Status = entities.BookingStatusCancelled

		uc, paymentRepo, bookingRepo, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(b, nil)

		_, _, err := uc.GetPayment(context.Background(), "cust-1", "pay-1")
		if !errors.Is(err, ErrBookingFraud) {
			t.Fatalf("expected ErrBookingFraud, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, paymentRepo, bookingRepo, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)

		p, b, err := uc.GetPayment(context.Background(), "cust-1", "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pay-1" || b.ID != "book-1" {
			t.Fatalf("unexpected result: payment=%s booking=%s", p.ID, b.ID)
		}
	})
}

func TestPaymentUseCase_Pay(t *testing.T) {
	t.Run("defaults to credit card and charges total", func(t *testing.T) {
		uc, paymentRepo, bookingRepo, gateway := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("bad gateway payload: %v", err)
				}
				if req["payment_method_id"] != "credit_card" {
					t.Fatalf("expected credit_card default, got %v", req["payment_method_id"])
				}
				if req["transaction_amount"] != 2.12 {
					t.Fatalf("expected major-unit total 2.12, got %v", req["transaction_amount"])
				}
				return "mp-1", "approved", json.RawMessage(`{}`), nil
			})
		paid := pendingPaymentFixture()
		paid.Status = entities.PaymentStatusPaid
		paid.Method = entities.PaymentMethodCreditCard
		paymentRepo.EXPECT().MarkPaid(gomock.Any(), "pay-1", entities.PaymentMethodCreditCard, "book-1", gomock.Any()).Return(paid, nil)

		p, err := uc.Pay(context.Background(), "cust-1", "pay-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %s", p.Status)
		}
	})

	t.Run("pay again rejected", func(t *testing.T) {
		paid := pendingPaymentFixture()
		paid.Status = entities.PaymentStatusPaid

		uc, paymentRepo, _, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(paid, nil)

		_, err := uc.Pay(context.Background(), "cust-1", "pay-1", entities.PaymentMethodUPI)
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("gateway unauthorized stops before state flip", func(t *testing.T) {
		uc, paymentRepo, bookingRepo, gateway := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.Pay(context.Background(), "cust-1", "pay-1", entities.PaymentMethodPaypal)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("lost write classified as not pending", func(t *testing.T) {
		uc, paymentRepo, bookingRepo, gateway := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		paymentRepo.EXPECT().MarkPaid(gomock.Any(), "pay-1", entities.PaymentMethodCreditCard, "book-1", gomock.Any()).Return(entities.Payment{}, nil)

		cancelled := pendingPaymentFixture()
		cancelled.Status = entities.PaymentStatusCancelled
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(cancelled, nil)

		_, err := uc.Pay(context.Background(), "cust-1", "pay-1", entities.PaymentMethodCreditCard)
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("lost write classified as booking fraud", func(t *testing.T) {
		uc, paymentRepo, bookingRepo, gateway := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		paymentRepo.EXPECT().MarkPaid(gomock.Any(), "pay-1", entities.PaymentMethodCreditCard, "book-1", gomock.Any()).Return(entities.Payment{}, nil)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)

		_, err := uc.Pay(context.Background(), "cust-1", "pay-1", entities.PaymentMethodCreditCard)
		if !errors.Is(err, ErrBookingFraud) {
			t.Fatalf("expected ErrBookingFraud, got %v", err)
		}
	})
}

func TestPaymentUseCase_Cancel(t *testing.T) {
	t.Run("pending cancels", func(t *testing.T) {
		cancelled := pendingPaymentFixture()
		cancelled.Status = entities.PaymentStatusCancelled

		uc, paymentRepo, bookingRepo, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(confirmedBookingFixture(), nil)
		paymentRepo.EXPECT().MarkCancelled(gomock.Any(), "pay-1", "book-1", gomock.Any()).Return(cancelled, nil)

		p, err := uc.Cancel(context.Background(), "cust-1", "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusCancelled {
			t.Fatalf("expected cancelled, got %s", p.Status)
		}
	})

	t.Run("cancel after booking went active", func(t *testing.T) {
		b := confirmedBookingFixture()
		b.Status = entities.BookingStatusActive

		uc, paymentRepo, bookingRepo, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pendingPaymentFixture(), nil)
		bookingRepo.EXPECT().GetByID(gomock.Any(), "book-1").Return(b, nil)

		_, err := uc.Cancel(context.Background(), "cust-1", "pay-1")
		if !errors.Is(err, ErrBookingFraud) {
			t.Fatalf("expected ErrBookingFraud, got %v", err)
		}
	})

	t.Run("cancel a cancelled payment", func(t *testing.T) {
		cancelled := pendingPaymentFixture()
		cancelled.Status = entities.PaymentStatusCancelled

		uc, paymentRepo, _, _ := newPaymentUseCaseForTest(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(cancelled, nil)

		_, err := uc.Cancel(context.Background(), "cust-1", "pay-1")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})
}
