package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"servease/internal/adapter/http/handlers/mocks"
	"servease/internal/domain/entities"
	"servease/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:cust_id/payments/:payment_id", h.GetPayment)

		uc.EXPECT().GetPayment(gomock.Any(), "cust-1", "missing").Return(entities.Payment{}, entities.Booking{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cust-1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns payment with booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:cust_id/payments/:payment_id", h.GetPayment)

		p := entities.Payment{ID: "pay-1", BookingID: "book-1", CustomerID: "cust-1", Status: entities.PaymentStatusPending, Amount: 200, CommissionFee: 12, PlatformFee: 10, TransactionFee: 2}
		b := entities.Booking{ID: "book-1", CustomerID: "cust-1", Status: entities.BookingStatusConfirmed}
		uc.EXPECT().GetPayment(gomock.Any(), "cust-1", "pay-1").Return(p, b, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Payment map[string]any `json:"payment"`
			Booking map[string]any `json:"booking"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Payment["payment_id"] != "pay-1" || body.Booking["booking_id"] != "book-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Payment["total_amount"] != float64(212) {
			t.Fatalf("expected total 212, got body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_PayPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body defaults method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:cust_id/payments/:payment_id", h.PayPayment)

		uc.EXPECT().Pay(gomock.Any(), "cust-1", "pay-1", entities.PaymentMethod("")).
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid, Method: entities.PaymentMethodCreditCard}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" || body["method"] != "credit_card" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("explicit method forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:cust_id/payments/:payment_id", h.PayPayment)

		uc.EXPECT().Pay(gomock.Any(), "cust-1", "pay-1", entities.PaymentMethodPaypal).
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid, Method: entities.PaymentMethodPaypal}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cust-1/payments/pay-1", bytes.NewBufferString(`{"method":"paypal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:cust_id/payments/:payment_id", h.PayPayment)

		uc.EXPECT().Pay(gomock.Any(), "cust-1", "pay-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:cust_id/payments/:payment_id", h.PayPayment)

		uc.EXPECT().Pay(gomock.Any(), "cust-1", "pay-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CancelPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:cust_id/payments/:payment_id", h.CancelPayment)

		uc.EXPECT().Cancel(gomock.Any(), "cust-1", "pay-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "cancelled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("booking already active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/customers/:cust_id/payments/:payment_id", h.CancelPayment)

		uc.EXPECT().Cancel(gomock.Any(), "cust-1", "pay-1").Return(entities.Payment{}, usecase.ErrBookingFraud)

		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cust-1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidActorID, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrPaymentNotPending, http.StatusConflict},
		{usecase.ErrBookingFraud, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
