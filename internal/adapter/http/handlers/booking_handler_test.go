package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servease/internal/adapter/http/handlers/mocks"
	"servease/internal/domain/entities"
	"servease/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings", bytes.NewBufferString(`{"service_id":"svc-1","book_date":"yesterday","fulfillment_date":"tomorrow"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not bookable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), "cust-1", "svc-1", gomock.Any(), gomock.Any(), "").Return(entities.Booking{}, usecase.ErrServiceNotBookable)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings", bytes.NewBufferString(`{"service_id":"svc-1","book_date":"2026-03-01T10:00:00Z","fulfillment_date":"2026-03-02T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings", h.CreateBooking)

		bookDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		fulfillment := bookDate.Add(24 * time.Hour)
		uc.EXPECT().CreateBooking(gomock.Any(), "cust-1", "svc-1", bookDate, fulfillment, "front door code 4711").
			Return(entities.Booking{ID: "book-1", CustomerID: "cust-1", ServiceID: "svc-1", ProviderID: "prov-1", Status: entities.BookingStatusPending, BookDate: bookDate, FulfillmentDate: fulfillment}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings", bytes.NewBufferString(`{"service_id":"svc-1","book_date":"2026-03-01T10:00:00Z","fulfillment_date":"2026-03-02T10:00:00Z","remark":"front door code 4711"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["booking_id"] != "book-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/providers/:prov_id/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().ConfirmBooking(gomock.Any(), "prov-1", "book-1").Return(entities.Booking{ID: "book-1", Status: entities.BookingStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/providers/prov-1/bookings/book-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("confirm wrong provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/providers/:prov_id/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().ConfirmBooking(gomock.Any(), "prov-2", "book-1").Return(entities.Booking{}, usecase.ErrNotOwner)

		req := httptest.NewRequest(http.MethodPatch, "/v1/providers/prov-2/bookings/book-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("reject invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.DELETE("/v1/providers/:prov_id/bookings/:booking_id", h.RejectBooking)

		uc.EXPECT().RejectBooking(gomock.Any(), "prov-1", "book-1").Return(entities.Booking{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodDelete, "/v1/providers/prov-1/bookings/book-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:cust_id/bookings/:booking_id/complete", h.CompleteBooking)

		uc.EXPECT().CompleteBooking(gomock.Any(), "cust-1", "book-1").Return(entities.Booking{ID: "book-1", Status: entities.BookingStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cust-1/bookings/book-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("close not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/providers/:prov_id/bookings/:booking_id/close", h.CloseBooking)

		uc.EXPECT().CloseBooking(gomock.Any(), "prov-1", "missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/providers/prov-1/bookings/missing/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_CreateReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings/:booking_id/review", h.CreateReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings/book-1/review", bytes.NewBufferString(`{"comment":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings/:booking_id/review", h.CreateReview)

		uc.EXPECT().CreateReview(gomock.Any(), "cust-1", "book-1", 5, "").Return(entities.Review{}, usecase.ErrReviewAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings/book-1/review", bytes.NewBufferString(`{"rating":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/customers/:cust_id/bookings/:booking_id/review", h.CreateReview)

		uc.EXPECT().CreateReview(gomock.Any(), "cust-1", "book-1", 4, "on time").
			Return(entities.Review{BookingID: "book-1", CustomerID: "cust-1", ProviderID: "prov-1", Rating: 4, Comment: "on time"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cust-1/bookings/book-1/review", bytes.NewBufferString(`{"rating":4,"comment":"on time"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["booking_id"] != "book-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapBookingError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidActorID, http.StatusBadRequest},
		{usecase.ErrMissingDates, http.StatusBadRequest},
		{usecase.ErrInvalidDateOrder, http.StatusBadRequest},
		{usecase.ErrInvalidRating, http.StatusBadRequest},
		{usecase.ErrBookingNotFound, http.StatusNotFound},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrCustomerNotFound, http.StatusNotFound},
		{usecase.ErrNotOwner, http.StatusForbidden},
		{usecase.ErrCustomerBlocked, http.StatusForbidden},
		{usecase.ErrServiceNotBookable, http.StatusConflict},
		{usecase.ErrInvalidTransition, http.StatusConflict},
		{usecase.ErrBookingNotReviewed, http.StatusConflict},
		{usecase.ErrReviewAlreadyExists, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapBookingError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
