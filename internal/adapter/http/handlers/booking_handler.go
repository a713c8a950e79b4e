package handlers

import (
	"errors"
	"log"
	"net/http"

	request "servease/internal/adapter/http/dto/request"
	response "servease/internal/adapter/http/dto/response"
	"servease/internal/usecase"
	"servease/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Creates a pending booking for a bookable service.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        cust_id  path      string                        true  "Customer ID"
// @Param        payload  body      request.CreateBookingRequest  true  "Booking payload"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	customerID := c.Param("cust_id")

	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	bookDate, fulfillmentDate, err := payload.ResolveDates()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	log.Printf("[booking][handler] create start customer_id=%s service_id=%s", customerID, payload.ServiceID)
	b, err := h.usecase.CreateBooking(c.Request.Context(), customerID, payload.ServiceID, bookDate, fulfillmentDate, payload.Remark)
	if err != nil {
		log.Printf("[booking][handler] create failed customer_id=%s err=%v", customerID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// ConfirmBooking godoc
// @Summary      Confirm a booking
// @Description  Confirms a pending booking and creates its pending payment. Idempotent on re-confirm.
// @Tags         bookings
// @Produce      json
// @Param        prov_id     path      string  true  "Provider ID"
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/bookings/{booking_id}/confirm [patch]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, "confirm", func() (interface{}, error) {
		b, err := h.usecase.ConfirmBooking(c.Request.Context(), c.Param("prov_id"), c.Param("booking_id"))
		return response.FromBooking(b), err
	})
}

// RejectBooking godoc
// @Summary      Reject a booking
// @Tags         bookings
// @Produce      json
// @Param        prov_id     path      string  true  "Provider ID"
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/bookings/{booking_id} [delete]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.transition(c, "reject", func() (interface{}, error) {
		b, err := h.usecase.RejectBooking(c.Request.Context(), c.Param("prov_id"), c.Param("booking_id"))
		return response.FromBooking(b), err
	})
}

// CompleteBooking godoc
// @Summary      Complete a booking
// @Tags         bookings
// @Produce      json
// @Param        cust_id     path      string  true  "Customer ID"
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/bookings/{booking_id}/complete [patch]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, "complete", func() (interface{}, error) {
		b, err := h.usecase.CompleteBooking(c.Request.Context(), c.Param("cust_id"), c.Param("booking_id"))
		return response.FromBooking(b), err
	})
}

// CloseBooking godoc
// @Summary      Close a booking
// @Description  Acknowledges a completed booking, flipping it to the terminal closed state. Idempotent.
// @Tags         bookings
// @Produce      json
// @Param        prov_id     path      string  true  "Provider ID"
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /providers/{prov_id}/bookings/{booking_id}/close [patch]
func (h *BookingHandler) CloseBooking(c *gin.Context) {
	h.transition(c, "close", func() (interface{}, error) {
		b, err := h.usecase.CloseBooking(c.Request.Context(), c.Param("prov_id"), c.Param("booking_id"))
		return response.FromBooking(b), err
	})
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.BookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	b, err := h.usecase.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// CreateReview godoc
// @Summary      Review a booking
// @Description  Records the customer's rating of a completed or closed booking. One review per booking.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        cust_id     path      string                       true  "Customer ID"
// @Param        booking_id  path      string                       true  "Booking ID"
// @Param        payload     body      request.CreateReviewRequest  true  "Review payload"
// @Success      201         {object}  response.ReviewResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/bookings/{booking_id}/review [post]
func (h *BookingHandler) CreateReview(c *gin.Context) {
	customerID := c.Param("cust_id")
	bookingID := c.Param("booking_id")

	var payload request.CreateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Rating == nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.CreateReview(c.Request.Context(), customerID, bookingID, *payload.Rating, payload.Comment)
	if err != nil {
		log.Printf("[booking][handler] review failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(r))
}

func (h *BookingHandler) transition(c *gin.Context, op string, run func() (interface{}, error)) {
	bookingID := c.Param("booking_id")
	log.Printf("[booking][handler] %s start booking_id=%s", op, bookingID)

	body, err := run()
	if err != nil {
		log.Printf("[booking][handler] %s failed booking_id=%s err=%v", op, bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] %s success booking_id=%s", op, bookingID)

	c.JSON(http.StatusOK, body)
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrMissingDates),
		errors.Is(err, usecase.ErrInvalidDateOrder),
		errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor does not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotBookable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_BOOKABLE", "Service is not bookable", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerBlocked):
		return pkg.NewDomainErrorSimple("CUSTOMER_BLOCKED", "Customer is blocked", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotReviewed):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_COMPLETED", "Booking is not completed yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainErrorSimple("REVIEW_ALREADY_EXISTS", "Review already exists for this booking", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
