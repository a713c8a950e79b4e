package handlers

import (
	"errors"
	"log"
	"net/http"

	request "servease/internal/adapter/http/dto/request"
	response "servease/internal/adapter/http/dto/response"
	"servease/internal/domain/entities"
	"servease/internal/usecase"
	"servease/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the payment state machine.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetPayment godoc
// @Summary      Get a pending payment
// @Description  Returns the pending payment together with its confirmed booking.
// @Tags         payments
// @Produce      json
// @Param        cust_id     path      string  true  "Customer ID"
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.PaymentWithBookingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	customerID := c.Param("cust_id")
	paymentID := c.Param("payment_id")

	p, b, err := h.usecase.GetPayment(c.Request.Context(), customerID, paymentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentWithBooking(p, b))
}

// PayPayment godoc
// @Summary      Settle a pending payment
// @Description  Charges the customer through the gateway and flips the booking to active.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        cust_id     path      string                     true   "Customer ID"
// @Param        payment_id  path      string                     true   "Payment ID"
// @Param        payload     body      request.PayPaymentRequest  false  "Payment method"
// @Success      200         {object}  response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/payments/{payment_id} [patch]
func (h *PaymentHandler) PayPayment(c *gin.Context) {
	customerID := c.Param("cust_id")
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] pay start payment_id=%s", paymentID)

	// The body is optional: an empty one means the default payment method.
	var payload request.PayPaymentRequest
	_ = c.ShouldBindJSON(&payload)

	p, err := h.usecase.Pay(c.Request.Context(), customerID, paymentID, entities.PaymentMethod(payload.Method))
	if err != nil {
		log.Printf("[payment][handler] pay failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// CancelPayment godoc
// @Summary      Cancel a pending payment
// @Description  Voids the payment and cancels its booking in the same transaction.
// @Tags         payments
// @Produce      json
// @Param        cust_id     path      string  true  "Customer ID"
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /customers/{cust_id}/payments/{payment_id} [delete]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	customerID := c.Param("cust_id")
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] cancel start payment_id=%s", paymentID)

	p, err := h.usecase.Cancel(c.Request.Context(), customerID, paymentID)
	if err != nil {
		log.Printf("[payment][handler] cancel failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] cancel success payment_id=%s", p.ID)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActorID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is either paid or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingFraud):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_CONFIRMED", "Payment references a booking that is not confirmed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
