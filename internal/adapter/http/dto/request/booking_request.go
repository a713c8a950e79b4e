package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidBookingDates = errors.New("invalid booking dates")

// CreateBookingRequest is the customer-facing booking payload. Dates are
// RFC3339 strings; fulfillment must not precede the booking date, but that
// rule lives in the use case, not here.
type CreateBookingRequest struct {
	ServiceID       string `json:"service_id" binding:"required"`
	BookDate        string `json:"book_date" binding:"required"`
	FulfillmentDate string `json:"fulfillment_date" binding:"required"`
	Remark          string `json:"remark"`
}

func (r CreateBookingRequest) ResolveDates() (bookDate, fulfillmentDate time.Time, err error) {
	bookDate, err = time.Parse(time.RFC3339, strings.TrimSpace(r.BookDate))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidBookingDates
	}
	fulfillmentDate, err = time.Parse(time.RFC3339, strings.TrimSpace(r.FulfillmentDate))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidBookingDates
	}
	return bookDate, fulfillmentDate, nil
}

type PayPaymentRequest struct {
	Method string `json:"method"`
}

type CreateReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
