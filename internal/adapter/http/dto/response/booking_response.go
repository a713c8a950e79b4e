package response

import (
	"time"

	"servease/internal/domain/entities"
)

type BookingResponse struct {
	BookingID       string     `json:"booking_id"`
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	ServiceID       string     `json:"service_id"`
	ProviderID      string     `json:"provider_id"`
	Status          string     `json:"status"`
	BookDate        time.Time  `json:"book_date"`
	FulfillmentDate time.Time  `json:"fulfillment_date"`
	ConfirmDate     *time.Time `json:"confirm_date,omitempty"`
	CompleteDate    *time.Time `json:"complete_date,omitempty"`
	ClosedDate      *time.Time `json:"closed_date,omitempty"`
	Remark          string     `json:"remark,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       b.ID,
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		ProviderID:      b.ProviderID,
		Status:          string(b.Status),
		BookDate:        b.BookDate,
		FulfillmentDate: b.FulfillmentDate,
		ConfirmDate:     b.ConfirmDate,
		CompleteDate:    b.CompleteDate,
		ClosedDate:      b.ClosedDate,
		Remark:          b.Remark,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type ReviewResponse struct {
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		BookingID:  r.BookingID,
		CustomerID: r.CustomerID,
		ProviderID: r.ProviderID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
