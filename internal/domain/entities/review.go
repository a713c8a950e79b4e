package entities

import "time"

// Review is the customer's rating of a completed booking.
//
// Storage model (DynamoDB):
//   - PK: booking_id
//   - GSI (provider_id-index): provider_id
//
// Using the booking id as the primary key guarantees at most one review per
// booking without a separate uniqueness check.

type Review struct {
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
