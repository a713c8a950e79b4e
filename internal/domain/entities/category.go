package entities

import "time"

// Category is an admin-owned service category carrying the rate configuration
// used by the settlement calculator.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Rates are whole-number percentages applied to the booking amount:
//   - CommissionRate: platform's cut of provider earnings
//   - BookingRate: platform fee charged on top of the booking
//   - TransactionRate: payment-processing fee
//
// BasePrice is the floor for service prices in the category, in minor
// currency units.

type Category struct {
	ID              string    `json:"id"`
	AdminID         string    `json:"admin_id"`
	Name            string    `json:"name"`
	BasePrice       int64     `json:"base_price"`
	MinTimeHours    int       `json:"min_time_hours"`
	CommissionRate  int       `json:"commission_rate"`
	BookingRate     int       `json:"booking_rate"`
	TransactionRate int       `json:"transaction_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
