package entities

import "time"

// Customer books services. A blocked customer cannot create bookings or pay.
//
// Storage model (DynamoDB):
//   - PK: id

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
