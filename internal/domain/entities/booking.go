package entities

import "time"

// BookingStatus is the booking lifecycle state.
//
// pending -> confirmed -> active -> completed -> closed
// pending -> rejected
// confirmed -> cancelled (via payment cancellation)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusClosed    BookingStatus = "closed"
)

// Booking is a customer's request for a provider's service on a given date.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (provider_id-index): provider_id
//   - GSI (customer_id-index): customer_id
//
// ProviderID is denormalized from the service at creation time so ownership
// checks and provider-scoped queries do not need a join.
//
// A booking exclusively owns at most one Payment (created at the
// pending->confirmed transition, never before) and at most one Review
// (created only after completed/closed).

type Booking struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer_id"`
	ServiceID       string        `json:"service_id"`
	ProviderID      string        `json:"provider_id"`
	Status          BookingStatus `json:"status"`
	IsClosed        bool          `json:"is_closed"`
	BookDate        time.Time     `json:"book_date"`
	FulfillmentDate time.Time     `json:"fulfillment_date"`
	ConfirmDate     *time.Time    `json:"confirm_date,omitempty"`
	CompleteDate    *time.Time    `json:"complete_date,omitempty"`
	ClosedDate      *time.Time    `json:"closed_date,omitempty"`
	Remark          string        `json:"remark,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
