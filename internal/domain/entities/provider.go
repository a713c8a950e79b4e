package entities

import "time"

// Provider is an independent service provider assigned to one category.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Moderation flags are admin-owned. ApprovedAt is stamped once, on the first
// approval, and never cleared; blocking after approval leaves IsApproved set,
// so an unblock restores the provider without a second review.

type Provider struct {
	ID         string     `json:"id"`
	CategoryID string     `json:"category_id"`
	Name       string     `json:"name"`
	IsApproved bool       `json:"is_approved"`
	IsBlocked  bool       `json:"is_blocked"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
