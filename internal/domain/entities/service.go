package entities

import "time"

// Service is a bookable offering owned by exactly one provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (provider_id-index): provider_id
//
// Price is in minor currency units and must be at or above the category base
// price at creation time. IsActive is the provider's toggle; IsApproved and
// IsBlocked are the admin's. IsActive may only be true while the service is
// approved and not blocked.

type Service struct {
	ID            string     `json:"id"`
	ProviderID    string     `json:"provider_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         int64      `json:"price"`
	DurationHours int        `json:"duration_hours"`
	IsApproved    bool       `json:"is_approved"`
	IsBlocked     bool       `json:"is_blocked"`
	IsActive      bool       `json:"is_active"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Bookable is the moderation gate: every booking-creating operation must
// evaluate it against live state, never a cached copy.
func (s Service) Bookable(p Provider) bool {
	return s.IsApproved && !s.IsBlocked && s.IsActive && p.IsApproved && !p.IsBlocked
}
