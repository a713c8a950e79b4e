package response

import (
	"time"

	"servease/internal/domain/entities"
)

type CategoryResponse struct {
	CategoryID      string    `json:"category_id"`
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BasePrice       int64     `json:"base_price"`
	MinTimeHours    int       `json:"min_time_hours"`
	CommissionRate  int       `json:"commission_rate"`
	BookingRate     int       `json:"booking_rate"`
	TransactionRate int       `json:"transaction_rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:      c.ID,
		ID:              c.ID,
		Name:            c.Name,
		BasePrice:       c.BasePrice,
		MinTimeHours:    c.MinTimeHours,
		CommissionRate:  c.CommissionRate,
		BookingRate:     c.BookingRate,
		TransactionRate: c.TransactionRate,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type ProviderResponse struct {
	ProviderID string     `json:"provider_id"`
	ID         string     `json:"id"`
	CategoryID string     `json:"category_id"`
	Name       string     `json:"name"`
	IsApproved bool       `json:"is_approved"`
	IsBlocked  bool       `json:"is_blocked"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromProvider(p entities.Provider) ProviderResponse {
	return ProviderResponse{
		ProviderID: p.ID,
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		IsApproved: p.IsApproved,
		IsBlocked:  p.IsBlocked,
		ApprovedAt: p.ApprovedAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type ServiceResponse struct {
	ServiceID     string     `json:"service_id"`
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

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:     s.ID,
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		DurationHours: s.DurationHours,
		IsApproved:    s.IsApproved,
		IsBlocked:     s.IsBlocked,
		IsActive:      s.IsActive,
		ApprovedAt:    s.ApprovedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type CustomerResponse struct {
	CustomerID string    `json:"customer_id"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	IsBlocked  bool      `json:"is_blocked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		IsBlocked:  c.IsBlocked,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
