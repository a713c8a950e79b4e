package request

// CategoryRequest covers both category creation and update. All monetary
// values are integer minor currency units; rates are whole percentages.
type CategoryRequest struct {
	Name            string `json:"name" binding:"required"`
	BasePrice       int64  `json:"base_price" binding:"required"`
	MinTimeHours    int    `json:"min_time_hours" binding:"required"`
	CommissionRate  int    `json:"commission_rate"`
	BookingRate     int    `json:"booking_rate"`
	TransactionRate int    `json:"transaction_rate"`
}

type RegisterProviderRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

type RegisterCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type CreateServiceRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Price         int64  `json:"price" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required"`
}
