package response

import (
	"time"

	"servease/internal/domain/entities"
)

// PaymentResponse exposes the frozen fee breakdown plus the derived totals
// clients expect alongside it.
type PaymentResponse struct {
	PaymentID           string    `json:"payment_id"`
	ID                  string    `json:"id"`
	BookingID           string    `json:"booking_id"`
	CustomerID          string    `json:"customer_id"`
	Status              string    `json:"status"`
	Amount              int64     `json:"amount"`
	CommissionFee       int64     `json:"commission_fee"`
	PlatformFee         int64     `json:"platform_fee"`
	TransactionFee      int64     `json:"transaction_fee"`
	Discount            int64     `json:"discount"`
	TotalAmount         int64     `json:"total_amount"`
	FinalProviderAmount int64     `json:"final_provider_amount"`
	FinalAdminAmount    int64     `json:"final_admin_amount"`
	Method              string    `json:"method,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:           p.ID,
		ID:                  p.ID,
		BookingID:           p.BookingID,
		CustomerID:          p.CustomerID,
		Status:              string(p.Status),
		Amount:              p.Amount,
		CommissionFee:       p.CommissionFee,
		PlatformFee:         p.PlatformFee,
		TransactionFee:      p.TransactionFee,
		Discount:            p.Discount,
		TotalAmount:         p.TotalAmount(),
		FinalProviderAmount: p.FinalProviderAmount(),
		FinalAdminAmount:    p.FinalAdminAmount(),
		Method:              string(p.Method),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// PaymentWithBookingResponse is the checkout snapshot: the pending payment
// together with its confirmed booking.
type PaymentWithBookingResponse struct {
	Payment PaymentResponse `json:"payment"`
	Booking BookingResponse `json:"booking"`
}

func FromPaymentWithBooking(p entities.Payment, b entities.Booking) PaymentWithBookingResponse {
	return PaymentWithBookingResponse{
		Payment: FromPayment(p),
		Booking: FromBooking(b),
	}
}
