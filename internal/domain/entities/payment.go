package entities

import "time"

// PaymentStatus is the payment lifecycle state. Both paid and cancelled are
// terminal: a payment that left pending is immutable.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod is how the customer settled the payment.

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPaypal     PaymentMethod = "paypal"
	PaymentMethodUPI        PaymentMethod = "upi"
)

// Payment is the settlement record for one booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (booking_id-index): booking_id
//
// Amount and the three fees are frozen at creation (the pending->confirmed
// transition of the owning booking) and never recomputed, even if category
// rates change afterwards. All values are integer minor currency units.
// Discount defaults to 0 and is reserved for promotional logic.

type Payment struct {
	ID             string        `json:"id"`
	BookingID      string        `json:"booking_id"`
	CustomerID     string        `json:"customer_id"`
	Status         PaymentStatus `json:"status"`
	Amount         int64         `json:"amount"`
	CommissionFee  int64         `json:"commission_fee"`
	PlatformFee    int64         `json:"platform_fee"`
	TransactionFee int64         `json:"transaction_fee"`
	Discount       int64         `json:"discount"`
	Method         PaymentMethod `json:"method,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TotalAmount is what the customer owes: base amount plus the platform and
// transaction fees, less any discount.
func (p Payment) TotalAmount() int64 {
	return p.Amount + p.PlatformFee + p.TransactionFee - p.Discount
}

// FinalProviderAmount is the provider's earnings after commission.
func (p Payment) FinalProviderAmount() int64 {
	return p.Amount - p.CommissionFee
}

// FinalAdminAmount is the platform's take across all three fees.
func (p Payment) FinalAdminAmount() int64 {
	return p.CommissionFee + p.PlatformFee + p.TransactionFee
}
