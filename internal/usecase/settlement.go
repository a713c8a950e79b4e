package usecase

import "servease/internal/domain/entities"

// Settlement is the fee breakdown computed once, at the pending->confirmed
// transition of a booking. The values are frozen onto the Payment and never
// recomputed, so a rate change cannot move a booking already in flight.

type Settlement struct {
	Amount         int64
	CommissionFee  int64
	PlatformFee    int64
	TransactionFee int64
}

// ComputeSettlement derives the settlement from the service economics and
// the category rates:
//
//	amount         = price * durationHours
//	commissionFee  = round(commissionRate  * amount / 100)
//	platformFee    = round(bookingRate     * amount / 100)
//	transactionFee = round(transactionRate * amount / 100)
//
// Rounding is round-half-to-even, applied identically to all three fees.
func ComputeSettlement(price int64, durationHours int, c entities.Category) Settlement {
	amount := price * int64(durationHours)
	return Settlement{
		Amount:         amount,
		CommissionFee:  roundPercent(c.CommissionRate, amount),
		PlatformFee:    roundPercent(c.BookingRate, amount),
		TransactionFee: roundPercent(c.TransactionRate, amount),
	}
}

// roundPercent computes round(rate*amount/100) with banker's rounding in
// integer arithmetic. rate and amount are non-negative.
func roundPercent(rate int, amount int64) int64 {
	v := int64(rate) * amount
	q, r := v/100, v%100
	if r > 50 || (r == 50 && q%2 == 1) {
		q++
	}
	return q
}
