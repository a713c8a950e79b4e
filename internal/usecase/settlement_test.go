package usecase

import (
	"testing"

	"servease/internal/domain/entities"
)

func TestComputeSettlement(t *testing.T) {
	t.Run("reference breakdown", func(t *testing.T) {
		cat := entities.Category{CommissionRate: 6, BookingRate: 5, TransactionRate: 1}
		s := ComputeSettlement(100, 2, cat)

		if s.Amount != 200 {
			t.Fatalf("expected amount 200, got %d", s.Amount)
		}
		if s.CommissionFee != 12 {
			t.Fatalf("expected commission 12, got %d", s.CommissionFee)
		}
		if s.PlatformFee != 10 {
			t.Fatalf("expected platform fee 10, got %d", s.PlatformFee)
		}
		if s.TransactionFee != 2 {
			t.Fatalf("expected transaction fee 2, got %d", s.TransactionFee)
		}

		p := entities.Payment{
			Amount:         s.Amount,
			CommissionFee:  s.CommissionFee,
			PlatformFee:    s.PlatformFee,
			TransactionFee: s.TransactionFee,
		}
		if got := p.TotalAmount(); got != 212 {
			t.Fatalf("expected total 212, got %d", got)
		}
		if got := p.FinalProviderAmount(); got != 188 {
			t.Fatalf("expected provider amount 188, got %d", got)
		}
		if got := p.FinalAdminAmount(); got != 24 {
			t.Fatalf("expected admin amount 24, got %d", got)
		}
	})

	t.Run("zero rates", func(t *testing.T) {
		s := ComputeSettlement(500, 3, entities.Category{})
		if s.Amount != 1500 {
			t.Fatalf("expected amount 1500, got %d", s.Amount)
		}
		if s.CommissionFee != 0 || s.PlatformFee != 0 || s.TransactionFee != 0 {
			t.Fatalf("expected zero fees, got %+v", s)
		}
	})

	t.Run("half to even rounding", func(t *testing.T) {
		// 3% of 150 = 4.50, even quotient stays at 4.
		if got := roundPercent(3, 150); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
		// 7% of 50 = 3.50, odd quotient bumps to 4.
		if got := roundPercent(7, 50); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
		// Above the midpoint always rounds up.
		if got := roundPercent(3, 151); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
		// Below the midpoint always rounds down.
		if got := roundPercent(3, 149); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})

	t.Run("identical rounding across fees", func(t *testing.T) {
		cat := entities.Category{CommissionRate: 3, BookingRate: 3, TransactionRate: 3}
		s := ComputeSettlement(150, 1, cat)
		if s.CommissionFee != s.PlatformFee || s.PlatformFee != s.TransactionFee {
			t.Fatalf("expected equal fees, got %+v", s)
		}
	})
}
