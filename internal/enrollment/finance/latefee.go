package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// LateFeeConfig holds the penalty rates for overdue installments.
type LateFeeConfig struct {
	// FinePercent is the flat one-time fine, e.g. 2 for 2%.
	FinePercent float64
	// DailyInterestPercent is the simple daily rate, e.g. 0.033 for 0,033%
	// a day (roughly 1% a month). Interest does not compound.
	DailyInterestPercent float64
}

// DefaultLateFeeConfig matches the school's standard contract terms.
var DefaultLateFeeConfig = LateFeeConfig{
	FinePercent:          2,
	DailyInterestPercent: 0.033,
}

// CalculateLateFees computes the fine and simple interest for an overdue
// installment. A zero paymentDate means now; paying on or before the due date
// zeroes every penalty field.
func CalculateLateFees(monthlyValue decimal.Decimal, dueDate, paymentDate time.Time, cfg LateFeeConfig) types.LatePaymentFees {
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	daysLate := int(paymentDate.Sub(dueDate).Hours() / 24)
	if daysLate <= 0 {
		return types.LatePaymentFees{
			FineAmount:       decimal.Zero,
			InterestAmount:   decimal.Zero,
			TotalPenalty:     decimal.Zero,
			TotalWithPenalty: monthlyValue,
		}
	}

	fine := percentOf(monthlyValue, cfg.FinePercent)
	interest := monthlyValue.
		Mul(decimal.NewFromFloat(cfg.DailyInterestPercent)).
		Div(hundred).
		Mul(decimal.NewFromInt(int64(daysLate))).
		Round(2)
	penalty := fine.Add(interest)

	return types.LatePaymentFees{
		DaysLate:         daysLate,
		FineAmount:       fine,
		InterestAmount:   interest,
		TotalPenalty:     penalty,
		TotalWithPenalty: monthlyValue.Add(penalty),
	}
}
