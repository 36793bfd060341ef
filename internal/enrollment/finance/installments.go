package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Weekend handling policies for due dates.
const (
	WeekendShiftBefore = "before"
	WeekendShiftAfter  = "after"
	WeekendKeep        = "keep"
)

// ScheduleConfig drives the installment due-date generation.
type ScheduleConfig struct {
	// Start anchors the schedule; the first installment is due one month
	// after it. Zero means time.Now().
	Start time.Time
	// PreferredDay is the desired day of month (clamped to month length).
	PreferredDay int
	// WeekendPolicy shifts dues falling on Saturday/Sunday.
	WeekendPolicy string
	// FirstInstallmentValue overrides the first installment, e.g. to absorb
	// a one-time fee. Nil keeps all installments equal.
	FirstInstallmentValue *decimal.Decimal
}

// BuildPlan produces the ordered due-date schedule for a monthly value. All
// installments share the regular value unless a first-installment override is
// configured; without an override the plan total equals monthly × n.
func BuildPlan(monthly decimal.Decimal, n int, cfg ScheduleConfig) types.InstallmentPlan {
	if n < 1 {
		n = 1
	}

	start := cfg.Start
	if start.IsZero() {
		start = time.Now()
	}
	day := cfg.PreferredDay
	if day < 1 || day > 28 {
		day = 5
	}

	first := monthly
	if cfg.FirstInstallmentValue != nil {
		first = *cfg.FirstInstallmentValue
	}

	installments := make([]types.InstallmentDetails, 0, n)
	for i := 0; i < n; i++ {
		value := monthly
		if i == 0 {
			value = first
		}
		installments = append(installments, types.InstallmentDetails{
			Number:  i + 1,
			DueDate: dueDate(start, i+1, day, cfg.WeekendPolicy),
			Value:   value,
		})
	}

	total := first.Add(monthly.Mul(decimal.NewFromInt(int64(n - 1))))

	return types.InstallmentPlan{
		NumberOfInstallments:    n,
		Installments:            installments,
		FirstInstallmentValue:   first,
		RegularInstallmentValue: monthly,
		TotalValue:              total,
	}
}

// dueDate computes the due date of the monthsAhead-th installment, shifting
// weekend dues per the configured policy.
func dueDate(start time.Time, monthsAhead, day int, policy string) time.Time {
	due := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, monthsAhead, day-1)

	switch policy {
	case WeekendShiftBefore:
		for isWeekend(due) {
			due = due.AddDate(0, 0, -1)
		}
	case WeekendShiftAfter:
		for isWeekend(due) {
			due = due.AddDate(0, 0, 1)
		}
	}
	return due
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
