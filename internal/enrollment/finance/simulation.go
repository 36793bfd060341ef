package finance

import (
	"sync"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Simulate recomputes the calculation once per enabled payment method, holding
// discounts and installments fixed. Input is copied by value into every
// goroutine, so scenarios share no mutable state and any execution order is
// valid; each goroutine writes only its own slot. The best option is the
// lowest annual total, first-enumerated method winning ties.
func Simulate(in Input, methods []types.PaymentMethod) types.SimulationResult {
	enabled := make([]types.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if m.Ativo {
			enabled = append(enabled, m)
		}
	}
	if len(enabled) == 0 {
		return types.SimulationResult{}
	}

	scenarios := make([]types.PaymentScenario, len(enabled))
	var wg sync.WaitGroup
	for i, method := range enabled {
		wg.Add(1)
		go func(slot int, method types.PaymentMethod, snapshot Input) {
			defer wg.Done()
			snapshot.Method = method
			calc := Calculate(snapshot)
			scenarios[slot] = types.PaymentScenario{
				Method:                method,
				FinalMonthlyValue:     calc.FinalMonthlyValue,
				TotalAnnualValue:      calc.TotalAnnualValue,
				MethodDiscountSavings: calc.PaymentMethodDiscountValue.Mul(decimal.NewFromInt(annualMonths)),
			}
		}(i, method, in)
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].TotalAnnualValue.LessThan(scenarios[best].TotalAnnualValue) {
			best = i
		}
	}

	return types.SimulationResult{
		Scenarios:  scenarios,
		BestOption: scenarios[best],
		Stats:      summarize(scenarios),
	}
}

func summarize(scenarios []types.PaymentScenario) types.SimulationStats {
	annuals := make([]float64, len(scenarios))
	for i, s := range scenarios {
		annuals[i], _ = s.TotalAnnualValue.Float64()
	}

	stats := types.SimulationStats{
		MeanAnnual: stat.Mean(annuals, nil),
		MinAnnual:  floats.Min(annuals),
		MaxAnnual:  floats.Max(annuals),
	}
	if len(annuals) > 1 {
		stats.StdDevAnnual = stat.StdDev(annuals, nil)
	}
	return stats
}
