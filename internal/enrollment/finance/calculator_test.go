package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesje/matricula_engine/internal/enrollment/finance"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

var (
	boleto = types.PaymentMethod{ID: "boleto", Nome: "Boleto Bancário", Percentual: 0, Ativo: true}
	pix    = types.PaymentMethod{ID: "pix", Nome: "PIX", Percentual: 2, Ativo: true}
)

func fixedSchedule() finance.ScheduleConfig {
	return finance.ScheduleConfig{
		Start:         time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		PreferredDay:  5,
		WeekendPolicy: finance.WeekendKeep,
	}
}

func baseInput(capped float64) finance.Input {
	base := decimal.NewFromInt(1000)
	return finance.Input{
		BaseWithMaterial: decimal.NewFromInt(1200),
		MaterialCost:     decimal.NewFromInt(200),
		Discounts: types.AggregateResult{
			CappedPercentage: capped,
			TotalValue:       base.Mul(decimal.NewFromFloat(capped)).Div(decimal.NewFromInt(100)).Round(2),
		},
		Method:   boleto,
		Schedule: fixedSchedule(),
	}
}

func TestCalculate(t *testing.T) {
	t.Run("material is removed before discounting and added back", func(t *testing.T) {
		result := finance.Calculate(baseInput(15))

		require.True(t, result.IsValid)
		assert.True(t, decimal.NewFromInt(1000).Equal(result.BaseWithoutMaterial))
		assert.True(t, decimal.NewFromInt(1050).Equal(result.FinalMonthlyValue), result.FinalMonthlyValue.String())
		assert.True(t, decimal.NewFromInt(12600).Equal(result.TotalAnnualValue))
	})

	t.Run("payment method discount applies after the aggregate discount", func(t *testing.T) {
		in := baseInput(15)
		in.Method = pix
		result := finance.Calculate(in)

		// 1000 - 150 = 850; pix 2% = 17; 833 + 200 material = 1033.
		assert.True(t, decimal.NewFromInt(17).Equal(result.PaymentMethodDiscountValue), result.PaymentMethodDiscountValue.String())
		assert.True(t, decimal.NewFromInt(1033).Equal(result.FinalMonthlyValue), result.FinalMonthlyValue.String())
	})

	t.Run("annual total is always twelve months", func(t *testing.T) {
		in := baseInput(0)
		in.Installments = 6
		result := finance.Calculate(in)

		assert.True(t, result.FinalMonthlyValue.Mul(decimal.NewFromInt(12)).Equal(result.TotalAnnualValue))
		assert.Equal(t, 6, result.InstallmentPlan.NumberOfInstallments)
	})

	t.Run("installment count is clamped with warnings", func(t *testing.T) {
		in := baseInput(0)
		in.Installments = 15
		result := finance.Calculate(in)
		assert.Equal(t, 12, result.InstallmentPlan.NumberOfInstallments)
		assert.NotEmpty(t, result.Warnings)

		in.Installments = -1
		result = finance.Calculate(in)
		assert.Equal(t, 1, result.InstallmentPlan.NumberOfInstallments)
	})

	t.Run("higher discount never raises the final value", func(t *testing.T) {
		prev := finance.Calculate(baseInput(0)).FinalMonthlyValue
		for _, pct := range []float64{5, 10, 25, 50, 100} {
			curr := finance.Calculate(baseInput(pct)).FinalMonthlyValue
			assert.True(t, curr.LessThanOrEqual(prev), "pct %.0f", pct)
			prev = curr
		}
	})

	t.Run("identical inputs produce identical results", func(t *testing.T) {
		in := baseInput(15)
		first := finance.Calculate(in)
		second := finance.Calculate(in)

		assert.Equal(t, first, second)
	})

	t.Run("invalid base yields an unavailable result, not a panic", func(t *testing.T) {
		in := baseInput(15)
		in.BaseWithMaterial = decimal.Zero
		result := finance.Calculate(in)

		assert.False(t, result.IsValid)
		assert.NotEmpty(t, result.Warnings)
		assert.True(t, result.FinalMonthlyValue.IsZero())
	})

	t.Run("material larger than the base is invalid", func(t *testing.T) {
		in := baseInput(15)
		in.MaterialCost = decimal.NewFromInt(1500)
		result := finance.Calculate(in)

		assert.False(t, result.IsValid)
	})
}

func TestApprovalLevels(t *testing.T) {
	t.Run("tiers follow the capped percentage", func(t *testing.T) {
		cases := []struct {
			pct  float64
			want string
		}{
			{10, types.AprovacaoAutomatica},
			{20, types.AprovacaoAutomatica},
			{20.5, types.AprovacaoCoordenacao},
			{50, types.AprovacaoCoordenacao},
			{50.5, types.AprovacaoDirecao},
		}
		for _, tc := range cases {
			result := finance.Calculate(baseInput(tc.pct))
			assert.Equal(t, tc.want, result.ApprovalLevel, "pct %.1f", tc.pct)
		}
	})

	t.Run("any special discount escalates to the special tier", func(t *testing.T) {
		in := baseInput(5)
		in.Discounts.Items = []types.AggregateItem{
			{Codigo: "PASS", Categoria: types.CategoriaEspecial, PercentualNominal: 5},
		}
		result := finance.Calculate(in)

		assert.Equal(t, types.AprovacaoEspecial, result.ApprovalLevel)
	})
}

func TestPreviousYearComparison(t *testing.T) {
	t.Run("increase beyond the epsilon", func(t *testing.T) {
		in := baseInput(15)
		in.Previous = &types.PreviousYearSnapshot{FinalMonthlyValue: decimal.NewFromInt(1000)}
		result := finance.Calculate(in)

		require.NotNil(t, result.Comparison)
		assert.Equal(t, types.ComparisonIncrease, result.Comparison.Status)
		assert.InDelta(t, 5.0, result.Comparison.PercentageChange, 0.001)
	})

	t.Run("equal values are stable", func(t *testing.T) {
		in := baseInput(15)
		in.Previous = &types.PreviousYearSnapshot{FinalMonthlyValue: decimal.NewFromInt(1050)}
		result := finance.Calculate(in)

		require.NotNil(t, result.Comparison)
		assert.Equal(t, types.ComparisonStable, result.Comparison.Status)
	})

	t.Run("missing snapshot skips the comparison", func(t *testing.T) {
		result := finance.Calculate(baseInput(15))
		assert.Nil(t, result.Comparison)
	})

	t.Run("unusable snapshot warns instead of failing", func(t *testing.T) {
		in := baseInput(15)
		in.Previous = &types.PreviousYearSnapshot{FinalMonthlyValue: decimal.Zero}
		result := finance.Calculate(in)

		assert.Nil(t, result.Comparison)
		assert.Contains(t, result.Warnings, "Comparação com ano anterior indisponível")
	})
}
