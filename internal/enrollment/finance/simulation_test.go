package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesje/matricula_engine/internal/enrollment/finance"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

func testMethods() []types.PaymentMethod {
	return []types.PaymentMethod{
		{ID: "boleto", Nome: "Boleto Bancário", Percentual: 0, Ativo: true},
		{ID: "pix", Nome: "PIX", Percentual: 2, Ativo: true},
		{ID: "cartao_credito", Nome: "Cartão de Crédito", Percentual: 0, Ativo: true},
		{ID: "dinheiro", Nome: "Dinheiro", Percentual: 3, Ativo: true},
		{ID: "cheque", Nome: "Cheque", Percentual: 5, Ativo: false},
	}
}

func TestSimulate(t *testing.T) {
	in := baseInput(15)

	t.Run("one scenario per active method, best is the cheapest", func(t *testing.T) {
		result := finance.Simulate(in, testMethods())

		require.Len(t, result.Scenarios, 4)
		assert.Equal(t, "dinheiro", result.BestOption.Method.ID)

		for _, s := range result.Scenarios {
			assert.False(t, s.TotalAnnualValue.IsZero())
		}
	})

	t.Run("scenario order follows the method order", func(t *testing.T) {
		result := finance.Simulate(in, testMethods())

		assert.Equal(t, "boleto", result.Scenarios[0].Method.ID)
		assert.Equal(t, "pix", result.Scenarios[1].Method.ID)
		assert.Equal(t, "cartao_credito", result.Scenarios[2].Method.ID)
		assert.Equal(t, "dinheiro", result.Scenarios[3].Method.ID)
	})

	t.Run("ties go to the first enumerated method", func(t *testing.T) {
		methods := []types.PaymentMethod{
			{ID: "boleto", Percentual: 0, Ativo: true},
			{ID: "cartao_credito", Percentual: 0, Ativo: true},
		}
		result := finance.Simulate(in, methods)

		assert.Equal(t, "boleto", result.BestOption.Method.ID)
	})

	t.Run("savings are the method discount across twelve months", func(t *testing.T) {
		result := finance.Simulate(in, testMethods())

		var pixScenario types.PaymentScenario
		for _, s := range result.Scenarios {
			if s.Method.ID == "pix" {
				pixScenario = s
			}
		}
		// 850 after aggregate discount, pix 2% = 17/month.
		assert.True(t, decimal.NewFromInt(17*12).Equal(pixScenario.MethodDiscountSavings), pixScenario.MethodDiscountSavings.String())
	})

	t.Run("statistics cover the annual totals", func(t *testing.T) {
		result := finance.Simulate(in, testMethods())

		min, _ := result.BestOption.TotalAnnualValue.Float64()
		assert.InDelta(t, min, result.Stats.MinAnnual, 0.001)
		assert.GreaterOrEqual(t, result.Stats.MaxAnnual, result.Stats.MinAnnual)
		assert.GreaterOrEqual(t, result.Stats.MeanAnnual, result.Stats.MinAnnual)
		assert.LessOrEqual(t, result.Stats.MeanAnnual, result.Stats.MaxAnnual)
		assert.Greater(t, result.Stats.StdDevAnnual, 0.0)
	})

	t.Run("no active methods yields an empty result", func(t *testing.T) {
		result := finance.Simulate(in, []types.PaymentMethod{{ID: "cheque", Ativo: false}})

		assert.Empty(t, result.Scenarios)
	})

	t.Run("simulation does not mutate its input", func(t *testing.T) {
		before := in.Method
		finance.Simulate(in, testMethods())
		assert.Equal(t, before, in.Method)
	})
}
