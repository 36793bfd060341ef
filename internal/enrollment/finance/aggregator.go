package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

var hundred = decimal.NewFromInt(100)

// Aggregate sums a set of discount selections against a catalog and clamps the
// total to the track cap. The clamp truncates the aggregate only: each item
// keeps its nominal percentage so callers can display requested vs applied.
// Unknown or inactive codes are skipped with a warning instead of failing,
// since the aggregator may be invoked without prior eligibility filtering.
func Aggregate(baseValue decimal.Decimal, selections []types.DiscountSelection, catalog map[string]types.DiscountType, cap float64) types.AggregateResult {
	result := types.AggregateResult{
		Items: make([]types.AggregateItem, 0, len(selections)),
		Cap:   cap,
	}

	for _, sel := range selections {
		discount, ok := catalog[sel.Codigo]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Desconto %q desconhecido: ignorado", sel.Codigo))
			continue
		}
		if !discount.Ativo {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Desconto %q inativo: ignorado", sel.Codigo))
			continue
		}

		percentual := effectivePercentage(discount, sel)
		if percentual <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Desconto %q sem percentual aplicável: ignorado", sel.Codigo))
			continue
		}

		result.Items = append(result.Items, types.AggregateItem{
			Codigo:            discount.Codigo,
			Categoria:         discount.Categoria,
			PercentualNominal: percentual,
			Valor:             percentOf(baseValue, percentual),
		})
		result.RawPercentage += percentual
	}

	result.CappedPercentage = result.RawPercentage
	if result.RawPercentage > cap {
		result.CappedPercentage = cap
		result.CapReached = true
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Desconto total de %.1f%% excede o limite de %.1f%%: aplicado %.1f%%",
			result.RawPercentage, cap, cap))
	}

	// Hard clamp regardless of cap misconfiguration.
	if result.CappedPercentage < 0 {
		result.CappedPercentage = 0
	}
	if result.CappedPercentage > 100 {
		result.CappedPercentage = 100
	}

	result.TotalValue = percentOf(baseValue, result.CappedPercentage)
	return result
}

// effectivePercentage resolves the percentage actually applied for one
// selection. Fixed discounts always use the catalog value; variable ones use
// the requested percentage bounded by the configured maximum.
func effectivePercentage(discount types.DiscountType, sel types.DiscountSelection) float64 {
	if !discount.Variavel {
		return discount.PercentualFixo
	}

	percentual := sel.Percentual
	if discount.PercentualMaximo > 0 && percentual > discount.PercentualMaximo {
		percentual = discount.PercentualMaximo
	}
	return percentual
}

func percentOf(value decimal.Decimal, percentual float64) decimal.Decimal {
	return value.Mul(decimal.NewFromFloat(percentual)).Div(hundred).Round(2)
}
