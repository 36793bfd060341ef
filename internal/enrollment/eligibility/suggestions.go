package eligibility

import (
	"math"
	"sort"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

const maxSuggestions = 3

// attachSuggestions fills ranked alternatives for every rejected candidate:
// eligible codes from the same analysis, closest percentage first.
func attachSuggestions(results []types.DiscountEligibility) {
	for i := range results {
		if results[i].Elegivel {
			continue
		}
		results[i].Sugestoes = rankAlternatives(results[i].Desconto, results)
	}
}

func rankAlternatives(rejected types.DiscountType, results []types.DiscountEligibility) []types.Suggestion {
	candidates := make([]types.Suggestion, 0, len(results))
	for _, r := range results {
		if !r.Elegivel || r.Desconto.Codigo == rejected.Codigo {
			continue
		}
		candidates = append(candidates, types.Suggestion{
			Codigo:     r.Desconto.Codigo,
			Percentual: r.Desconto.PercentualFixo,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		da := math.Abs(candidates[a].Percentual - rejected.PercentualFixo)
		db := math.Abs(candidates[b].Percentual - rejected.PercentualFixo)
		return da < db
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates
}
