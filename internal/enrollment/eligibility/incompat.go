package eligibility

import "github.com/iesje/matricula_engine/internal/enrollment/types"

// Pairs of discounts that cannot be combined.
var incompatiblePairs = []struct {
	a, b   string
	motivo string
}{
	{"ABI", "ABP", "Bolsa integral e parcial de filantropia não podem ser combinadas"},
	{"PASS", "PBS", "Descontos de professores IESJE e de outras instituições não podem ser combinados"},
	{"COL", "SAE", "Descontos de funcionários IESJE e de outros estabelecimentos não podem ser combinados"},
}

// CheckCombination validates a selected discount set against the pairwise
// incompatibility rules and the single-full-scholarship rule. The returned
// strings are soft issues; callers append them to the calculation warnings.
func CheckCombination(selected []types.DiscountType) []string {
	var issues []string

	codes := make(map[string]bool, len(selected))
	for _, d := range selected {
		codes[d.Codigo] = true
	}

	for _, pair := range incompatiblePairs {
		if codes[pair.a] && codes[pair.b] {
			issues = append(issues, pair.motivo)
		}
	}

	integrais := 0
	for _, d := range selected {
		if d.PercentualFixo >= 100 {
			integrais++
		}
	}
	if integrais > 1 {
		issues = append(issues, "Não é possível combinar múltiplos descontos de 100%")
	}

	return issues
}
