package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iesje/matricula_engine/internal/enrollment/eligibility"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

func testCatalog() []types.DiscountType {
	return []types.DiscountType{
		{Codigo: "IIR", Categoria: types.CategoriaRegular, PercentualFixo: 10, Ativo: true},
		{Codigo: "RES", Categoria: types.CategoriaRegular, PercentualFixo: 20, Ativo: true},
		{Codigo: "PASS", Categoria: types.CategoriaEspecial, PercentualFixo: 100, Ativo: true},
		{Codigo: "CEP5", Categoria: types.CategoriaNegociacao, PercentualFixo: 5, Ativo: true},
		{Codigo: "CEP10", Categoria: types.CategoriaNegociacao, PercentualFixo: 10, Ativo: true},
		{Codigo: "ADIM2", Categoria: types.CategoriaNegociacao, PercentualFixo: 2, Ativo: true},
	}
}

func byCode(results []types.DiscountEligibility) map[string]types.DiscountEligibility {
	m := make(map[string]types.DiscountEligibility, len(results))
	for _, r := range results {
		m[r.Desconto.Codigo] = r
	}
	return m
}

func TestAnalyze(t *testing.T) {
	t.Run("alta category blocks every geographic discount", func(t *testing.T) {
		results := eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaAlta,
			Candidates: testCatalog(),
		})
		m := byCode(results)

		for _, code := range []string{"RES", "CEP5", "CEP10"} {
			assert.False(t, m[code].Elegivel, code)
			assert.NotEmpty(t, m[code].MotivoRestricao, code)
			assert.Equal(t, eligibility.RuleSourceGeo, m[code].RuleSource, code)
		}
		assert.True(t, m["IIR"].Elegivel)
		assert.True(t, m["ADIM2"].Elegivel)
	})

	t.Run("baixa allows only CEP5 among geographic discounts", func(t *testing.T) {
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaBaixa,
			Candidates: testCatalog(),
		}))

		assert.True(t, m["CEP5"].Elegivel)
		assert.False(t, m["CEP10"].Elegivel)
		assert.False(t, m["RES"].Elegivel)
	})

	t.Run("fora allows CEP10 and RES but never CEP5", func(t *testing.T) {
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaFora,
			Candidates: testCatalog(),
		}))

		assert.True(t, m["CEP10"].Elegivel)
		assert.True(t, m["RES"].Elegivel)
		assert.False(t, m["CEP5"].Elegivel)
	})

	t.Run("unclassified CEP makes geographic discounts ineligible", func(t *testing.T) {
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaNaoClassificada,
			Candidates: testCatalog(),
		}))

		for _, code := range []string{"RES", "CEP5", "CEP10"} {
			assert.False(t, m[code].Elegivel, code)
		}
		assert.True(t, m["IIR"].Elegivel)
	})

	t.Run("inactive discounts are always ineligible", func(t *testing.T) {
		catalog := []types.DiscountType{
			{Codigo: "IIR", Categoria: types.CategoriaRegular, PercentualFixo: 10, Ativo: false},
		}
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaFora,
			Candidates: catalog,
		}))

		assert.False(t, m["IIR"].Elegivel)
		assert.Equal(t, eligibility.RuleSourceInactive, m["IIR"].RuleSource)
	})

	t.Run("special track overrides geographic restrictions for special discounts", func(t *testing.T) {
		track := &types.TrackDefinition{
			ID:                   "especial",
			Nome:                 "Especial",
			CategoriasPermitidas: []string{types.CategoriaEspecial},
		}
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaAlta,
			Track:      track,
			Candidates: testCatalog(),
		}))

		assert.True(t, m["PASS"].Elegivel)
		assert.Equal(t, eligibility.RuleSourceTrilhoEspecial, m["PASS"].RuleSource)
	})

	t.Run("track allow-list rejects foreign categories", func(t *testing.T) {
		comercial := &types.TrackDefinition{
			ID:                   "comercial",
			Nome:                 "Comercial",
			CategoriasPermitidas: []string{types.CategoriaNegociacao},
		}
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaBaixa,
			Track:      comercial,
			Candidates: testCatalog(),
		}))

		assert.False(t, m["IIR"].Elegivel)
		assert.Equal(t, eligibility.RuleSourceTrack, m["IIR"].RuleSource)
		assert.True(t, m["ADIM2"].Elegivel)
	})

	t.Run("rejected entries carry ranked suggestions", func(t *testing.T) {
		m := byCode(eligibility.Analyze(eligibility.Input{
			Categoria:  types.CategoriaAlta,
			Candidates: testCatalog(),
		}))

		rejected := m["CEP5"]
		require.False(t, rejected.Elegivel)
		require.NotEmpty(t, rejected.Sugestoes)
		assert.LessOrEqual(t, len(rejected.Sugestoes), 3)

		// Closest percentage first.
		for i := 1; i < len(rejected.Sugestoes); i++ {
			prev := abs(rejected.Sugestoes[i-1].Percentual - rejected.Desconto.PercentualFixo)
			curr := abs(rejected.Sugestoes[i].Percentual - rejected.Desconto.PercentualFixo)
			assert.LessOrEqual(t, prev, curr)
		}
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestEligible(t *testing.T) {
	results := eligibility.Analyze(eligibility.Input{
		Categoria:  types.CategoriaFora,
		Candidates: testCatalog(),
	})

	eligible := eligibility.Eligible(results)
	codes := make(map[string]bool, len(eligible))
	for _, d := range eligible {
		codes[d.Codigo] = true
	}

	assert.True(t, codes["CEP10"])
	assert.False(t, codes["CEP5"])
}

func TestCheckCombination(t *testing.T) {
	catalog := map[string]types.DiscountType{
		"ABI":  {Codigo: "ABI", PercentualFixo: 100},
		"ABP":  {Codigo: "ABP", PercentualFixo: 50},
		"PASS": {Codigo: "PASS", PercentualFixo: 100},
		"IIR":  {Codigo: "IIR", PercentualFixo: 10},
	}

	t.Run("incompatible pair is reported", func(t *testing.T) {
		issues := eligibility.CheckCombination([]types.DiscountType{catalog["ABI"], catalog["ABP"]})
		require.NotEmpty(t, issues)
	})

	t.Run("multiple full scholarships are reported", func(t *testing.T) {
		issues := eligibility.CheckCombination([]types.DiscountType{catalog["ABI"], catalog["PASS"]})
		require.NotEmpty(t, issues)
	})

	t.Run("compatible set is clean", func(t *testing.T) {
		issues := eligibility.CheckCombination([]types.DiscountType{catalog["IIR"], catalog["ABP"]})
		assert.Empty(t, issues)
	})
}
