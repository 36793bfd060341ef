package cep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Suggested percentages for the geographic discount codes.
const (
	percentualFora  = 10
	percentualBaixa = 5
)

// Normalize strips everything that is not a digit from a postal code.
func Normalize(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify maps a free-form CEP onto a geographic category using the given
// range table. A malformed CEP yields "nao_classificada", never an error.
// Ranges only cover the home city; anything outside every active range is
// "fora". The provenance tag says whether the ranges came from the
// admin-maintained table or the static fallback.
func Classify(rawCep string, ranges []types.CepRange, provenance string) types.CepClassification {
	normalized := Normalize(rawCep)

	if len(normalized) != 8 {
		return types.CepClassification{
			CEP:        normalized,
			Categoria:  types.CategoriaNaoClassificada,
			Descricao:  "CEP deve ter 8 dígitos",
			Provenance: provenance,
		}
	}

	numeric, err := strconv.Atoi(normalized)
	if err != nil {
		return types.CepClassification{
			CEP:        normalized,
			Categoria:  types.CategoriaNaoClassificada,
			Descricao:  "CEP inválido",
			Provenance: provenance,
		}
	}

	for _, faixa := range ranges {
		if !faixa.Ativo {
			continue
		}
		if numeric < faixa.Inicio || numeric > faixa.Fim {
			continue
		}

		switch faixa.Categoria {
		case types.CategoriaAlta:
			return types.CepClassification{
				CEP:        normalized,
				Categoria:  types.CategoriaAlta,
				Descricao:  fmt.Sprintf("%s - Poços de Caldas (maior renda)", faixa.Descricao),
				Provenance: provenance,
			}
		case types.CategoriaBaixa:
			return types.CepClassification{
				CEP:                normalized,
				Categoria:          types.CategoriaBaixa,
				Descricao:          fmt.Sprintf("%s - Poços de Caldas (menor renda)", faixa.Descricao),
				CodigoSugerido:     types.CodigoCepBaixa,
				PercentualSugerido: percentualBaixa,
				Provenance:         provenance,
			}
		case types.CategoriaFora:
			// Explicit "fora" ranges may exist in the dynamic table.
			return types.CepClassification{
				CEP:                normalized,
				Categoria:          types.CategoriaFora,
				Descricao:          faixa.Descricao,
				CodigoSugerido:     types.CodigoCepFora,
				PercentualSugerido: percentualFora,
				Provenance:         provenance,
			}
		}
	}

	return types.CepClassification{
		CEP:                normalized,
		Categoria:          types.CategoriaFora,
		Descricao:          "Fora de Poços de Caldas",
		CodigoSugerido:     types.CodigoCepFora,
		PercentualSugerido: percentualFora,
		Provenance:         provenance,
	}
}
