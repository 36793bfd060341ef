package eligibility

import (
	"fmt"

	"github.com/iesje/matricula_engine/internal/enrollment/textutil"
	"github.com/iesje/matricula_engine/internal/enrollment/trilho"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Rule sources reported in the eligibility annotation.
const (
	RuleSourceGeo            = "geografica"
	RuleSourceTrack          = "trilho"
	RuleSourceTrilhoEspecial = "trilho-especial"
	RuleSourceInactive       = "inativo"
	RuleSourceDefault        = "padrao"
)

// geoRule fixes a geographic discount to the categories where it applies.
// These are business rules and take precedence over catalog data.
type geoRule struct {
	allowed map[string]bool
	reasons map[string]string
}

var geoRules = map[string]geoRule{
	"RES": {
		allowed: map[string]bool{types.CategoriaFora: true},
		reasons: map[string]string{
			types.CategoriaBaixa: "Desconto para outras cidades não se aplica a residentes de Poços de Caldas",
			types.CategoriaAlta:  "Desconto para outras cidades não se aplica a residentes de Poços de Caldas",
		},
	},
	types.CodigoCepBaixa: {
		allowed: map[string]bool{types.CategoriaBaixa: true},
		reasons: map[string]string{
			types.CategoriaFora: "Desconto CEP5 não se aplica para fora de Poços de Caldas",
			types.CategoriaAlta: "Desconto CEP5 disponível apenas para bairros de menor renda",
		},
	},
	types.CodigoCepFora: {
		allowed: map[string]bool{types.CategoriaFora: true},
		reasons: map[string]string{
			types.CategoriaBaixa: "Desconto CEP10 não se aplica para residentes de Poços de Caldas",
			types.CategoriaAlta:  "Desconto CEP10 não se aplica para residentes de Poços de Caldas",
		},
	},
}

const unclassifiedReason = "CEP não classificado: descontos geográficos indisponíveis"

// Input carries everything the resolver needs for one analysis.
type Input struct {
	Categoria  string
	Track      *types.TrackDefinition
	Candidates []types.DiscountType
}

// Analyze annotates every candidate discount with its eligibility for the
// given CEP category and track. Geographic discounts are mutually exclusive by
// construction (each is allowed in exactly one category) and an unclassified
// CEP makes all of them ineligible rather than all eligible, so missing data
// can never stack discounts.
func Analyze(in Input) []types.DiscountEligibility {
	results := make([]types.DiscountEligibility, 0, len(in.Candidates))
	for _, candidate := range in.Candidates {
		results = append(results, analyzeOne(candidate, in.Categoria, in.Track))
	}

	attachSuggestions(results)
	return results
}

func analyzeOne(candidate types.DiscountType, categoria string, track *types.TrackDefinition) types.DiscountEligibility {
	if !candidate.Ativo {
		return types.DiscountEligibility{
			Desconto:        candidate,
			Elegivel:        false,
			MotivoRestricao: "Tipo de desconto inativo",
			RuleSource:      RuleSourceInactive,
		}
	}

	// Special track + special discount is always eligible, ahead of any
	// geographic restriction.
	if track != nil && textutil.Equal(track.Nome, "especial") && candidate.Categoria == types.CategoriaEspecial {
		return types.DiscountEligibility{
			Desconto:   candidate,
			Elegivel:   true,
			RuleSource: RuleSourceTrilhoEspecial,
		}
	}

	if rule, ok := geoRules[candidate.Codigo]; ok {
		if categoria == types.CategoriaNaoClassificada || categoria == "" {
			return types.DiscountEligibility{
				Desconto:        candidate,
				Elegivel:        false,
				MotivoRestricao: unclassifiedReason,
				RuleSource:      RuleSourceGeo,
			}
		}
		if !rule.allowed[categoria] {
			return types.DiscountEligibility{
				Desconto:        candidate,
				Elegivel:        false,
				MotivoRestricao: rule.reasons[categoria],
				RuleSource:      RuleSourceGeo,
			}
		}
		return types.DiscountEligibility{
			Desconto:   candidate,
			Elegivel:   true,
			RuleSource: RuleSourceGeo,
		}
	}

	if track != nil && !trilho.AllowsCategory(track, candidate.Categoria) {
		return types.DiscountEligibility{
			Desconto:        candidate,
			Elegivel:        false,
			MotivoRestricao: fmt.Sprintf("Trilho %s: descontos da categoria %q não são permitidos", track.Nome, candidate.Categoria),
			RuleSource:      RuleSourceTrack,
		}
	}

	return types.DiscountEligibility{
		Desconto:   candidate,
		Elegivel:   true,
		RuleSource: RuleSourceDefault,
	}
}

// Eligible filters the annotated list down to the eligible catalog entries.
func Eligible(results []types.DiscountEligibility) []types.DiscountType {
	out := make([]types.DiscountType, 0, len(results))
	for _, r := range results {
		if r.Elegivel {
			out = append(out, r.Desconto)
		}
	}
	return out
}
