package trilho

import (
	"fmt"

	"github.com/iesje/matricula_engine/internal/enrollment/textutil"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Percentages can never exceed the full tuition, whatever the catalog says.
const HardCap = 100

// ResolveCap returns the maximum aggregate discount percentage for a track.
// A nil track falls back to the configured global maximum; a track with a nil
// cap is unlimited and resolves to the hard bound. Tracks that distinguish a
// second guardian use the higher cap when one is present.
func ResolveCap(track *types.TrackDefinition, hasSecondaryGuardian bool, globalMax float64) float64 {
	if track == nil {
		return clampCap(globalMax)
	}
	if track.CapPercentual == nil {
		return HardCap
	}
	if hasSecondaryGuardian && track.CapComSecundario != nil {
		return clampCap(*track.CapComSecundario)
	}
	return clampCap(*track.CapPercentual)
}

func clampCap(cap float64) float64 {
	if cap < 0 {
		return 0
	}
	if cap > HardCap {
		return HardCap
	}
	return cap
}

// AllowsCategory reports whether a track accepts a discount category. A track
// with an empty allow-list accepts everything.
func AllowsCategory(track *types.TrackDefinition, categoria string) bool {
	if track == nil || len(track.CategoriasPermitidas) == 0 {
		return true
	}
	for _, c := range track.CategoriasPermitidas {
		if c == categoria {
			return true
		}
	}
	return false
}

// ValidateCompatibility checks a set of selected discount categories against a
// track's allow-list and its mandatory category, if any.
func ValidateCompatibility(track *types.TrackDefinition, categorias []string) (bool, string) {
	if track == nil || len(categorias) == 0 {
		return true, ""
	}

	for _, categoria := range categorias {
		if !AllowsCategory(track, categoria) {
			return false, fmt.Sprintf("Trilho %s: descontos da categoria %q não são permitidos", track.Nome, categoria)
		}
	}

	if track.CategoriaObrigatoria != "" {
		found := false
		for _, categoria := range categorias {
			if categoria == track.CategoriaObrigatoria {
				found = true
				break
			}
		}
		if !found {
			return false, fmt.Sprintf("Trilho %s requer pelo menos um desconto da categoria %q", track.Nome, track.CategoriaObrigatoria)
		}
	}

	return true, ""
}

// Suggest picks the track that fits a set of discount categories: any special
// discount forces the special track, regular discounts point at the combined
// track, negotiation-only selections at the commercial one.
func Suggest(categorias []string, tracks []types.TrackDefinition) *types.TrackDefinition {
	if len(categorias) == 0 {
		return nil
	}

	var temEspecial, temRegular, temNegociacao bool
	for _, categoria := range categorias {
		switch categoria {
		case types.CategoriaEspecial:
			temEspecial = true
		case types.CategoriaRegular:
			temRegular = true
		case types.CategoriaNegociacao:
			temNegociacao = true
		}
	}

	var wanted string
	switch {
	case temEspecial:
		wanted = "especial"
	case temRegular:
		wanted = "combinado"
	case temNegociacao:
		wanted = "comercial"
	default:
		return nil
	}

	for i := range tracks {
		if tracks[i].Ativo && textutil.Equal(tracks[i].Nome, wanted) {
			return &tracks[i]
		}
	}
	return nil
}

// FindByID resolves a track by id or, failing that, by folded name.
func FindByID(id string, tracks []types.TrackDefinition) *types.TrackDefinition {
	if id == "" {
		return nil
	}
	for i := range tracks {
		if tracks[i].ID == id {
			return &tracks[i]
		}
	}
	for i := range tracks {
		if textutil.Equal(tracks[i].Nome, id) {
			return &tracks[i]
		}
	}
	return nil
}
