package refdata

import (
	"context"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Provider fetches the admin-maintained reference tables. The database
// storage layer implements it; the resolver treats any error as a miss and
// serves the static fallback instead.
type Provider interface {
	ListDiscountTypes(ctx context.Context) ([]types.DiscountType, error)
	ListTracks(ctx context.Context) ([]types.TrackDefinition, error)
	ListCepRanges(ctx context.Context) ([]types.CepRange, error)
	ListSeries(ctx context.Context) ([]types.Series, error)
}
