package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type Storage struct {
	DiscountTypes interface {
		ListDiscountTypes(ctx context.Context) ([]types.DiscountType, error)
	}

	Tracks interface {
		ListTracks(ctx context.Context) ([]types.TrackDefinition, error)
	}

	CepRanges interface {
		ListCepRanges(ctx context.Context) ([]types.CepRange, error)
	}

	Series interface {
		ListSeries(ctx context.Context) ([]types.Series, error)
	}

	PreviousYear interface {
		GetPreviousYear(ctx context.Context, studentID string, anoLetivo int) (*types.PreviousYearSnapshot, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		DiscountTypes: &DiscountTypeStore{db: db},
		Tracks:        &TrackStore{db: db},
		CepRanges:     &CepRangeStore{db: db},
		Series:        &SeriesStore{db: db},
		PreviousYear:  &PreviousYearStore{db: db},
	}
}

// ListDiscountTypes forwards to the embedded store so *Storage satisfies
// refdata.Provider directly.
func (s *Storage) ListDiscountTypes(ctx context.Context) ([]types.DiscountType, error) {
	return s.DiscountTypes.ListDiscountTypes(ctx)
}

func (s *Storage) ListTracks(ctx context.Context) ([]types.TrackDefinition, error) {
	return s.Tracks.ListTracks(ctx)
}

func (s *Storage) ListCepRanges(ctx context.Context) ([]types.CepRange, error) {
	return s.CepRanges.ListCepRanges(ctx)
}

func (s *Storage) ListSeries(ctx context.Context) ([]types.Series, error) {
	return s.Series.ListSeries(ctx)
}
