package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type SeriesStore struct {
	db *sqlx.DB
}

func (ss *SeriesStore) ListSeries(ctx context.Context) ([]types.Series, error) {
	query := `SELECT
		id,
		nome,
		escola,
		valor_mensal_com_material,
		valor_material,
		numero_parcelas,
		ordem,
		ativo,
		updated_at
	FROM series
	ORDER BY escola, ordem`

	var rows []SeriesRow
	if err := ss.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	series := make([]types.Series, 0, len(rows))
	for _, row := range rows {
		series = append(series, row.toDomain())
	}
	return series, nil
}
