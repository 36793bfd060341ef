package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type TrackStore struct {
	db *sqlx.DB
}

func (ts *TrackStore) ListTracks(ctx context.Context) ([]types.TrackDefinition, error) {
	query := `SELECT
		id,
		nome,
		cap_percentual,
		cap_com_secundario,
		categorias_permitidas,
		categoria_obrigatoria,
		ativo,
		updated_at
	FROM trilhos
	ORDER BY nome`

	var rows []TrackRow
	if err := ts.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	tracks := make([]types.TrackDefinition, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, row.toDomain())
	}
	return tracks, nil
}
