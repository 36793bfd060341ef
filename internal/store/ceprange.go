package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type CepRangeStore struct {
	db *sqlx.DB
}

func (cs *CepRangeStore) ListCepRanges(ctx context.Context) ([]types.CepRange, error) {
	query := `SELECT
		id,
		categoria,
		cep_inicio,
		cep_fim,
		descricao,
		ativo,
		updated_at
	FROM cep_ranges
	ORDER BY cep_inicio`

	var rows []CepRangeRow
	if err := cs.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	ranges := make([]types.CepRange, 0, len(rows))
	for _, row := range rows {
		ranges = append(ranges, row.toDomain())
	}
	return ranges, nil
}
