package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type DiscountTypeStore struct {
	db *sqlx.DB
}

func (ds *DiscountTypeStore) ListDiscountTypes(ctx context.Context) ([]types.DiscountType, error) {
	query := `SELECT
		id,
		codigo,
		descricao,
		categoria,
		percentual_fixo,
		eh_variavel,
		percentual_maximo,
		requer_documentos,
		documentos_necessarios,
		ativo,
		updated_at
	FROM tipos_desconto
	ORDER BY categoria, codigo`

	var rows []DiscountTypeRow
	if err := ds.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	discounts := make([]types.DiscountType, 0, len(rows))
	for _, row := range rows {
		discounts = append(discounts, row.toDomain())
	}
	return discounts, nil
}
