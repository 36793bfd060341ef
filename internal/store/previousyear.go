package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

type PreviousYearStore struct {
	db *sqlx.DB
}

// GetPreviousYear returns the stored financial snapshot of the student's
// previous school year, or nil when there is none. Absence is not an error;
// the comparison is simply skipped.
func (ps *PreviousYearStore) GetPreviousYear(ctx context.Context, studentID string, anoLetivo int) (*types.PreviousYearSnapshot, error) {
	query := `SELECT
		id,
		student_id,
		ano_letivo,
		valor_base,
		valor_mensal_final,
		numero_parcelas,
		forma_pagamento,
		inserted_at
	FROM financeiro_ano_anterior
	WHERE student_id = $1 AND ano_letivo = $2
	ORDER BY inserted_at DESC
	LIMIT 1`

	var row PreviousYearRow
	if err := ps.db.GetContext(ctx, &row, query, studentID, anoLetivo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	snapshot := row.toDomain()
	return &snapshot, nil
}
