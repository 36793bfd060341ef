package store

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// DiscountTypeRow represents the 'tipos_desconto' table.
type DiscountTypeRow struct {
	ID               string          `db:"id"`
	Codigo           string          `db:"codigo"`
	Descricao        string          `db:"descricao"`
	Categoria        string          `db:"categoria"`
	PercentualFixo   float64         `db:"percentual_fixo"`
	EhVariavel       bool            `db:"eh_variavel"`
	PercentualMaximo sql.NullFloat64 `db:"percentual_maximo"`
	RequerDocumentos bool            `db:"requer_documentos"`
	Documentos       pq.StringArray  `db:"documentos_necessarios"`
	Ativo            bool            `db:"ativo"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r DiscountTypeRow) toDomain() types.DiscountType {
	d := types.DiscountType{
		ID:               r.ID,
		Codigo:           r.Codigo,
		Descricao:        r.Descricao,
		Categoria:        r.Categoria,
		PercentualFixo:   r.PercentualFixo,
		Variavel:         r.EhVariavel,
		RequerDocumentos: r.RequerDocumentos,
		Documentos:       []string(r.Documentos),
		Ativo:            r.Ativo,
	}
	if r.PercentualMaximo.Valid {
		d.PercentualMaximo = r.PercentualMaximo.Float64
	}
	return d
}

// TrackRow represents the 'trilhos' table.
type TrackRow struct {
	ID                   string          `db:"id"`
	Nome                 string          `db:"nome"`
	CapPercentual        sql.NullFloat64 `db:"cap_percentual"`
	CapComSecundario     sql.NullFloat64 `db:"cap_com_secundario"`
	CategoriasPermitidas pq.StringArray  `db:"categorias_permitidas"`
	CategoriaObrigatoria sql.NullString  `db:"categoria_obrigatoria"`
	Ativo                bool            `db:"ativo"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

func (r TrackRow) toDomain() types.TrackDefinition {
	t := types.TrackDefinition{
		ID:                   r.ID,
		Nome:                 r.Nome,
		CategoriasPermitidas: []string(r.CategoriasPermitidas),
		Ativo:                r.Ativo,
	}
	if r.CapPercentual.Valid {
		cap := r.CapPercentual.Float64
		t.CapPercentual = &cap
	}
	if r.CapComSecundario.Valid {
		cap := r.CapComSecundario.Float64
		t.CapComSecundario = &cap
	}
	if r.CategoriaObrigatoria.Valid {
		t.CategoriaObrigatoria = r.CategoriaObrigatoria.String
	}
	return t
}

// CepRangeRow represents the 'cep_ranges' table.
type CepRangeRow struct {
	ID        int64     `db:"id"`
	Categoria string    `db:"categoria"`
	CepInicio int       `db:"cep_inicio"`
	CepFim    int       `db:"cep_fim"`
	Descricao string    `db:"descricao"`
	Ativo     bool      `db:"ativo"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r CepRangeRow) toDomain() types.CepRange {
	return types.CepRange{
		Categoria: r.Categoria,
		Inicio:    r.CepInicio,
		Fim:       r.CepFim,
		Descricao: r.Descricao,
		Ativo:     r.Ativo,
	}
}

// SeriesRow represents the 'series' table.
type SeriesRow struct {
	ID               string          `db:"id"`
	Nome             string          `db:"nome"`
	Escola           string          `db:"escola"`
	ValorComMaterial decimal.Decimal `db:"valor_mensal_com_material"`
	ValorMaterial    decimal.Decimal `db:"valor_material"`
	NumeroParcelas   int             `db:"numero_parcelas"`
	Ordem            int             `db:"ordem"`
	Ativo            bool            `db:"ativo"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r SeriesRow) toDomain() types.Series {
	return types.Series{
		ID:               r.ID,
		Nome:             r.Nome,
		Escola:           r.Escola,
		ValorComMaterial: r.ValorComMaterial,
		ValorMaterial:    r.ValorMaterial,
		NumeroParcelas:   r.NumeroParcelas,
		Ordem:            r.Ordem,
		Ativo:            r.Ativo,
	}
}

// PreviousYearRow represents the 'financeiro_ano_anterior' table.
type PreviousYearRow struct {
	ID             int64           `db:"id"`
	StudentID      string          `db:"student_id"`
	AnoLetivo      int             `db:"ano_letivo"`
	BaseValue      decimal.Decimal `db:"valor_base"`
	FinalMonthly   decimal.Decimal `db:"valor_mensal_final"`
	Parcelas       int             `db:"numero_parcelas"`
	FormaPagamento string          `db:"forma_pagamento"`
	InsertedAt     time.Time       `db:"inserted_at"`
}

func (r PreviousYearRow) toDomain() types.PreviousYearSnapshot {
	return types.PreviousYearSnapshot{
		BaseValue:         r.BaseValue,
		FinalMonthlyValue: r.FinalMonthly,
		Installments:      r.Parcelas,
		PaymentMethod:     r.FormaPagamento,
	}
}
