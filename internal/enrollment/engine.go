package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/cep"
	"github.com/iesje/matricula_engine/internal/enrollment/eligibility"
	"github.com/iesje/matricula_engine/internal/enrollment/finance"
	"github.com/iesje/matricula_engine/internal/enrollment/textutil"
	"github.com/iesje/matricula_engine/internal/enrollment/trilho"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/logger"
	"github.com/iesje/matricula_engine/internal/refdata"
)

// Config carries the engine-wide policy knobs.
type Config struct {
	// GlobalMaxCap bounds the aggregate discount when no track is selected.
	GlobalMaxCap float64
	Schedule     finance.ScheduleConfig
	LateFee      finance.LateFeeConfig
}

// DefaultConfig reflects the school's standard policy.
func DefaultConfig() Config {
	return Config{
		GlobalMaxCap: 60,
		Schedule: finance.ScheduleConfig{
			PreferredDay:  5,
			WeekendPolicy: finance.WeekendShiftAfter,
		},
		LateFee: finance.DefaultLateFeeConfig,
	}
}

// Engine is the enrollment calculation facade. All reference data goes
// through the resolver, so every operation works with or without a database.
type Engine struct {
	refdata *refdata.Resolver
	log     *logger.Logger
	cfg     Config
}

func NewEngine(resolver *refdata.Resolver, log *logger.Logger, cfg Config) *Engine {
	if cfg.GlobalMaxCap <= 0 {
		cfg.GlobalMaxCap = DefaultConfig().GlobalMaxCap
	}
	if log == nil {
		log = &logger.Logger{MinLevel: logger.LevelWarn}
	}
	return &Engine{refdata: resolver, log: log, cfg: cfg}
}

// ClassifyCep maps a free-form CEP onto its geographic discount category.
func (e *Engine) ClassifyCep(ctx context.Context, rawCep string) types.CepClassification {
	ranges, provenance := e.refdata.CepRanges(ctx)
	result := cep.Classify(rawCep, ranges, provenance)
	e.log.Debug("engine", "CEP %s classificado como %s (%s)", result.CEP, result.Categoria, provenance)
	return result
}

// EligibilityRequest identifies the student context for an eligibility analysis.
type EligibilityRequest struct {
	CEP     string `json:"cep"`
	TrackID string `json:"trilho_id"`
}

// AnalyzeEligibility annotates the whole discount catalog for a CEP and track.
func (e *Engine) AnalyzeEligibility(ctx context.Context, req EligibilityRequest) []types.DiscountEligibility {
	classification := e.ClassifyCep(ctx, req.CEP)

	catalog, _ := e.refdata.DiscountTypes(ctx)
	tracks, _ := e.refdata.Tracks(ctx)

	return eligibility.Analyze(eligibility.Input{
		Categoria:  classification.Categoria,
		Track:      trilho.FindByID(req.TrackID, tracks),
		Candidates: catalog,
	})
}

// CalculationRequest is the full tuition calculation input.
type CalculationRequest struct {
	SeriesID             string                      `json:"serie_id"`
	TrackID              string                      `json:"trilho_id"`
	HasSecondaryGuardian bool                        `json:"tem_segundo_responsavel"`
	Selections           []types.DiscountSelection   `json:"descontos"`
	PaymentMethodID      string                      `json:"forma_pagamento"`
	Installments         int                         `json:"numero_parcelas"`
	PreviousYear         *types.PreviousYearSnapshot `json:"ano_anterior,omitempty"`
	StartDate            time.Time                   `json:"data_inicio,omitempty"`
}

// Calculate runs the whole pipeline: series lookup, track cap resolution,
// discount aggregation and the financial calculation.
func (e *Engine) Calculate(ctx context.Context, req CalculationRequest) (types.FinancialCalculation, error) {
	series, err := e.findSeries(ctx, req.SeriesID)
	if err != nil {
		return types.FinancialCalculation{}, err
	}

	tracks, _ := e.refdata.Tracks(ctx)
	track := trilho.FindByID(req.TrackID, tracks)
	if req.TrackID != "" && track == nil {
		return types.FinancialCalculation{}, fmt.Errorf("trilho %q não encontrado", req.TrackID)
	}

	catalogList, _ := e.refdata.DiscountTypes(ctx)
	catalog := make(map[string]types.DiscountType, len(catalogList))
	for _, d := range catalogList {
		catalog[d.Codigo] = d
	}

	cap := trilho.ResolveCap(track, req.HasSecondaryGuardian, e.cfg.GlobalMaxCap)
	baseWithoutMaterial := series.ValorComMaterial.Sub(series.ValorMaterial)
	aggregate := finance.Aggregate(baseWithoutMaterial, req.Selections, catalog, cap)

	// Combination and track compatibility issues are soft: the calculation
	// still runs, the caller decides whether to block submission.
	aggregate.Warnings = append(aggregate.Warnings, e.combinationIssues(req.Selections, catalog, track)...)

	method := e.findPaymentMethod(req.PaymentMethodID)

	schedule := e.cfg.Schedule
	if !req.StartDate.IsZero() {
		schedule.Start = req.StartDate
	}

	result := finance.Calculate(finance.Input{
		BaseWithMaterial: series.ValorComMaterial,
		MaterialCost:     series.ValorMaterial,
		Discounts:        aggregate,
		Method:           method,
		Installments:     req.Installments,
		Previous:         req.PreviousYear,
		Schedule:         schedule,
	})

	e.log.Info("engine", "cálculo série=%s trilho=%s descontos=%.1f%% aprovação=%s",
		series.Nome, req.TrackID, aggregate.CappedPercentage, result.ApprovalLevel)
	return result, nil
}

// Simulate evaluates the calculation once per active payment method.
func (e *Engine) Simulate(ctx context.Context, req CalculationRequest) (types.SimulationResult, error) {
	series, err := e.findSeries(ctx, req.SeriesID)
	if err != nil {
		return types.SimulationResult{}, err
	}

	tracks, _ := e.refdata.Tracks(ctx)
	track := trilho.FindByID(req.TrackID, tracks)
	if req.TrackID != "" && track == nil {
		return types.SimulationResult{}, fmt.Errorf("trilho %q não encontrado", req.TrackID)
	}

	catalogList, _ := e.refdata.DiscountTypes(ctx)
	catalog := make(map[string]types.DiscountType, len(catalogList))
	for _, d := range catalogList {
		catalog[d.Codigo] = d
	}

	cap := trilho.ResolveCap(track, req.HasSecondaryGuardian, e.cfg.GlobalMaxCap)
	baseWithoutMaterial := series.ValorComMaterial.Sub(series.ValorMaterial)
	aggregate := finance.Aggregate(baseWithoutMaterial, req.Selections, catalog, cap)

	schedule := e.cfg.Schedule
	if !req.StartDate.IsZero() {
		schedule.Start = req.StartDate
	}

	in := finance.Input{
		BaseWithMaterial: series.ValorComMaterial,
		MaterialCost:     series.ValorMaterial,
		Discounts:        aggregate,
		Installments:     req.Installments,
		Previous:         req.PreviousYear,
		Schedule:         schedule,
	}
	return finance.Simulate(in, e.refdata.PaymentMethods()), nil
}

// LateFeeRequest describes one overdue installment.
type LateFeeRequest struct {
	MonthlyValue decimal.Decimal `json:"valor_mensal"`
	DueDate      time.Time       `json:"data_vencimento"`
	PaymentDate  time.Time       `json:"data_pagamento,omitempty"`
}

// LateFees computes the overdue penalty for one installment.
func (e *Engine) LateFees(monthly decimal.Decimal, dueDate, paymentDate time.Time) types.LatePaymentFees {
	return finance.CalculateLateFees(monthly, dueDate, paymentDate, e.cfg.LateFee)
}

// SuggestTrack picks the track fitting a set of selected discount codes.
func (e *Engine) SuggestTrack(ctx context.Context, codes []string) *types.TrackDefinition {
	catalogList, _ := e.refdata.DiscountTypes(ctx)
	byCode := make(map[string]types.DiscountType, len(catalogList))
	for _, d := range catalogList {
		byCode[d.Codigo] = d
	}

	categorias := make([]string, 0, len(codes))
	for _, code := range codes {
		if d, ok := byCode[code]; ok {
			categorias = append(categorias, d.Categoria)
		}
	}

	tracks, _ := e.refdata.Tracks(ctx)
	return trilho.Suggest(categorias, tracks)
}

// Catalog accessors used by the HTTP layer.

func (e *Engine) DiscountTypes(ctx context.Context) ([]types.DiscountType, string) {
	return e.refdata.DiscountTypes(ctx)
}

func (e *Engine) Tracks(ctx context.Context) ([]types.TrackDefinition, string) {
	return e.refdata.Tracks(ctx)
}

func (e *Engine) Series(ctx context.Context) ([]types.Series, string) {
	return e.refdata.Series(ctx)
}

func (e *Engine) PaymentMethods() []types.PaymentMethod {
	return e.refdata.PaymentMethods()
}

// NextSeries returns the series a student progresses into for re-enrollment:
// the next active entry of the same school by ordering, or nil at the last one.
func (e *Engine) NextSeries(ctx context.Context, currentID string) (*types.Series, error) {
	current, err := e.findSeries(ctx, currentID)
	if err != nil {
		return nil, err
	}

	series, _ := e.refdata.Series(ctx)
	var next *types.Series
	for i := range series {
		s := &series[i]
		if !s.Ativo || !textutil.Equal(s.Escola, current.Escola) || s.Ordem <= current.Ordem {
			continue
		}
		if next == nil || s.Ordem < next.Ordem {
			next = s
		}
	}
	return next, nil
}

func (e *Engine) findSeries(ctx context.Context, id string) (types.Series, error) {
	if id == "" {
		return types.Series{}, fmt.Errorf("série não informada")
	}

	series, _ := e.refdata.Series(ctx)
	for _, s := range series {
		if s.Ativo && (s.ID == id || textutil.Equal(s.Nome, id)) {
			return s, nil
		}
	}
	return types.Series{}, fmt.Errorf("série %q não encontrada", id)
}

// findPaymentMethod resolves a payment channel; an unknown or empty id falls
// back to boleto, which grants no extra discount.
func (e *Engine) findPaymentMethod(id string) types.PaymentMethod {
	methods := e.refdata.PaymentMethods()
	for _, m := range methods {
		if m.Ativo && m.ID == id {
			return m
		}
	}
	for _, m := range methods {
		if m.ID == "boleto" {
			return m
		}
	}
	return types.PaymentMethod{ID: "boleto", Nome: "Boleto Bancário", Ativo: true}
}

func (e *Engine) combinationIssues(selections []types.DiscountSelection, catalog map[string]types.DiscountType, track *types.TrackDefinition) []string {
	selected := make([]types.DiscountType, 0, len(selections))
	categorias := make([]string, 0, len(selections))
	for _, sel := range selections {
		if d, ok := catalog[sel.Codigo]; ok && d.Ativo {
			selected = append(selected, d)
			categorias = append(categorias, d.Categoria)
		}
	}

	issues := eligibility.CheckCombination(selected)
	if ok, motivo := trilho.ValidateCompatibility(track, categorias); !ok {
		issues = append(issues, motivo)
	}
	return issues
}
