package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// CEP geographic categories. A CEP that cannot be normalized to 8 digits is
// "nao_classificada"; classification never fails with an error.
const (
	CategoriaFora            = "fora"
	CategoriaBaixa           = "baixa"
	CategoriaAlta            = "alta"
	CategoriaNaoClassificada = "nao_classificada"
)

// Discount categories.
const (
	CategoriaRegular    = "regular"
	CategoriaEspecial   = "especial"
	CategoriaNegociacao = "negociacao"
)

// Reference data provenance. Dynamic means the admin-maintained table answered;
// static means the built-in fallback table did.
const (
	ProvenanceDynamic = "dynamic"
	ProvenanceStatic  = "static"
)

// Approval levels required to authorize a discount combination.
const (
	AprovacaoAutomatica  = "automatica"
	AprovacaoCoordenacao = "coordenacao"
	AprovacaoDirecao     = "direcao"
	AprovacaoEspecial    = "especial"
)

// Geographic discount codes suggested by the CEP classifier.
const (
	CodigoCepFora  = "CEP10"
	CodigoCepBaixa = "CEP5"
)

// Comparison status against the previous year.
const (
	ComparisonIncrease = "increase"
	ComparisonDecrease = "decrease"
	ComparisonStable   = "stable"
)

// DiscountType is one entry of the discount catalog.
type DiscountType struct {
	ID               string   `json:"id"`
	Codigo           string   `json:"codigo"`
	Descricao        string   `json:"descricao"`
	Categoria        string   `json:"categoria"`
	PercentualFixo   float64  `json:"percentual_fixo"`
	Variavel         bool     `json:"eh_variavel"`
	PercentualMaximo float64  `json:"percentual_maximo,omitempty"`
	RequerDocumentos bool     `json:"requer_documentos"`
	Documentos       []string `json:"documentos_necessarios,omitempty"`
	Ativo            bool     `json:"ativo"`
}

// TrackDefinition is one entry of the track (trilho) catalog. A nil cap means
// the track is unlimited; the aggregator still hard-clamps to 100%.
type TrackDefinition struct {
	ID                   string   `json:"id"`
	Nome                 string   `json:"nome"`
	CapPercentual        *float64 `json:"cap_percentual"`
	CapComSecundario     *float64 `json:"cap_com_secundario,omitempty"`
	CategoriasPermitidas []string `json:"categorias_permitidas"`
	CategoriaObrigatoria string   `json:"categoria_obrigatoria,omitempty"`
	Ativo                bool     `json:"ativo"`
}

// DiscountSelection is a discount chosen during the enrollment wizard.
type DiscountSelection struct {
	Codigo      string    `json:"codigo"`
	Percentual  float64   `json:"percentual"`
	RequestedAt time.Time `json:"requested_at,omitempty"`
}

// CepRange is a half-open numeric CEP interval assigned to a category.
type CepRange struct {
	Categoria string `json:"categoria"`
	Inicio    int    `json:"inicio"`
	Fim       int    `json:"fim"`
	Descricao string `json:"descricao"`
	Ativo     bool   `json:"ativo"`
}

// CepClassification is the classifier output.
type CepClassification struct {
	CEP                string  `json:"cep"`
	Categoria          string  `json:"categoria"`
	Descricao          string  `json:"descricao"`
	CodigoSugerido     string  `json:"codigo_desconto,omitempty"`
	PercentualSugerido float64 `json:"percentual_desconto"`
	Provenance         string  `json:"provenance"`
}

// Suggestion is an alternative discount offered when a candidate is rejected,
// ranked by percentage proximity to the rejected one.
type Suggestion struct {
	Codigo     string  `json:"codigo"`
	Percentual float64 `json:"percentual"`
}

// DiscountEligibility annotates one catalog entry for a given CEP category and track.
type DiscountEligibility struct {
	Desconto        DiscountType `json:"desconto"`
	Elegivel        bool         `json:"elegivel"`
	MotivoRestricao string       `json:"motivo_restricao,omitempty"`
	Sugestoes       []Suggestion `json:"sugestoes,omitempty"`
	RuleSource      string       `json:"regra_aplicada,omitempty"`
}

// AggregateItem keeps the nominal (unscaled) percentage of one selection so
// callers can display requested vs applied separately.
type AggregateItem struct {
	Codigo            string          `json:"codigo"`
	Categoria         string          `json:"categoria"`
	PercentualNominal float64         `json:"percentual_nominal"`
	Valor             decimal.Decimal `json:"valor"`
}

// AggregateResult is the discount aggregator output. The cap truncates the
// total only; individual items are never proportionally scaled down.
type AggregateResult struct {
	Items            []AggregateItem `json:"items"`
	RawPercentage    float64         `json:"percentual_bruto"`
	CappedPercentage float64         `json:"percentual_aplicado"`
	Cap              float64         `json:"cap"`
	CapReached       bool            `json:"cap_atingido"`
	TotalValue       decimal.Decimal `json:"valor_total"`
	Warnings         []string        `json:"warnings,omitempty"`
}

// PaymentMethod carries the extra discount a payment channel grants.
type PaymentMethod struct {
	ID         string  `json:"id"`
	Nome       string  `json:"nome"`
	Percentual float64 `json:"percentual_desconto"`
	Ativo      bool    `json:"ativo"`
}

// Series is one school series (ano/série) with its configured values.
type Series struct {
	ID               string          `json:"id"`
	Nome             string          `json:"nome"`
	Escola           string          `json:"escola"`
	ValorComMaterial decimal.Decimal `json:"valor_mensal_com_material"`
	ValorMaterial    decimal.Decimal `json:"valor_material"`
	NumeroParcelas   int             `json:"numero_parcelas"`
	Ordem            int             `json:"ordem"`
	Ativo            bool            `json:"ativo"`
}

// PreviousYearSnapshot is the optional prior-year financial figure set.
type PreviousYearSnapshot struct {
	BaseValue         decimal.Decimal `json:"base_value"`
	FinalMonthlyValue decimal.Decimal `json:"final_monthly_value"`
	Installments      int             `json:"installments"`
	PaymentMethod     string          `json:"payment_method"`
}

// Comparison is the current-vs-previous-year delta.
type Comparison struct {
	PreviousValue    decimal.Decimal `json:"previous_value"`
	CurrentValue     decimal.Decimal `json:"current_value"`
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange float64         `json:"percentage_change"`
	Status           string          `json:"status"`
}

// InstallmentDetails is a single due installment.
type InstallmentDetails struct {
	Number  int             `json:"number"`
	DueDate time.Time       `json:"due_date"`
	Value   decimal.Decimal `json:"value"`
}

// InstallmentPlan is the ordered schedule produced by the plan builder.
type InstallmentPlan struct {
	NumberOfInstallments    int                  `json:"number_of_installments"`
	Installments            []InstallmentDetails `json:"installments"`
	FirstInstallmentValue   decimal.Decimal      `json:"first_installment_value"`
	RegularInstallmentValue decimal.Decimal      `json:"regular_installment_value"`
	TotalValue              decimal.Decimal      `json:"total_value"`
}

// FinancialCalculation is the immutable calculator output. It is a pure
// function of its inputs; identical inputs produce identical results.
type FinancialCalculation struct {
	BaseWithMaterial    decimal.Decimal `json:"base_with_material"`
	MaterialCost        decimal.Decimal `json:"material_cost"`
	BaseWithoutMaterial decimal.Decimal `json:"base_without_material"`

	Discounts                  AggregateResult `json:"discounts"`
	PaymentMethod              PaymentMethod   `json:"payment_method"`
	PaymentMethodDiscountValue decimal.Decimal `json:"payment_method_discount_value"`

	FinalMonthlyValue decimal.Decimal `json:"final_monthly_value"`
	TotalAnnualValue  decimal.Decimal `json:"total_annual_value"`

	InstallmentPlan InstallmentPlan `json:"installment_plan"`
	ApprovalLevel   string          `json:"approval_level"`
	Comparison      *Comparison     `json:"comparison,omitempty"`

	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// LatePaymentFees is the overdue-installment penalty breakdown.
type LatePaymentFees struct {
	DaysLate         int             `json:"days_late"`
	FineAmount       decimal.Decimal `json:"fine_amount"`
	InterestAmount   decimal.Decimal `json:"interest_amount"`
	TotalPenalty     decimal.Decimal `json:"total_penalty"`
	TotalWithPenalty decimal.Decimal `json:"total_with_penalty"`
}

// PaymentScenario is one evaluated payment method in a simulation.
type PaymentScenario struct {
	Method                PaymentMethod   `json:"method"`
	FinalMonthlyValue     decimal.Decimal `json:"final_monthly_value"`
	TotalAnnualValue      decimal.Decimal `json:"total_annual_value"`
	MethodDiscountSavings decimal.Decimal `json:"method_discount_savings"`
}

// SimulationStats summarizes the annual totals across scenarios.
type SimulationStats struct {
	MeanAnnual   float64 `json:"mean_annual"`
	MinAnnual    float64 `json:"min_annual"`
	MaxAnnual    float64 `json:"max_annual"`
	StdDevAnnual float64 `json:"std_dev_annual"`
}

// SimulationResult collects all scenarios and points at the cheapest one.
type SimulationResult struct {
	Scenarios  []PaymentScenario `json:"scenarios"`
	BestOption PaymentScenario   `json:"best_option"`
	Stats      SimulationStats   `json:"stats"`
}
