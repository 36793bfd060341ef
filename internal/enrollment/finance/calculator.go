package finance

import (
	"github.com/shopspring/decimal"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
)

// Tuition is modeled as a 12-month commitment: the annual total is always
// finalMonthly × 12, regardless of how many installments the family picked.
const annualMonths = 12

// Approval tier thresholds over the capped aggregate percentage.
const (
	automaticApprovalMax    = 20
	coordinationApprovalMax = 50
)

// Stability epsilon for the previous-year comparison, in percent.
const comparisonEpsilon = 0.01

// Input is the full financial calculator input. It is copied by value per
// calculation, so concurrent scenario evaluation never shares mutable state.
type Input struct {
	BaseWithMaterial decimal.Decimal
	MaterialCost     decimal.Decimal
	Discounts        types.AggregateResult
	Method           types.PaymentMethod
	Installments     int
	Previous         *types.PreviousYearSnapshot
	Schedule         ScheduleConfig
}

// Calculate derives the final monthly and annual tuition values from a base
// value, an aggregated discount set and a payment method. It is a pure
// function: identical inputs always produce identical results. Fundamentally
// invalid base inputs yield IsValid=false with zeroed values; every soft issue
// lands in Warnings instead.
func Calculate(in Input) types.FinancialCalculation {
	if in.BaseWithMaterial.LessThanOrEqual(decimal.Zero) {
		return invalidCalculation(in, "Valor base inválido")
	}
	if in.MaterialCost.IsNegative() || in.MaterialCost.GreaterThan(in.BaseWithMaterial) {
		return invalidCalculation(in, "Custo de material inválido")
	}

	warnings := append([]string(nil), in.Discounts.Warnings...)

	// Material is never discounted: it is removed before applying percentages
	// and added back at the end.
	baseWithoutMaterial := in.BaseWithMaterial.Sub(in.MaterialCost)
	afterDiscount := baseWithoutMaterial.Sub(percentOf(baseWithoutMaterial, in.Discounts.CappedPercentage))
	methodDiscountValue := percentOf(afterDiscount, in.Method.Percentual)
	afterMethod := afterDiscount.Sub(methodDiscountValue)

	finalMonthly := afterMethod.Add(in.MaterialCost)
	if finalMonthly.IsNegative() {
		finalMonthly = decimal.Zero
		warnings = append(warnings, "Valor mensal ajustado para zero")
	}

	totalAnnual := finalMonthly.Mul(decimal.NewFromInt(annualMonths))

	installments := in.Installments
	if installments == 0 {
		installments = annualMonths
	}
	if installments < 1 {
		installments = 1
		warnings = append(warnings, "Número de parcelas ajustado para 1")
	}
	if installments > annualMonths {
		installments = annualMonths
		warnings = append(warnings, "Número de parcelas ajustado para 12")
	}

	plan := BuildPlan(finalMonthly, installments, in.Schedule)

	comparison, comparisonWarning := compareWithPreviousYear(finalMonthly, in.Previous)
	if comparisonWarning != "" {
		warnings = append(warnings, comparisonWarning)
	}

	return types.FinancialCalculation{
		BaseWithMaterial:           in.BaseWithMaterial,
		MaterialCost:               in.MaterialCost,
		BaseWithoutMaterial:        baseWithoutMaterial,
		Discounts:                  in.Discounts,
		PaymentMethod:              in.Method,
		PaymentMethodDiscountValue: methodDiscountValue,
		FinalMonthlyValue:          finalMonthly,
		TotalAnnualValue:           totalAnnual,
		InstallmentPlan:            plan,
		ApprovalLevel:              approvalLevel(in.Discounts),
		Comparison:                 comparison,
		IsValid:                    true,
		Warnings:                   warnings,
	}
}

// approvalLevel maps the capped percentage onto the authority tier required to
// authorize it. Any special-category discount escalates to the special tier no
// matter how small the percentage is.
func approvalLevel(discounts types.AggregateResult) string {
	for _, item := range discounts.Items {
		if item.Categoria == types.CategoriaEspecial {
			return types.AprovacaoEspecial
		}
	}

	switch {
	case discounts.CappedPercentage <= automaticApprovalMax:
		return types.AprovacaoAutomatica
	case discounts.CappedPercentage <= coordinationApprovalMax:
		return types.AprovacaoCoordenacao
	default:
		return types.AprovacaoDirecao
	}
}

func compareWithPreviousYear(current decimal.Decimal, previous *types.PreviousYearSnapshot) (*types.Comparison, string) {
	if previous == nil {
		return nil, ""
	}
	if previous.FinalMonthlyValue.LessThanOrEqual(decimal.Zero) {
		return nil, "Comparação com ano anterior indisponível"
	}

	difference := current.Sub(previous.FinalMonthlyValue)
	change, _ := difference.Div(previous.FinalMonthlyValue).Mul(hundred).Float64()

	status := types.ComparisonStable
	switch {
	case change >= comparisonEpsilon:
		status = types.ComparisonIncrease
	case change <= -comparisonEpsilon:
		status = types.ComparisonDecrease
	}

	return &types.Comparison{
		PreviousValue:    previous.FinalMonthlyValue,
		CurrentValue:     current,
		Difference:       difference,
		PercentageChange: change,
		Status:           status,
	}, ""
}

// invalidCalculation returns the zero-filled safe shape callers can render as
// an unavailable state. Numeric fields are not meaningful placeholders.
func invalidCalculation(in Input, motivo string) types.FinancialCalculation {
	return types.FinancialCalculation{
		BaseWithMaterial: in.BaseWithMaterial,
		MaterialCost:     in.MaterialCost,
		PaymentMethod:    in.Method,
		IsValid:          false,
		Warnings:         []string{motivo},
	}
}
