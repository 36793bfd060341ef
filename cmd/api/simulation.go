package main

import (
	"net/http"

	"github.com/iesje/matricula_engine/internal/enrollment"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/response"
)

type SimulationResponse = response.APIResponse[types.SimulationResult]
type LateFeesResponse = response.APIResponse[types.LatePaymentFees]

// @Summary		Simulate payment methods
// @Description	Evaluates the calculation once per active payment method and points at the cheapest option.
// @Tags			Calculos
// @Accept			json
// @Produce		json
// @Param			request	body		enrollment.CalculationRequest	true	"Calculation input, payment method ignored"
// @Success		200		{object}	SimulationResponse				"Simulation done"
// @Failure		400		{object}	response.ErrorResponse			"Invalid request payload"
// @Failure		422		{object}	response.ErrorResponse			"Unknown series or track"
// @Router			/calculos/simulacao [post]
func (app *application) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var input enrollment.CalculationRequest

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := app.engine.Simulate(r.Context(), input)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := &SimulationResponse{
		Success: true,
		Data:    result,
		Message: "Simulação realizada",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Calculate late fees
// @Description	Computes fine and simple daily interest for an overdue installment.
// @Tags			Calculos
// @Accept			json
// @Produce		json
// @Param			request	body		enrollment.LateFeeRequest	true	"Overdue installment"
// @Success		200		{object}	LateFeesResponse			"Late fees calculated"
// @Failure		400		{object}	response.ErrorResponse		"Invalid request payload"
// @Router			/calculos/juros [post]
func (app *application) handleLateFees(w http.ResponseWriter, r *http.Request) {
	var input enrollment.LateFeeRequest

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if input.MonthlyValue.IsNegative() || input.DueDate.IsZero() {
		writeJSONError(w, http.StatusBadRequest, "valor_mensal and data_vencimento are required")
		return
	}

	fees := app.engine.LateFees(input.MonthlyValue, input.DueDate, input.PaymentDate)

	response := &LateFeesResponse{
		Success: true,
		Data:    fees,
		Message: "Juros calculados",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
