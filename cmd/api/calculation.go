package main

import (
	"net/http"
	"time"

	"github.com/iesje/matricula_engine/internal/enrollment"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/response"
)

type CalculationResponse = response.APIResponse[types.FinancialCalculation]

// @Summary		Calculate tuition
// @Description	Runs the full pipeline: series lookup, track cap, discount aggregation and the financial calculation.
// @Tags			Calculos
// @Accept			json
// @Produce		json
// @Param			request	body		enrollment.CalculationRequest	true	"Calculation input"
// @Success		200		{object}	CalculationResponse				"Calculation done"
// @Failure		400		{object}	response.ErrorResponse			"Invalid request payload"
// @Failure		422		{object}	response.ErrorResponse			"Unknown series or track"
// @Router			/calculos [post]
func (app *application) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		enrollment.CalculationRequest
		StudentID string `json:"aluno_id"`
		AnoLetivo int    `json:"ano_letivo"`
	}

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	ctx := r.Context()

	// When the caller identifies the student, look the previous-year snapshot
	// up instead of requiring it in the payload.
	if input.PreviousYear == nil && input.StudentID != "" && app.store != nil {
		anoLetivo := input.AnoLetivo
		if anoLetivo == 0 {
			anoLetivo = time.Now().Year()
		}
		prev, err := app.store.PreviousYear.GetPreviousYear(ctx, input.StudentID, anoLetivo)
		if err != nil {
			app.logger.Warn("api", "consulta do ano anterior falhou para %s: %v", input.StudentID, err)
		} else {
			input.PreviousYear = prev
		}
	}

	result, err := app.engine.Calculate(ctx, input.CalculationRequest)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := &CalculationResponse{
		Success: true,
		Data:    result,
		Message: "Cálculo realizado",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
