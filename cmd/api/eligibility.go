package main

import (
	"net/http"

	"github.com/iesje/matricula_engine/internal/enrollment"
	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/response"
)

type AnalyzeEligibilityResponse = response.APIResponse[[]types.DiscountEligibility]

// @Summary		Analyze discount eligibility
// @Description	Annotates the whole discount catalog for a CEP and track.
// @Tags			Descontos
// @Accept			json
// @Produce		json
// @Param			request	body		object{cep:string,trilho_id:string}	true	"Student context"
// @Success		200		{object}	AnalyzeEligibilityResponse			"Eligibility analyzed"
// @Failure		400		{object}	response.ErrorResponse				"Invalid request payload"
// @Router			/descontos/elegibilidade [post]
func (app *application) handleAnalyzeEligibility(w http.ResponseWriter, r *http.Request) {
	var input enrollment.EligibilityRequest

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	results := app.engine.AnalyzeEligibility(r.Context(), input)

	response := &AnalyzeEligibilityResponse{
		Success: true,
		Data:    results,
		Message: "Elegibilidade analisada",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
