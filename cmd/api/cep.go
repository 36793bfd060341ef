package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/response"
)

type ClassifyCepResponse = response.APIResponse[types.CepClassification]

// @Summary		Classify CEP
// @Description	Classifies a postal code into its geographic discount category.
// @Tags			CEP
// @Produce		json
// @Param			cep	path		string				true	"Postal code, with or without dash"
// @Success		200	{object}	ClassifyCepResponse	"CEP classified"
// @Router			/cep/{cep} [get]
func (app *application) handleClassifyCep(w http.ResponseWriter, r *http.Request) {
	rawCep := chi.URLParam(r, "cep")

	classification := app.engine.ClassifyCep(r.Context(), rawCep)

	response := &ClassifyCepResponse{
		Success: true,
		Data:    classification,
		Message: "CEP classificado",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
