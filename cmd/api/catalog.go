package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iesje/matricula_engine/internal/enrollment/types"
	"github.com/iesje/matricula_engine/internal/response"
)

type GetDiscountTypesResponse = response.APIResponse[[]types.DiscountType]
type GetTracksResponse = response.APIResponse[[]types.TrackDefinition]
type GetSeriesResponse = response.APIResponse[[]types.Series]
type GetPaymentMethodsResponse = response.APIResponse[[]types.PaymentMethod]
type SuggestTrackResponse = response.APIResponse[*types.TrackDefinition]

// @Summary		List discount types
// @Description	Returns the discount catalog; the message carries the data provenance.
// @Tags			Descontos
// @Produce		json
// @Success		200	{object}	GetDiscountTypesResponse	"Catalog retrieved"
// @Router			/descontos [get]
func (app *application) handleGetDiscountTypes(w http.ResponseWriter, r *http.Request) {
	data, provenance := app.engine.DiscountTypes(r.Context())

	response := &GetDiscountTypesResponse{
		Success: true,
		Data:    data,
		Message: "Catálogo de descontos (" + provenance + ")",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List tracks
// @Tags			Trilhos
// @Produce		json
// @Success		200	{object}	GetTracksResponse	"Tracks retrieved"
// @Router			/trilhos [get]
func (app *application) handleGetTracks(w http.ResponseWriter, r *http.Request) {
	data, provenance := app.engine.Tracks(r.Context())

	response := &GetTracksResponse{
		Success: true,
		Data:    data,
		Message: "Trilhos de desconto (" + provenance + ")",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List series
// @Tags			Series
// @Produce		json
// @Success		200	{object}	GetSeriesResponse	"Series retrieved"
// @Router			/series [get]
func (app *application) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	data, provenance := app.engine.Series(r.Context())

	response := &GetSeriesResponse{
		Success: true,
		Data:    data,
		Message: "Séries (" + provenance + ")",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

type NextSeriesResponse = response.APIResponse[*types.Series]

// @Summary		Next series
// @Description	Returns the series a student progresses into for re-enrollment, null at the last one.
// @Tags			Series
// @Produce		json
// @Param			id	path		string					true	"Current series id or name"
// @Success		200	{object}	NextSeriesResponse		"Next series resolved"
// @Failure		422	{object}	response.ErrorResponse	"Unknown series"
// @Router			/series/{id}/proxima [get]
func (app *application) handleNextSeries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	next, err := app.engine.NextSeries(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := &NextSeriesResponse{
		Success: true,
		Data:    next,
		Message: "Progressão de série",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		List payment methods
// @Tags			Pagamento
// @Produce		json
// @Success		200	{object}	GetPaymentMethodsResponse	"Payment methods retrieved"
// @Router			/formas-pagamento [get]
func (app *application) handleGetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	data := app.engine.PaymentMethods()

	response := &GetPaymentMethodsResponse{
		Success: true,
		Data:    data,
		Message: "Formas de pagamento",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Suggest track
// @Description	Picks the track that fits a set of selected discount codes.
// @Tags			Trilhos
// @Accept			json
// @Produce		json
// @Param			request	body		object{codigos:[]string}	true	"Selected discount codes"
// @Success		200		{object}	SuggestTrackResponse		"Track suggested, data null when no track fits"
// @Failure		400		{object}	response.ErrorResponse		"Invalid request payload"
// @Router			/trilhos/sugerir [post]
func (app *application) handleSuggestTrack(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Codigos []string `json:"codigos"`
	}

	if err := readJSON(w, r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	track := app.engine.SuggestTrack(r.Context(), input.Codigos)

	response := &SuggestTrackResponse{
		Success: true,
		Data:    track,
		Message: "Sugestão de trilho",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
