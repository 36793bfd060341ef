package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iesje/matricula_engine/internal/enrollment"
	"github.com/iesje/matricula_engine/internal/logger"
	"github.com/iesje/matricula_engine/internal/store"
)

type application struct {
	config config
	engine *enrollment.Engine
	logger *logger.Logger
	// store is nil when no database is configured; handlers that enrich
	// requests from it must check.
	store *store.Storage
}

type config struct {
	addr         string
	db           dbConfig
	redisAddr    string
	refdataTTL   time.Duration
	globalMaxCap float64
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/cep", func(r chi.Router) {
			r.Get("/{cep}", app.handleClassifyCep)
		})

		r.Route("/descontos", func(r chi.Router) {
			r.Get("/", app.handleGetDiscountTypes)
			r.Post("/elegibilidade", app.handleAnalyzeEligibility)
		})

		r.Route("/trilhos", func(r chi.Router) {
			r.Get("/", app.handleGetTracks)
			r.Post("/sugerir", app.handleSuggestTrack)
		})

		r.Route("/series", func(r chi.Router) {
			r.Get("/", app.handleGetSeries)
			r.Get("/{id}/proxima", app.handleNextSeries)
		})
		r.Get("/formas-pagamento", app.handleGetPaymentMethods)

		r.Route("/calculos", func(r chi.Router) {
			r.Post("/", app.handleCalculate)
			r.Post("/simulacao", app.handleSimulate)
			r.Post("/juros", app.handleLateFees)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
