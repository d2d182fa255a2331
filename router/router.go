// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rotisserie/eris"

	"github.com/countmore/countmore/analytics"
	"github.com/countmore/countmore/cliparse"
	"github.com/countmore/countmore/db"
	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/handlers"
	"github.com/countmore/countmore/middleware"
	"github.com/countmore/countmore/registration"
	"github.com/countmore/countmore/summary"
)

// NewRouter loads the static tables named by cfg and wires every route.
// limiter throttles the routes that record events.
func NewRouter(conn *sql.DB, cfg cliparse.Config, limiter *middleware.RateLimiter) (*chi.Mux, error) {
	data, err := election.Load(cfg.DataDir)
	if err != nil {
		return nil, eris.Wrap(err, "router: load election data")
	}

	writer, err := summary.NewWriter(data, cfg.ReferenceYear)
	if err != nil {
		return nil, eris.Wrapf(err, "router: reference year %d", cfg.ReferenceYear)
	}

	registry, err := NewRegistry(data, cfg.Registration)
	if err != nil {
		return nil, err
	}

	store := db.NewEventStore(conn)
	tracker := analytics.NewTracker(data.Rankings(), analytics.MultiRecorder{analytics.LogRecorder{}, store})

	// Initialize handlers
	statesHandler := handlers.NewStatesHandler(data)
	selectionHandler := handlers.NewSelectionHandler(data, writer, tracker, cfg)
	registrationHandler := handlers.NewRegistrationHandler(registry, tracker, cfg)
	shareHandler := handlers.NewShareHandler(cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(store, cfg)

	r := chi.NewRouter()
	// Forwarding headers are client-controlled unless a proxy overwrites them.
	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.CORS(cfg.Origins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logging)

		// Static tables (public)
		r.Get("/states", statesHandler.ListStates)
		r.Get("/states/{code}", statesHandler.GetState)
		r.Get("/elections/{year}/{code}", statesHandler.GetElection)
		r.Get("/share", shareHandler.Share)

		// Routes that record events
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)

			r.Post("/selections", selectionHandler.SelectStates)
			r.Get("/states/{code}/register", registrationHandler.Register)
			r.Get("/states/{code}/verify", registrationHandler.Verify)
			r.Post("/events/voteamerica", registrationHandler.VoteAmericaEvent)
		})

		// Event reporting (admin)
		r.Get("/admin/events/summary", analyticsHandler.Summary)
		r.Get("/admin/events", analyticsHandler.Recent)
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("countmore API v1"))
	})

	return r, nil
}

// NewRegistry builds the registration handlers from cfg and selects the
// configured default.
func NewRegistry(data *election.Dataset, cfg cliparse.RegistrationConfig) (*registration.Registry, error) {
	direct := registration.NewDirect(data)
	registry := registration.NewRegistry(
		direct,
		&registration.VoteAmerica{
			RegisterPage: cfg.VoteAmericaRegister,
			VerifyPage:   cfg.VoteAmericaVerify,
		},
		&registration.RockTheVote{
			BaseURL:   cfg.RockTheVoteURL,
			PartnerID: cfg.RockTheVotePartner,
			Fallback:  direct,
		},
	)
	if err := registry.SetDefault(cfg.DefaultHandler); err != nil {
		return nil, eris.Wrap(err, "router: default registration handler")
	}
	return registry, nil
}
