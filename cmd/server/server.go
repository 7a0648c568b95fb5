// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/codr1/Benchwise/internal/api"
	"github.com/codr1/Benchwise/internal/api/matches"
	"github.com/codr1/Benchwise/internal/api/players"
	"github.com/codr1/Benchwise/internal/api/stats"
	"github.com/codr1/Benchwise/internal/api/teams"
	"github.com/codr1/Benchwise/internal/config"
	"github.com/codr1/Benchwise/internal/ratelimit"
)

func newServer(cfg *config.Config, limiter *ratelimit.Limiter) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	trustProxy := cfg.App.Environment != "development"
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithRateLimit(limiter, trustProxy),
	)

	// Register routes
	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Team and player routes
	mux.HandleFunc("GET /api/v1/teams", teams.HandleListTeams)
	mux.HandleFunc("POST /api/v1/teams", teams.HandleCreateTeam)
	mux.HandleFunc("GET /api/v1/players", players.HandleListPlayers)
	mux.HandleFunc("POST /api/v1/players", players.HandleCreatePlayer)

	// Match routes
	mux.HandleFunc("GET /api/v1/matches", matches.HandleListMatches)
	mux.HandleFunc("POST /api/v1/matches", matches.HandleCreateMatch)
	mux.HandleFunc("GET /api/v1/matches/{id}", matches.HandleGetMatch)
	mux.HandleFunc("PUT /api/v1/matches/{id}/score", matches.HandleUpdateScore)
	mux.HandleFunc("PUT /api/v1/matches/{id}/status", matches.HandleUpdateStatus)

	// Availability routes
	mux.HandleFunc("GET /api/v1/matches/{id}/availability", matches.HandleListAvailability)
	mux.HandleFunc("PUT /api/v1/matches/{id}/availability", matches.HandleSetAvailability)

	// Rotation routes
	mux.HandleFunc("GET /api/v1/matches/{id}/rotation", matches.HandleRotationView)
	mux.HandleFunc("PUT /api/v1/matches/{id}/rotation/formation", matches.HandleSetFormation)
	mux.HandleFunc("POST /api/v1/matches/{id}/rotation/mode", matches.HandleSwitchMode)
	mux.HandleFunc("POST /api/v1/matches/{id}/rotation/substitution", matches.HandleSubstitution)

	// Stats routes
	mux.HandleFunc("GET /api/v1/stats/attendance", stats.HandleAttendance)
	mux.HandleFunc("GET /api/v1/stats/players", stats.HandlePlayerTotals)
}
