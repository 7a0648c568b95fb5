// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/Benchwise/internal/api/matches"
	"github.com/codr1/Benchwise/internal/api/players"
	"github.com/codr1/Benchwise/internal/api/stats"
	"github.com/codr1/Benchwise/internal/api/teams"
	"github.com/codr1/Benchwise/internal/config"
	"github.com/codr1/Benchwise/internal/db"
	"github.com/codr1/Benchwise/internal/matchstate"
	"github.com/codr1/Benchwise/internal/ratelimit"
	"github.com/codr1/Benchwise/internal/rotation"
	"github.com/codr1/Benchwise/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	stateService, err := matchstate.NewService(database, rotation.QueueStrategy(cfg.Rotation.DefaultStrategy))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create match state service")
	}

	teams.InitHandlers(database)
	players.InitHandlers(database)
	matches.InitHandlers(database, stateService)
	stats.InitHandlers(database)

	if err := scheduler.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	staleAfter := time.Duration(cfg.Scheduler.MatchStaleAfterHours) * time.Hour
	if err := scheduler.RegisterMatchSweepJob(stateService, cfg.Scheduler.MatchSweepSchedule, staleAfter); err != nil {
		log.Fatal().Err(err).Msg("Failed to register match sweep job")
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	limiter := ratelimit.New(ratelimit.DefaultConfig())
	defer limiter.Close()

	server := newServer(cfg, limiter)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("environment", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
