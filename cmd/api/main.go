// Command api runs the HTTP API server.
//
// Startup order: config, logger, server container (database pool),
// migrations, then the repository/service/handler/middleware wiring,
// and finally the HTTP listener. Shutdown drains inflight requests and
// closes the pool on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/higgslabs/higgs-api/internal/config"
	"github.com/higgslabs/higgs-api/internal/database"
	"github.com/higgslabs/higgs-api/internal/handler"
	"github.com/higgslabs/higgs-api/internal/logger"
	"github.com/higgslabs/higgs-api/internal/middleware"
	"github.com/higgslabs/higgs-api/internal/repository"
	"github.com/higgslabs/higgs-api/internal/router"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/higgslabs/higgs-api/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; fall back to a bare stderr logger.
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	middlewares := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.Setup(middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
