// @title        Users API
// @version      1.0
// @description  In-memory user CRUD service.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/userhub/users-api/internal/api"
	"github.com/userhub/users-api/internal/infrastructure/db/memory"
	"github.com/userhub/users-api/internal/pkg/config"
	"github.com/userhub/users-api/pkg/logger"
)

const serviceName = "users-api"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	repo := memory.NewUserRepository()
	e := api.NewRouter(cfg, repo, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", "http://localhost"+cfg.Addr()).Msg("server running")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
