package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/smart-budget/backend/internal/auth"
	"github.com/smart-budget/backend/internal/config"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/report"
	"github.com/smart-budget/backend/internal/repository"
	"github.com/smart-budget/backend/internal/router"
	"github.com/smart-budget/backend/internal/storage"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init --parseDependency --output ./api

//	@title						Smart Budget
//	@version					0.0.0
//	@description				The backend for Smart Budget, a personal budgeting application.
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
//	@description				The token returned by register or login, prefixed with "Bearer ".

// store is the storage backend together with the means to close it.
type store interface {
	storage.Storage
	storage.Pinger
	Close() error
}

func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err := cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("Closing storage")
		}
	}()

	formatter, err := report.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	repo := repository.New(s)
	co := v1.Controller{
		Repo:      repo,
		Auth:      auth.NewService(repo, []byte(cfg.TokenSecret), cfg.TokenTTL),
		Formatter: formatter,
		Store:     s,
	}

	r, teardown, err := router.Config(cfg.BaseURL(), router.WithCORS(cfg.CORSAllowOrigins), router.WithPprof(cfg.EnablePprof))
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"))

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", cfg.ListenAddress).Str("storage", cfg.StorageBackend).Msg("Listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server")
	}
}

// openStore opens the configured storage backend.
func openStore(cfg *config.Config) (store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn().Msg("Using in-memory storage, all data is lost on shutdown")
		return memoryStore{storage.NewMemory()}, nil
	case config.BackendPostgres:
		db, err := storage.NewDatabase(storage.Postgres(cfg.PostgresDSN()))
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return nil, err
	}

	db, err := storage.NewDatabase(storage.SQLite(cfg.DBPath))
	if err != nil {
		return nil, err
	}
	return db, nil
}

type memoryStore struct {
	*storage.Memory
}

func (memoryStore) Close() error {
	return nil
}
