package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/outbox"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer database.Close()

	services := setupServices(database, config)
	server := setupServer(services, config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker, publisher := setupOutbox(ctx, database, config)
	if worker != nil {
		defer worker.Stop()
	}
	if publisher != nil {
		defer publisher.Close()
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// setupOutbox connects to NATS and starts the outbox worker. Without a
// reachable broker the API still stages events; a later worker run drains
// them.
func setupOutbox(ctx context.Context, database *sqlx.DB, config *Config) (*outbox.Worker, *outbox.JetStreamPublisher) {
	jsCfg := outbox.DefaultJetStreamConfig()
	jsCfg.URL = getEnv("NATS_URL", jsCfg.URL)
	if config.Nats.StreamName != "" {
		jsCfg.StreamName = config.Nats.StreamName
	}
	if config.Nats.SubjectPrefix != "" {
		jsCfg.SubjectPrefix = config.Nats.SubjectPrefix
	}

	publisher, err := outbox.NewJetStreamPublisher(jsCfg)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, outbox worker disabled")
		return nil, nil
	}

	workerCfg := outbox.DefaultConfig()
	if config.Outbox.PollInterval > 0 {
		workerCfg.PollInterval = time.Duration(config.Outbox.PollInterval)
	}
	if config.Outbox.BatchSize > 0 {
		workerCfg.BatchSize = config.Outbox.BatchSize
	}
	if config.Outbox.MaxRetries > 0 {
		workerCfg.MaxRetries = config.Outbox.MaxRetries
	}

	worker := outbox.NewWorker(database, publisher, workerCfg, slog.Default())
	if err := worker.Start(ctx); err != nil {
		log.Error().Err(err).Msg("failed to start outbox worker")
		publisher.Close()
		return nil, nil
	}
	return worker, publisher
}
