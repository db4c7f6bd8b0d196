package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/soukwatch/pricetracker/cmd/tracker/config"
	"github.com/soukwatch/pricetracker/internal/detector"
	"github.com/soukwatch/pricetracker/internal/handler"
	"github.com/soukwatch/pricetracker/internal/normalizer"
	"github.com/soukwatch/pricetracker/internal/platform/rabbitmq"
	"github.com/soukwatch/pricetracker/internal/platform/storage"
	"github.com/soukwatch/pricetracker/internal/platform/storage/sqlitemirror"
	"github.com/soukwatch/pricetracker/internal/tracker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// .env is optional, environment variables win
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)

	trackerOps := []tracker.Option{
		tracker.WithItemTimeout(cfg.ItemTimeout),
	}

	var mirror *sqlitemirror.Mirror
	if cfg.SQLitePath != "" {
		mirror, err = sqlitemirror.Open(cfg.SQLitePath)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open SQLite mirror")
		}
		trackerOps = append(trackerOps, tracker.WithMirror(mirror))
	}

	tra := tracker.NewTracker(
		normalizer.NewNormalizer(),
		detector.NewDetector(store),
		store,
		&logger,
		trackerOps...,
	)

	han := handler.NewHandler(conn, tra, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("price tracker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	if mirror != nil {
		if err := mirror.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close SQLite mirror")
		}
	}

	logger.Info().Msg("graceful shutdown successful")
}
