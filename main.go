package main

import (
	"context"
	goflag "flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	envFile := goflag.String("env", ".env", "Path to an optional .env file")
	goflag.Parse()

	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	config, err := NewConfig(*envFile)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := openDatabase(config)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to open database")
	}

	if config.AutoMigrate {
		if err = dbInit(db); err != nil {
			boot.Fatal().Err(err).Msg("Failed to initialize database")
		}
	}

	logger := setupLogger(db, config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := NewServer(config, db, logger)
	if err = server.HTTPServer(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server failed")
	}

	if err = closeDatabase(db); err != nil {
		logger.Error().Err(err).Msg("Failed to close database")
	}
}
