package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"inquirydesk/store"
)

func setupLogger(db *gorm.DB, config *Config) zerolog.Logger {
	// Configure console writer
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}

	writers := []io.Writer{consoleWriter}

	// Configure SQL writer
	if config.LogToDB && db != nil {
		writers = append(writers, store.NewSqlWriter(db))
	}

	// Combine writers using MultiLevelWriter
	multi := zerolog.MultiLevelWriter(writers...)

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	// Create logger with timestamp and caller
	logger := zerolog.New(multi).Level(level).With().Timestamp().Caller().Logger()

	if err != nil {
		logger.Warn().Err(err).Msgf("Unknown LOG_LEVEL %q, using info", config.LogLevel)
	}

	return logger
}
