package main

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"inquirydesk/store"
)

// Server serves the inquiry admin API
type Server struct {
	config    *Config
	logger    *zerolog.Logger
	passwords PasswordVerifier

	store struct {
		inquiryStore store.InquiryInterface
		adminStore   store.AdminInterface
		logsStore    store.LogsInterface
	}
}

// NewServer creates a new Server instance
func NewServer(config *Config, db *gorm.DB, logger zerolog.Logger) *Server {
	s := &Server{
		config:    config,
		logger:    &logger,
		passwords: NewPasswordVerifier(config.PasswordMode),
	}

	s.store.inquiryStore = store.NewInquiryStore(&logger, db)
	s.store.adminStore = store.NewAdminStore(&logger, db)
	s.store.logsStore = store.NewLogStore(db, &logger)

	return s
}
