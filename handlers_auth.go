package main

import (
	"errors"
	"fmt"
	"net/http"

	"inquirydesk/store"
)

// handleLogin checks the shared admin password. The first login creates the
// admin row with the default password.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	var credential struct {
		Password interface{} `json:"password"`
	}

	if err := decodeBody(r, &credential); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode login request")
		s.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil
	}

	if !truthy(credential.Password) {
		s.writeError(w, http.StatusBadRequest, msgPasswordRequired)
		return nil
	}

	var stored string

	admin, err := s.store.adminStore.Get(ctx, requestID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.logger.Info().Msg("Admin credential missing, creating it with the default password")

		hashed, err := s.passwords.Hash(s.config.AdminDefaultPassword)
		if err != nil {
			return fmt.Errorf("hash default password: %w", err)
		}

		if err = s.store.adminStore.Create(ctx, requestID, hashed); err != nil {
			return err
		}

		stored = hashed
	case err != nil:
		return err
	default:
		stored = admin.Password
	}

	// a non-string password never equals the stored one
	candidate, isString := credential.Password.(string)
	if !isString || !s.passwords.Verify(stored, candidate) {
		s.logger.Warn().Msg("Invalid admin password")
		s.writeError(w, http.StatusUnauthorized, msgPasswordMismatch)
		return nil
	}

	s.logger.Info().Msg("Admin logged in")
	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Message: msgLoginSuccess})

	return nil
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	var body struct {
		CurrentPassword interface{} `json:"currentPassword"`
		NewPassword     interface{} `json:"newPassword"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode change-password request")
		s.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil
	}

	if !truthy(body.CurrentPassword) || !truthy(body.NewPassword) {
		s.writeError(w, http.StatusBadRequest, msgBothPasswords)
		return nil
	}

	admin, err := s.store.adminStore.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, msgAdminNotFound)
			return nil
		}
		return err
	}

	current, isString := body.CurrentPassword.(string)
	if !isString || !s.passwords.Verify(admin.Password, current) {
		s.logger.Warn().Msg("Current admin password does not match")
		s.writeError(w, http.StatusUnauthorized, msgCurrentMismatch)
		return nil
	}

	hashed, err := s.passwords.Hash(textValue(body.NewPassword))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		s.writeError(w, http.StatusInternalServerError, msgPasswordFailed)
		return nil
	}

	if err = s.store.adminStore.UpdatePassword(ctx, requestID, hashed); err != nil {
		s.logger.Error().Err(err).Msg("Failed to update admin password")
		s.writeError(w, http.StatusInternalServerError, msgPasswordFailed)
		return nil
	}

	s.logger.Info().Msg("Admin password changed")
	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Message: msgPasswordChanged})

	return nil
}
