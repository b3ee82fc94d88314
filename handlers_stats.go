package main

import (
	"net/http"

	"inquirydesk/store"
)

// handleStats writes the zeroed stats shape even on failure so the admin
// panel always has something to render.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	stats, err := s.store.inquiryStore.Stats(ctx, requestID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Stats API Error")
		s.writeJSON(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   err.Error(),
			Data:    store.Stats{Sources: []string{}},
		})
		return nil
	}

	if stats.Sources == nil {
		stats.Sources = []string{}
	}

	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Data: stats})

	return nil
}
