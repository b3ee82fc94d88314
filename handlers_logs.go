package main

import (
	"net/http"
)

// handleGetLogs pages through the log lines persisted by the SQL log sink.
func (s *Server) handleGetLogs(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)
	query := r.URL.Query()

	page, limit := pageParams(query)

	result, err := s.store.logsStore.GetPaginatedLogs(ctx, requestID, page, limit, query.Get("level"))
	if err != nil {
		return err
	}

	s.writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    result.Result,
		Pagination: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages(),
		},
	})

	return nil
}
