package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type requestIDKey struct{}

// Router builds the API routes wrapped in the CORS layer.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	// Admin
	r.HandleFunc("/api/login", s.handle(s.handleLogin)).Methods(http.MethodPost)
	r.HandleFunc("/api/change-password", s.handle(s.handleChangePassword)).Methods(http.MethodPost)

	// Inquiries
	r.HandleFunc("/api/inquiries", s.handle(s.handleListInquiries)).Methods(http.MethodGet)
	r.HandleFunc("/api/inquiries", s.handle(s.handleCreateInquiry)).Methods(http.MethodPost)
	r.HandleFunc("/api/inquiries/{id:[0-9]+}", s.handle(s.handleGetInquiry)).Methods(http.MethodGet)
	r.HandleFunc("/api/inquiries/{id:[0-9]+}", s.handle(s.handleUpdateInquiry)).Methods(http.MethodPut)
	r.HandleFunc("/api/inquiries/{id:[0-9]+}", s.handle(s.handleDeleteInquiry)).Methods(http.MethodDelete)

	// Stats
	r.HandleFunc("/api/stats", s.handle(s.handleStats)).Methods(http.MethodGet)

	// Logs
	r.HandleFunc("/api/logs", s.handle(s.handleGetLogs)).Methods(http.MethodGet)

	return s.withCORS(r)
}

// HTTPServer serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) HTTPServer(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.HTTPListen,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Msgf("HTTP server listening on %s", s.config.HTTPListen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// allowedMethods is the CORS method allowlist of the endpoint serving path.
func allowedMethods(path string) string {
	switch path {
	case "/api/login", "/api/change-password":
		return allowLoginMethods
	case "/api/stats", "/api/logs":
		return allowReadOnlyMethods
	default:
		return allowInquiryMethods
	}
}

// withCORS stamps CORS headers and a request id on every response and
// answers preflight requests itself.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New()

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", allowedMethods(r.URL.Path))
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set(headerRequestID, requestID.String())

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID)))

		s.logger.Info().
			Str("request_id", requestID.String()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

// requestContext returns the request context and the id withCORS assigned.
func requestContext(r *http.Request) (context.Context, uuid.UUID) {
	ctx := r.Context()
	if id, ok := ctx.Value(requestIDKey{}).(uuid.UUID); ok {
		return ctx, id
	}
	return ctx, uuid.New()
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, msgNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.written = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.written = true
	return r.ResponseWriter.Write(b)
}

// recorderFor reuses the recorder withCORS installed, if any.
func recorderFor(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}
