// ABOUTME: HTTP server wiring routes, auth gate, and role guards
// ABOUTME: Manages listener lifecycle and graceful shutdown

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/config"
	"github.com/hirelane/hirelane/internal/store"
)

// Server hosts the hirelane HTTP API.
type Server struct {
	config     *config.Config
	store      store.Store
	codec      *auth.TokenCodec
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new Server with the given configuration and store.
func New(cfg *config.Config, s store.Store, logger *slog.Logger) (*Server, error) {
	codec, err := auth.NewTokenCodec([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token codec: %w", err)
	}

	srv := &Server{
		config: cfg,
		store:  s,
		codec:  codec,
		logger: logger.With("component", "server"),
	}

	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	srv.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.corsMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, nil
}

// registerRoutes registers all API routes on the given mux.
// The gate resolves the session token to a principal; role guards compose
// on top of it for routes restricted to one side of the board.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	gate := auth.Middleware(s.store, s.codec)
	employerOnly := auth.RequireRole(store.RoleEmployer)
	seekerOnly := auth.RequireRole(store.RoleJobSeeker)

	mux.HandleFunc("/health", s.handleHealth)

	// Session issuance - no auth required
	mux.HandleFunc("POST /api/v1/user/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/user/login", s.handleLogin)
	mux.HandleFunc("POST /api/v1/user/logout", s.handleLogout)

	// Authenticated routes
	mux.Handle("GET /api/v1/user/getuser", gate(http.HandlerFunc(s.handleGetUser)))

	mux.Handle("GET /api/v1/job/getall", gate(http.HandlerFunc(s.handleGetAllJobs)))
	mux.Handle("GET /api/v1/job/{id}", gate(http.HandlerFunc(s.handleJobDetail)))
	mux.Handle("POST /api/v1/job/post", gate(employerOnly(http.HandlerFunc(s.handlePostJob))))
	mux.Handle("GET /api/v1/job/getmyjobs", gate(employerOnly(http.HandlerFunc(s.handleMyJobs))))
	mux.Handle("PUT /api/v1/job/update/{id}", gate(employerOnly(http.HandlerFunc(s.handleUpdateJob))))
	mux.Handle("DELETE /api/v1/job/delete/{id}", gate(employerOnly(http.HandlerFunc(s.handleDeleteJob))))

	mux.Handle("POST /api/v1/application/post", gate(seekerOnly(http.HandlerFunc(s.handlePostApplication))))
	mux.Handle("GET /api/v1/application/jobseeker/getall", gate(seekerOnly(http.HandlerFunc(s.handleSeekerApplications))))
	mux.Handle("GET /api/v1/application/employer/getall", gate(employerOnly(http.HandlerFunc(s.handleEmployerApplications))))
	mux.Handle("DELETE /api/v1/application/delete/{id}", gate(seekerOnly(http.HandlerFunc(s.handleDeleteApplication))))
}

// Handler returns the server's root HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// corsMiddleware allows the configured browser origin with credentials.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	origin := s.config.CORS.AllowedOrigin

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth reports server liveness. No auth required.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run starts the HTTP server and blocks until the context is canceled.
// Returns nil on graceful shutdown, or an error if the server fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on HTTP address: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
