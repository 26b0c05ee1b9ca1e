package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/decision-engine/internal/config"
	"github.com/jonathan/decision-engine/internal/db"
	"github.com/jonathan/decision-engine/internal/guardrails"
	"github.com/jonathan/decision-engine/internal/server/middleware"
	"github.com/jonathan/decision-engine/internal/server/ratelimit"
)

// Server exposes the decision engine over HTTP.
type Server struct {
	httpServer *http.Server
	engine     *guardrails.Engine
	database   *db.DB // nil when persistence is not configured
	cfg        *config.Config
	jwtService *JWTService
	creds      *config.ClientCredentials
	limiter    *ratelimit.Limiter
	validate   *validator.Validate
}

// New creates a server instance wired from configuration. The database is
// optional; decision endpoints work without it but nothing is persisted.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		engine:   guardrails.New(),
		cfg:      cfg,
		limiter:  ratelimit.NewLimiterFromEnv(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.database = database
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	creds, err := config.NewClientCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to load client credentials: %w", err)
	}
	s.creds = creds

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/auth/token", s.handleToken)

	auth := middleware.Auth(s.jwtService)
	mux.Handle("POST /v1/decisions", auth(s.rateLimited(http.HandlerFunc(s.handleEvaluate))))
	mux.Handle("GET /v1/decisions", auth(s.rateLimited(http.HandlerFunc(s.handleListDecisions))))
	mux.Handle("GET /v1/decisions/{id}", auth(s.rateLimited(http.HandlerFunc(s.handleGetDecision))))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// rateLimited rejects requests over the per-client budget with 429.
func (s *Server) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := middleware.ClientID(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !s.limiter.Allow(clientID) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("decision engine listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if s.database != nil {
		s.database.Close()
	}
	return nil
}
