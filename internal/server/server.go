// Package server provides the HTTP interface of the portfolio: the rendered
// page and a small JSON API over the same state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/types"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 30 * time.Second

// ProjectSource resolves the project list for an owner. It never fails.
type ProjectSource interface {
	FetchProjects(ctx context.Context, owner string) projects.Result
}

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req types.ContactRequest) (types.Notification, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	profile    *types.Profile
	projects   ProjectSource
	contact    ContactService
	now        func() time.Time
}

// Config holds server configuration
type Config struct {
	Addr     string
	Profile  *types.Profile
	Projects ProjectSource
	Contact  ContactService
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Profile == nil {
		return nil, fmt.Errorf("server requires a content profile")
	}
	if cfg.Projects == nil {
		return nil, fmt.Errorf("server requires a project source")
	}
	if cfg.Contact == nil {
		return nil, fmt.Errorf("server requires a contact service")
	}

	s := &Server{
		profile:  cfg.Profile,
		projects: cfg.Projects,
		contact:  cfg.Contact,
		now:      time.Now,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.withLogging)
	r.Use(middleware.Recoverer)
	r.Use(s.withCORS)

	// Page
	r.Get("/", s.handlePage)
	r.Post("/contact", s.handleContactForm)
	r.Post("/theme/toggle", s.handleThemeToggleForm)
	r.Get("/cv", s.handleCV)
	r.Get("/health", s.handleHealth)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)

		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/{name}", s.handleGetProject)

		r.Get("/certificates", s.handleListCertificates)
		r.Get("/certificates/{id}", s.handleGetCertificate)

		r.Post("/contact", s.handleContact)

		r.Get("/theme", s.handleGetTheme)
		r.Put("/theme", s.handleSetTheme)
		r.Post("/theme/toggle", s.handleToggleTheme)
	})

	return r
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens on the configured address and serves until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", ln.Addr())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Println("Server stopped")
		return nil
	})

	return g.Wait()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		reqID := middleware.GetReqID(r.Context())
		log.Printf("[%s] %s %s %s", r.Method, r.URL.Path, r.RemoteAddr, reqID)
		next.ServeHTTP(ww, r)
		log.Printf("[%s] %s %d completed in %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
