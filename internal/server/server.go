// Package server exposes the displayed graph, view mutators and search to
// the rendering surface over HTTP and WebSocket.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yc815/depviz/internal/session"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the graph explorer API.
type Server struct {
	cfg        Config
	workspace  *session.Workspace
	sessions   *session.Manager
	defaultSID string
	elements   session.ElementSource
	annotation session.AnnotationSource
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given workspace and data sources. A default
// session is created up front so stateless clients can use the mutator
// endpoints without managing session ids.
func New(cfg Config, w *session.Workspace, elems session.ElementSource, ann session.AnnotationSource) *Server {
	s := &Server{
		cfg:        cfg,
		workspace:  w,
		sessions:   session.NewManager(w),
		elements:   elems,
		annotation: ann,
	}
	s.defaultSID = s.sessions.Create().ID
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerRoutes(r)
	r.Get("/ws", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Reload rebuilds the workspace from the configured sources.
func (s *Server) Reload(ctx context.Context) error {
	return s.workspace.Load(ctx, s.elements, s.annotation)
}

// Start loads the initial data and begins listening on the configured port.
func (s *Server) Start() error {
	if err := s.Reload(context.Background()); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("depviz server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// resolveSession picks the session named by the X-Session-ID header, falling
// back to the shared default session.
func (s *Server) resolveSession(r *http.Request) (*session.Session, bool) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		id = s.defaultSID
	}
	return s.sessions.Get(id)
}
