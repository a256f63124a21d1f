// Package server exposes word colors, palettes and icons over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jsvensson/wordhue"
	"github.com/jsvensson/wordhue/internal/config"
	"github.com/tliron/commonlog"
)

const shutdownTimeout = 5 * time.Second

// Server holds dependencies for HTTP handlers.
type Server struct {
	gen    *wordhue.Generator
	cfg    *config.Config
	router *chi.Mux
	log    commonlog.Logger
}

// New creates a Server with all routes configured.
func New(gen *wordhue.Generator, cfg *config.Config) *Server {
	s := &Server{
		gen:    gen,
		cfg:    cfg,
		router: chi.NewRouter(),
		log:    commonlog.GetLogger("wordhue.server"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleWelcome)
	s.router.Get("/color/{text}", s.handleColor)
	s.router.Get("/color_debug/{text}", s.handleColorDebug)
	s.router.Get("/palette/{scheme}/{text}", s.handlePalette)
	s.router.Get("/icon/{text}", s.handleIcon)

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.Server.StaticDir)))
	s.router.Handle("/static/*", static)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// ListenAndServe serves on the configured port until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
