// Package server exposes the class engine over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness and build version
//	GET  /v1/breakpoints        the breakpoint table
//	POST /v1/classes            render a document (blocks list or one block)
//	POST /v1/classes/{block}    render bare attributes as the named block
//
// The classes routes accept ?profile=canonical|legacy, ?strict=1 and
// ?format=json|text|html. Bodies are JSON unless Content-Type names YAML
// or TOML.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/newjenk/gridsystem/pkg/grid"
	"github.com/newjenk/gridsystem/pkg/pipeline"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Server serves render requests from a shared Runner.
type Server struct {
	runner  *pipeline.Runner
	profile grid.Profile
	logger  *log.Logger

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// Option customizes a Server.
type Option func(*Server)

// WithProfile sets the profile used when a request names none.
func WithProfile(p grid.Profile) Option {
	return func(s *Server) { s.profile = p }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeouts sets the http.Server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

// New creates a server rendering through runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner:       runner,
		profile:      grid.Canonical,
		logger:       log.Default(),
		readTimeout:  10 * time.Second,
		writeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/breakpoints", s.handleBreakpoints)
		r.Post("/classes", s.handleDocument)
		r.Post("/classes/{block}", s.handleBlock)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests. ready, when non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	if ready != nil {
		ready(ln.Addr())
	}
	s.logger.Info("listening", "addr", ln.Addr().String(), "profile", s.profile)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
