// Package server implements the public HTTP surface of soundpost.
//
// It exposes the synthesis API (raw audio, base64 JSON, server-side
// playback), the voice listing, a small web form for interactive use, and
// the Swagger UI. Every handler is a thin adapter over the engine: decode
// input, run the one synthesis flow, shape the output.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nadzzz/soundpost/docs" // registers the generated OpenAPI document
	"github.com/nadzzz/soundpost/internal/engine"
)

// Server serves the public HTTP API on one port.
type Server struct {
	port   int
	server *http.Server
	engine *engine.Engine
}

// New creates a new Server on the given port.
func New(port int, eng *engine.Engine) *Server {
	return &Server{port: port, engine: eng}
}

// Name returns the surface identifier.
func (s *Server) Name() string { return "http" }

// routes builds the handler stack. Kept separate from Listen so tests can
// exercise the full mux without a listening socket.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/voices", s.handleVoices)
	mux.HandleFunc("POST /api/tts", s.handleTTS)
	mux.HandleFunc("POST /api/tts/base64", s.handleTTSBase64)
	mux.HandleFunc("POST /api/speak", s.handleSpeak)

	// Swagger UI, serving the generated OpenAPI document.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return withRequestID(mux)
}

// Listen starts the HTTP server and blocks until ctx is canceled or the
// listener fails.
func (s *Server) Listen(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// withRequestID assigns each request a correlation id, echoes it back, and
// emits one access log line.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("http request", "request_id", id, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
