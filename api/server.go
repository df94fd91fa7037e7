// Package api - Thin HTTP layer over the analyzer
// The API is ONLY responsible for: upload ingestion, analyzer invocation,
// output serialization. It never inspects file content itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gerber-estimate/core/analyzer"
)

// Options configures a Server
type Options struct {
	Version        string
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	root    http.Handler
	version string
	logger  *zap.Logger
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		handler: NewHandler(analyzer.New(logger.Named("analyzer")), opts.MaxUploadBytes, opts.Version, logger.Named("handler")),
		mux:     http.NewServeMux(),
		version: opts.Version,
		logger:  logger,
	}

	s.registerRoutes()
	s.root = RequestLogging(logger, s.mux)
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /analyze", s.handler.HandleAnalyze)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "gerber-estimate",
		"api_version": "v1",
	}, http.StatusOK)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.root.ServeHTTP(w, r)
}

// HTTPServer returns an *http.Server for addr with conservative timeouts
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
	}
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
