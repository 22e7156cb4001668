// Package httpapi exposes the phrase generator over HTTP with chi.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
	logpkg "github.com/majorsys/mnemo/internal/logger"
	"github.com/majorsys/mnemo/internal/metrics"
	healthuc "github.com/majorsys/mnemo/internal/usecase/health"
	phraseuc "github.com/majorsys/mnemo/internal/usecase/phrase"
	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
)

// Server wires the use case services into HTTP handlers.
type Server struct {
	phrase *phraseuc.Service
	stats  *statsuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	phrase *phraseuc.Service,
	stats *statsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		phrase: phrase,
		stats:  stats,
		health: health,
		logger: logger,
	}
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/phrase", s.generatePhrase)
	r.Get("/v1/stats", s.getStats)
	r.Get("/health", s.getHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// phraseRequest is the POST /v1/phrase body.
type phraseRequest struct {
	Number string `json:"number"`
}

// phraseResponse is the POST /v1/phrase reply.
type phraseResponse struct {
	Number string `json:"number"`
	Phrase string `json:"phrase"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) generatePhrase(w http.ResponseWriter, r *http.Request) {
	var req phraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	phrase, err := s.phrase.Assemble(req.Number)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	metrics.PhraseDuration.Observe(time.Since(start).Seconds())
	metrics.PhraseRequestsTotal.WithLabelValues("ok").Inc()

	writeJSON(w, http.StatusOK, phraseResponse{Number: req.Number, Phrase: phrase})
}

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Report())
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Check(r.Context()); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDomainError maps sentinel errors to HTTP status codes.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.PhraseRequestsTotal.WithLabelValues("invalid_input").Inc()
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrTaggerProviderError):
		writeError(w, http.StatusBadGateway, "tagger_provider_error", err.Error())
	default:
		// Request-scoped logger carries request_id from the middleware.
		logpkg.FromContext(r.Context()).Error("Unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
