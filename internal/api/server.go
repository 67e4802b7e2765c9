// Package api exposes the occurrence-estimation engine over HTTP for the
// calendar UI. The surface is read-only: it serves the loaded job
// definitions and per-day occurrence counts, never executing or mutating
// anything.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aatumaykin/croncal/internal/job"
	"github.com/aatumaykin/croncal/internal/logger"
)

// Server serves the estimate API for a fixed set of job definitions.
type Server struct {
	log     *logger.Logger
	jobs    []job.Job
	byID    map[string]job.Job
	metrics *Metrics
	mux     *http.ServeMux
}

// NewServer constructs a Server over the given job definitions. metrics
// may be nil to run uninstrumented (the /metrics route is then omitted).
func NewServer(log *logger.Logger, jobs []job.Job, metrics *Metrics) *Server {
	byID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	s := &Server{
		log:     log,
		jobs:    jobs,
		byID:    byID,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/jobs", s.handleJobs)
	s.mux.HandleFunc("GET /api/estimate", s.handleEstimate)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", promhttp.Handler())
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
