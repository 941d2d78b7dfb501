package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/curdle/pkg/store"
)

// Server holds the API server state
type Server struct {
	store   ScoreAdjuster
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(store ScoreAdjuster, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleAdjust applies one score adjustment to the named player. The
// record is created when the player has no score yet. Both outcomes
// are reported identically: the endpoint deliberately never reveals
// the stored score, which keeps score queries out of the API surface.
func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	player, err := url.QueryUnescape(chi.URLParam(r, "player"))
	if err != nil {
		s.recordAdjustment(OutcomeInvalidName, start)
		sendError(w, "Invalid player name encoding", http.StatusBadRequest)
		return
	}

	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.recordAdjustment(OutcomeError, start)
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	// A delta outside int32 can never produce a storable score
	if req.Delta > math.MaxInt32 || req.Delta < math.MinInt32 {
		s.recordAdjustment(OutcomeOutOfRange, start)
		sendError(w, "Delta out of range", http.StatusUnprocessableEntity)
		return
	}

	if err := s.store.Adjust(player, int32(req.Delta)); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidName):
			s.recordAdjustment(OutcomeInvalidName, start)
			sendError(w, fmt.Sprintf("Invalid player name: %v", err), http.StatusBadRequest)
		case errors.Is(err, store.ErrScoreOutOfRange):
			s.recordAdjustment(OutcomeOutOfRange, start)
			sendError(w, fmt.Sprintf("Score out of range: %v", err), http.StatusUnprocessableEntity)
		case errors.Is(err, store.ErrCorruptRecord):
			s.recordAdjustment(OutcomeCorruptRecord, start)
			sendError(w, fmt.Sprintf("Scores file corruption: %v", err), http.StatusInternalServerError)
		default:
			s.recordAdjustment(OutcomeError, start)
			sendError(w, fmt.Sprintf("Failed to adjust score: %v", err), http.StatusInternalServerError)
		}
		return
	}

	s.recordAdjustment(OutcomeSuccess, start)
	sendSuccess(w, map[string]interface{}{
		"player": player,
		"delta":  req.Delta,
	})
}

// handleStats reports scores file diagnostics
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to get stats: %v", err), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, map[string]interface{}{
		"records":         stats.Records,
		"file_size_bytes": stats.FileSize,
	})
}

func (s *Server) recordAdjustment(outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordAdjustment(outcome, time.Since(start))
	}
}

// startMetricsUpdater refreshes the scores file gauges periodically
func (s *Server) startMetricsUpdater() {
	if s.metrics == nil {
		return
	}

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats, err := s.store.Stats()
		if err != nil {
			continue
		}
		s.metrics.UpdateStoreStats(stats.Records, stats.FileSize)
	}
}
