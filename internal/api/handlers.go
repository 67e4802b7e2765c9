package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aatumaykin/croncal/internal/calendar"
	"github.com/aatumaykin/croncal/internal/cronexpr"
	"github.com/aatumaykin/croncal/internal/estimator"
	"github.com/aatumaykin/croncal/internal/job"
	"github.com/aatumaykin/croncal/internal/logger"
)

type jobSummary struct {
	ID      string           `json:"id"`
	Name    string           `json:"name,omitempty"`
	Enabled bool             `json:"enabled"`
	Kind    job.ScheduleKind `json:"kind"`
}

type dayEstimate struct {
	Date  string         `json:"date"`
	Jobs  map[string]int `json:"jobs,omitempty"`
	Total int            `json:"total"`
}

type estimateResponse struct {
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Days  []dayEstimate `json:"days"`
}

type errorResponse struct {
	Error string `json:"error"`
	JobID string `json:"jobId,omitempty"`
}

func (s *Server) handleJobs(w http.ResponseWriter, _ *http.Request) {
	summaries := make([]jobSummary, 0, len(s.jobs))
	for _, j := range s.jobs {
		summaries = append(summaries, jobSummary{
			ID:      j.ID,
			Name:    j.Name,
			Enabled: j.Enabled,
			Kind:    j.Schedule.Kind,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": summaries})
}

// handleEstimate resolves a calendar view around an anchor instant and
// returns per-day occurrence counts for every job (or a single job when
// ?job= is given). A cron parse failure is reported as 422 with the job id
// so the UI can show an error badge instead of a silent zero.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status, err := s.estimate(w, r)
	s.metrics.observeRequest(fmt.Sprintf("%d", status), time.Since(start))

	if err != nil {
		s.log.Warn("estimate request failed",
			logger.Field{Key: "status", Value: status},
			logger.Field{Key: "error", Value: err.Error()})
	}
}

func (s *Server) estimate(w http.ResponseWriter, r *http.Request) (int, error) {
	query := r.URL.Query()

	viewText := query.Get("view")
	if viewText == "" {
		viewText = string(calendar.ViewMonth)
	}
	view, err := calendar.ParseView(viewText)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return http.StatusBadRequest, err
	}

	anchor := time.Now().UTC()
	if anchorText := query.Get("anchor"); anchorText != "" {
		anchor, err = parseAnchor(anchorText)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return http.StatusBadRequest, err
		}
	}

	jobs := s.jobs
	if id := query.Get("job"); id != "" {
		j, ok := s.byID[id]
		if !ok {
			err := fmt.Errorf("unknown job: %q", id)
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), JobID: id})
			return http.StatusNotFound, err
		}
		jobs = []job.Job{j}
	}

	rng, err := calendar.RangeForView(anchor, view)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return http.StatusBadRequest, err
	}

	resp := estimateResponse{Start: rng.Start, End: rng.End}
	for d := rng.Start; !d.After(rng.End); d = calendar.AddDays(d, 1) {
		day := dayEstimate{Date: d.Format("2006-01-02"), Jobs: make(map[string]int, len(jobs))}
		for _, j := range jobs {
			count, err := estimator.RunsForDate(j, d)
			if err != nil {
				var perr *cronexpr.ParseError
				if errors.As(err, &perr) {
					s.metrics.observeParseFailure()
					writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), JobID: j.ID})
					return http.StatusUnprocessableEntity, err
				}
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), JobID: j.ID})
				return http.StatusInternalServerError, err
			}
			day.Jobs[j.ID] = count
			day.Total += count
		}
		resp.Days = append(resp.Days, day)
	}

	writeJSON(w, http.StatusOK, resp)
	return http.StatusOK, nil
}

// parseAnchor accepts RFC 3339 instants and plain UTC dates (2026-03-15).
func parseAnchor(text string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", text); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid anchor %q (expected RFC 3339 or YYYY-MM-DD)", text)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
