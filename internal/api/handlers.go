package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/user/assessment-finder/internal/domain"
)

type refreshResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status    string             `json:"status"`
	Timestamp string             `json:"timestamp"`
	Cache     domain.CacheStatus `json:"cache"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Job Test Finder API is running"))
}

func (s *Server) handleAssessments(w http.ResponseWriter, r *http.Request) {
	var req domain.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Job description is required")
		return
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		s.respondWithError(w, http.StatusBadRequest, "Job description is required")
		return
	}

	snapshot := s.cache.Get(r.Context())
	matched := s.matcher.Match(r.Context(), snapshot.Assessments, req.JobDescription)
	if matched == nil {
		matched = []domain.Assessment{}
	}

	s.respondWithJSON(w, http.StatusOK, matched)
}

func (s *Server) handleRefreshCache(w http.ResponseWriter, r *http.Request) {
	snapshot := s.cache.Refresh(r.Context())

	s.respondWithJSON(w, http.StatusOK, refreshResponse{
		Success: true,
		Message: fmt.Sprintf("Cache refreshed with %d assessments", len(snapshot.Assessments)),
	})
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Cache:     s.cache.Status(),
	})
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
