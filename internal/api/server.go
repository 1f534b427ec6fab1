// Package api exposes the analysis pipeline over HTTP: one multipart
// upload in, one feedback report out.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/agent"
	"github.com/fmuoria/resume-insight/internal/ingestion"
	"github.com/fmuoria/resume-insight/internal/models"
)

const maxUploadBytes = 32 << 20 // 32 MB

// Server handles HTTP requests
type Server struct {
	agent  *agent.Agent
	files  *ingestion.FileHandler
	logger *zap.Logger
}

// NewServer creates a new API server
func NewServer(a *agent.Agent, files *ingestion.FileHandler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		agent:  a,
		files:  files,
		logger: logger,
	}
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	return s.loggingMiddleware(mux)
}

// handleRoot provides API information
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "Resume Insight",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /analyze": "Upload a resume and receive a feedback report",
			"GET /health":   "Health check",
		},
	})
}

// handleHealth provides a health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleAnalyze saves the uploaded resume and runs the full pipeline
// on it. Targeting context comes from optional form fields.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	req, err := parseAnalyzeRequest(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := s.files.SaveUploadedFile(header.Filename, file)
	if err != nil {
		if errors.Is(err, ingestion.ErrUnsupportedType) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save file: %v", err))
		return
	}

	report, err := s.agent.AnalyzeFile(r.Context(), path, req)
	if err != nil {
		s.respondError(w, statusFor(err), err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, report)
}

// parseAnalyzeRequest reads the optional targeting fields from the
// multipart form. Skill lists are comma-separated.
func parseAnalyzeRequest(r *http.Request) (models.AnalyzeRequest, error) {
	req := models.AnalyzeRequest{
		JobTitle:        r.FormValue("job_title"),
		JobDescription:  r.FormValue("job_description"),
		RequiredSkills:  splitSkills(r.FormValue("required_skills")),
		PreferredSkills: splitSkills(r.FormValue("preferred_skills")),
	}

	if raw := r.FormValue("target_years"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("target_years must be an integer: %q", raw)
		}
		req.TargetYears = &years
	}

	return req, nil
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, agent.ErrInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
