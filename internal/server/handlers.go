package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cloudsift/cloudsift/internal/models"
)

// handleSummarize summarizes one scan's findings. A malformed body is
// the only request-level fault; the pipeline itself always returns a
// best-effort report.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request: "+err.Error())
		return
	}

	report := s.summarizer.Summarize(r.Context(), &req)
	s.writeJSON(w, http.StatusOK, report)
}

// handleSummarizeStream accepts findings as a JSON stream (one object
// per line) and summarizes the accumulated batch once the stream ends,
// as a synthetic request with fixed identifiers.
func (s *Server) handleSummarizeStream(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)

	var findings []models.Finding
	for {
		var f models.Finding
		if err := dec.Decode(&f); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			s.writeError(w, http.StatusBadRequest, "malformed finding stream: "+err.Error())
			return
		}
		findings = append(findings, f)
	}

	req := &models.SummarizeRequest{
		ScanID:    "streaming",
		AccountID: "unknown",
		Findings:  findings,
	}

	report := s.summarizer.Summarize(r.Context(), req)
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
