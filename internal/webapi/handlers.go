package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/cwbudde/algo-vibration/ingest"
	"github.com/cwbudde/algo-vibration/measure/vibration"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleAnalyze accepts a multipart upload under the "file" field, parses it
// as a waveform, and returns the analysis result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if !ingest.Supported(ext) {
		writeError(w, http.StatusBadRequest, "unsupported file format, expected .csv or .txt")
		return
	}

	samples, err := ingest.Read(file, ext)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.analyzer.Analyze(samples)
	if err != nil {
		switch {
		case errors.Is(err, vibration.ErrEmptyInput),
			errors.Is(err, vibration.ErrNonFiniteInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Printf("analyze %s: %v", header.Filename, err)
			writeError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
