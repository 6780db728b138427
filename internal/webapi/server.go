// Package webapi exposes the vibration analysis pipeline over HTTP: a health
// probe and a multipart upload endpoint returning the full analysis result
// as JSON.
package webapi

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/cwbudde/algo-vibration/measure/vibration"
)

// MaxUploadBytes caps the accepted request body size.
const MaxUploadBytes = 16 << 20

// Server serves the analysis API with a fixed analyzer configuration.
type Server struct {
	analyzer *vibration.Analyzer
	logger   *log.Logger
}

// New creates a Server around the given analyzer. A nil logger discards
// request logs.
func New(analyzer *vibration.Analyzer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{analyzer: analyzer, logger: logger}
}

// Router returns the bare route table, without middleware. Useful for
// mounting under an existing server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost)

	return r
}

// Handler returns the full handler stack: routing wrapped in panic recovery
// and request logging.
func (s *Server) Handler() http.Handler {
	h := handlers.RecoveryHandler(
		handlers.RecoveryLogger(s.logger),
	)(s.Router())

	return handlers.LoggingHandler(s.logger.Writer(), h)
}
