// Package server exposes the toolkit over a REST JSON API.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/etldocs/doctext/internal/common"
	"github.com/etldocs/doctext/internal/export"
	processor "github.com/etldocs/doctext/internal/pipeline"
	"github.com/etldocs/doctext/internal/repository"
)

type Server struct {
	docsRepo repository.DocumentRepository
	jobsRepo repository.JobRepository
	proc     *processor.Processor
	exporter *export.Service
	cfg      common.ProcessingConfig
	logger   *zap.Logger
}

func NewServer(
	docs repository.DocumentRepository,
	jobs repository.JobRepository,
	proc *processor.Processor,
	exporter *export.Service,
	cfg common.ProcessingConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		docsRepo: docs,
		jobsRepo: jobs,
		proc:     proc,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
	}
}

// Routes registers every handler on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/text/normalize", s.handleNormalize)
	mux.HandleFunc("POST /v1/text/strip-html", s.handleStripHTML)
	mux.HandleFunc("POST /v1/text/similarity", s.handleSimilarity)
	mux.HandleFunc("POST /v1/text/chunks", s.handleChunks)
	mux.HandleFunc("POST /v1/text/keywords", s.handleKeywords)
	mux.HandleFunc("POST /v1/text/entities", s.handleEntities)

	mux.HandleFunc("POST /v1/documents", s.handleCreateDocument)
	mux.HandleFunc("GET /v1/documents/{id}", s.handleGetDocument)
	mux.HandleFunc("GET /v1/export", s.handleExport)

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
