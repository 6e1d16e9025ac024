package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/etldocs/doctext/constants"
	"github.com/etldocs/doctext/internal/common"
	"github.com/etldocs/doctext/internal/entity"
)

type createDocumentRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type jobReply struct {
	ID           uuid.UUID  `json:"id"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	Summary      string     `json:"summary"`
	WordCount    int        `json:"word_count"`
	CharCount    int        `json:"char_count"`
	KeywordCount int        `json:"keyword_count"`
	ChunkCount   int        `json:"chunk_count"`
}

type documentReply struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	SourceKind string    `json:"source_kind"`
	UploadedAt time.Time `json:"uploaded_at"`
	Job        *jobReply `json:"job,omitempty"`
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Filename = strings.TrimSpace(req.Filename)
	if req.Filename == "" || req.Text == "" {
		http.Error(w, "filename and text are required", http.StatusBadRequest)
		return
	}
	kind := constants.MapExtToKind(filepath.Ext(req.Filename))
	if kind == "" {
		http.Error(w, "unsupported file extension", http.StatusBadRequest)
		return
	}

	doc := &entity.Document{
		Filename:   req.Filename,
		SourceKind: kind,
		RawText:    req.Text,
	}
	if err := s.docsRepo.Create(r.Context(), doc); err != nil {
		s.logger.Error("create document failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	jobID, err := s.proc.ProcessDocument(r.Context(), doc.ID)
	if err != nil {
		s.logger.Error("process document failed",
			zap.String("document_id", doc.ID.String()), zap.Error(err))
		// The document was stored. Report the job so the failure is visible.
	}
	reply := documentReply{
		ID:         doc.ID,
		Filename:   doc.Filename,
		SourceKind: doc.SourceKind,
		UploadedAt: doc.UploadedAt,
	}
	if job, jerr := s.jobsRepo.GetByID(r.Context(), jobID); jerr == nil {
		reply.Job = toJobReply(job)
	}
	writeJSON(w, http.StatusCreated, reply)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "id must be a UUID", http.StatusBadRequest)
		return
	}
	doc, err := s.docsRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		s.logger.Error("get document failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	reply := documentReply{
		ID:         doc.ID,
		Filename:   doc.Filename,
		SourceKind: doc.SourceKind,
		UploadedAt: doc.UploadedAt,
	}
	if job, err := s.jobsRepo.LatestForDocument(r.Context(), doc.ID); err == nil {
		reply.Job = toJobReply(job)
	}
	writeJSON(w, http.StatusOK, reply)
}

// handleExport streams an XLSX workbook of documents for an optional
// YYYY-MM-DD window given by the from/to query parameters.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(r.URL.Query().Get("from")); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(r.URL.Query().Get("to")); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportDocumentsXLSX(r.Context(), fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="documents.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsx)
}

func toJobReply(job *entity.ProcessJob) *jobReply {
	if job == nil {
		return nil
	}
	return &jobReply{
		ID:           job.ID,
		Status:       job.Status,
		StartedAt:    job.StartedAt,
		FinishedAt:   job.FinishedAt,
		ErrorMessage: job.ErrorMessage,
		Summary:      job.Summary,
		WordCount:    job.WordCount,
		CharCount:    job.CharCount,
		KeywordCount: job.KeywordCount,
		ChunkCount:   job.ChunkCount,
	}
}
