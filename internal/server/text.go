package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/etldocs/doctext/internal/extract"
	"github.com/etldocs/doctext/internal/textutil"
)

type textRequest struct {
	Text string `json:"text"`
}

type textReply struct {
	Text string `json:"text"`
}

type similarityRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type similarityReply struct {
	Score float64 `json:"score"`
}

type chunksRequest struct {
	Text    string `json:"text"`
	Size    int    `json:"size"`
	Overlap int    `json:"overlap"`
}

type chunksReply struct {
	Chunks []string `json:"chunks"`
	Total  int      `json:"total"`
}

type keywordsRequest struct {
	Text    string `json:"text"`
	MinFreq int    `json:"min_freq"`
}

type keywordsReply struct {
	Keywords []textutil.Keyword `json:"keywords"`
}

type entitiesReply struct {
	Entities extract.EntitySet `json:"entities"`
	Counts   extract.Counts    `json:"counts"`
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, textReply{Text: textutil.Normalize(req.Text)})
}

func (s *Server) handleStripHTML(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, textReply{Text: textutil.StripHTML(req.Text)})
}

func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var req similarityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, similarityReply{Score: textutil.Similarity(req.A, req.B)})
}

func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	var req chunksRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Size == 0 {
		req.Size = s.cfg.ChunkSize
		if req.Overlap == 0 {
			req.Overlap = s.cfg.ChunkOverlap
		}
	}
	chunks, err := textutil.Chunk(req.Text, req.Size, req.Overlap)
	if err != nil {
		if errors.Is(err, textutil.ErrInvalidChunkConfig) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error("chunk failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chunksReply{Chunks: chunks, Total: len(chunks)})
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.MinFreq <= 0 {
		req.MinFreq = s.cfg.MinKeywordFreq
	}
	writeJSON(w, http.StatusOK, keywordsReply{Keywords: textutil.Keywords(req.Text, req.MinFreq)})
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	set := extract.CollectEntities(req.Text)
	writeJSON(w, http.StatusOK, entitiesReply{Entities: set, Counts: set.Summarize()})
}
