// Package entities implements stage 2 of document processing: entity
// extraction, keyword ranking and chunking over the prepared text.
package entities

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/etldocs/doctext/internal/extract"
	"github.com/etldocs/doctext/internal/repository"
	"github.com/etldocs/doctext/internal/textutil"
)

// Config holds thresholds for the entities stage.
type Config struct {
	ChunkSize      int // default 1000
	ChunkOverlap   int // default 100
	MinKeywordFreq int // default 2
}

type Pipeline struct {
	JobsRepo repository.JobRepository
	Cfg      Config
	Log      *slog.Logger
}

func NewPipeline(jobs repository.JobRepository, cfg Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1000
	}
	if cfg.ChunkOverlap <= 0 {
		cfg.ChunkOverlap = 100
	}
	if cfg.MinKeywordFreq <= 0 {
		cfg.MinKeywordFreq = 2
	}
	return &Pipeline{JobsRepo: jobs, Cfg: cfg, Log: log}
}

// Run extracts entities from cleanText, validates the payload, computes
// keywords and chunks, and persists the results on the job.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID, cleanText string) (extract.Counts, error) {
	set := extract.CollectEntities(cleanText)
	payload, err := set.Marshal()
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return extract.Counts{}, fmt.Errorf("serialize entities: %w", err)
	}

	keywords := textutil.Keywords(cleanText, p.Cfg.MinKeywordFreq)
	chunks, err := textutil.Chunk(cleanText, p.Cfg.ChunkSize, p.Cfg.ChunkOverlap)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return extract.Counts{}, fmt.Errorf("chunk text: %w", err)
	}

	res := repository.EntitiesResult{
		EntitiesJSON: payload,
		KeywordCount: len(keywords),
		ChunkCount:   len(chunks),
	}
	if err := p.JobsRepo.FinishEntities(ctx, jobID, res); err != nil {
		return extract.Counts{}, err
	}
	return set.Summarize(), nil
}
