// Package textprep implements stage 1 of document processing: cleaning the
// raw text and deriving its normalized form, counts and summary.
package textprep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/etldocs/doctext/internal/repository"
	"github.com/etldocs/doctext/internal/textutil"
)

// Config holds behavior knobs for the prep stage.
type Config struct {
	SummaryWords int // default 50
}

type Pipeline struct {
	DocsRepo repository.DocumentRepository
	JobsRepo repository.JobRepository
	Cfg      Config
	Log      *slog.Logger
}

func NewPipeline(docs repository.DocumentRepository, jobs repository.JobRepository, cfg Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if cfg.SummaryWords <= 0 {
		cfg.SummaryWords = 50
	}
	return &Pipeline{DocsRepo: docs, JobsRepo: jobs, Cfg: cfg, Log: log}
}

// Result summarizes the prep stage for the caller; the full outputs are
// persisted on the job.
type Result struct {
	CleanText string
	WordCount int
	CharCount int
}

// Run starts a process_job for the document, strips markup when the source
// is HTML, and persists the normalized text, counts and summary.
func (p *Pipeline) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, Result, error) {
	doc, err := p.DocsRepo.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, Result{}, fmt.Errorf("get document: %w", err)
	}

	job, err := p.JobsRepo.Start(ctx, doc.ID)
	if err != nil {
		return uuid.Nil, Result{}, err
	}

	clean := doc.RawText
	if doc.SourceKind == "HTML" {
		clean = textutil.StripHTML(clean)
	}

	res := Result{
		CleanText: clean,
		WordCount: textutil.WordCount(clean),
		CharCount: textutil.CharCount(clean, true),
	}
	prep := repository.PrepResult{
		NormalizedText: textutil.Normalize(clean),
		Summary:        textutil.Summarize(clean, p.Cfg.SummaryWords),
		WordCount:      res.WordCount,
		CharCount:      res.CharCount,
	}
	if err := p.JobsRepo.FinishPrep(ctx, job.ID, prep); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}
	return job.ID, res, nil
}
