package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/etldocs/doctext/internal/pipeline/entities"
	"github.com/etldocs/doctext/internal/pipeline/textprep"
)

// Processor coordinates text preparation then entity extraction.
type Processor struct {
	Logger *slog.Logger
	Prep   *textprep.Pipeline
	Ent    *entities.Pipeline
}

func NewProcessor(logger *slog.Logger, prep *textprep.Pipeline, ent *entities.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Prep: prep, Ent: ent}
}

// ProcessDocument runs the prep stage for a documentID (creating and
// advancing a process job), then runs entity extraction on the cleaned
// text. Returns the jobID started by the prep stage.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	// 1) prep stage → creates job + stores normalized text, summary, counts
	jobID, prepRes, err := p.Prep.Run(ctx, documentID)
	if err != nil {
		p.Logger.Error("processor.prep.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.prep.ok",
		"document_id", documentID,
		"job_id", jobID,
		"word_count", prepRes.WordCount,
		"char_count", prepRes.CharCount,
	)

	// 2) entities stage → extracts entities, keywords and chunks from the cleaned text.
	counts, err := p.Ent.Run(ctx, jobID, prepRes.CleanText)
	if err != nil {
		p.Logger.Error("processor.entities.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.entities.ok",
		"job_id", jobID,
		"total", counts.Total,
		"valid_tax_ids", counts.ValidTaxIDs,
		"valid_amounts", counts.ValidAmounts,
		"valid_emails", counts.ValidEmails,
	)
	return jobID, nil
}
