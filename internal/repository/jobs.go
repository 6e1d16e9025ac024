package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/etldocs/doctext/constants"
	"github.com/etldocs/doctext/internal/common"
	"github.com/etldocs/doctext/internal/entity"
)

// PrepResult carries the stage-1 outputs persisted on a job.
type PrepResult struct {
	NormalizedText string
	Summary        string
	WordCount      int
	CharCount      int
}

// EntitiesResult carries the stage-2 outputs persisted on a job.
type EntitiesResult struct {
	EntitiesJSON []byte
	KeywordCount int
	ChunkCount   int
}

type JobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID) (*entity.ProcessJob, error)
	FinishPrep(ctx context.Context, jobID uuid.UUID, res PrepResult) error
	FinishEntities(ctx context.Context, jobID uuid.UUID, res EntitiesResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, msg string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ProcessJob, error)
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (*entity.ProcessJob, error)
}

type jobRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewJobRepository(db *sqlx.DB, logger *slog.Logger) JobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepository{db: db, logger: logger}
}

type jobRow struct {
	ID             string         `db:"id"`
	DocumentID     string         `db:"document_id"`
	Status         string         `db:"status"`
	StartedAt      time.Time      `db:"started_at"`
	FinishedAt     sql.NullTime   `db:"finished_at"`
	ErrorMessage   sql.NullString `db:"error_message"`
	NormalizedText string         `db:"normalized_text"`
	Summary        string         `db:"summary"`
	WordCount      int            `db:"word_count"`
	CharCount      int            `db:"char_count"`
	EntitiesJSON   sql.NullString `db:"entities_json"`
	KeywordCount   int            `db:"keyword_count"`
	ChunkCount     int            `db:"chunk_count"`
}

func (r jobRow) toEntity() (*entity.ProcessJob, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	docID, err := uuid.Parse(r.DocumentID)
	if err != nil {
		return nil, err
	}
	job := &entity.ProcessJob{
		ID:             id,
		DocumentID:     docID,
		Status:         r.Status,
		StartedAt:      r.StartedAt,
		NormalizedText: r.NormalizedText,
		Summary:        r.Summary,
		WordCount:      r.WordCount,
		CharCount:      r.CharCount,
		KeywordCount:   r.KeywordCount,
		ChunkCount:     r.ChunkCount,
	}
	if r.FinishedAt.Valid {
		t := r.FinishedAt.Time
		job.FinishedAt = &t
	}
	if r.ErrorMessage.Valid {
		m := r.ErrorMessage.String
		job.ErrorMessage = &m
	}
	if r.EntitiesJSON.Valid {
		job.EntitiesJSON = []byte(r.EntitiesJSON.String)
	}
	return job, nil
}

const jobColumns = `id, document_id, status, started_at, finished_at, error_message,
	normalized_text, summary, word_count, char_count, entities_json, keyword_count, chunk_count`

// Start records a new job as queued, then promotes it to running.
func (r *jobRepository) Start(ctx context.Context, documentID uuid.UUID) (*entity.ProcessJob, error) {
	job := &entity.ProcessJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     string(constants.JobStatusQueued),
		StartedAt:  time.Now().UTC(),
	}
	q := r.db.Rebind(`INSERT INTO process_jobs (id, document_id, status, started_at)
		VALUES (?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		job.ID.String(), job.DocumentID.String(), job.Status, job.StartedAt)
	if err != nil {
		r.logger.Error("failed to start job", "document_id", documentID, "error", err)
		return nil, common.WrapError(err, "start job")
	}

	q = r.db.Rebind(`UPDATE process_jobs SET status = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, q, string(constants.JobStatusRunning), job.ID.String()); err != nil {
		r.logger.Error("failed to mark job running", "job_id", job.ID, "error", err)
		return nil, common.WrapError(err, "mark job running")
	}
	job.Status = string(constants.JobStatusRunning)
	return job, nil
}

func (r *jobRepository) FinishPrep(ctx context.Context, jobID uuid.UUID, res PrepResult) error {
	q := r.db.Rebind(`UPDATE process_jobs
		SET status = ?, normalized_text = ?, summary = ?, word_count = ?, char_count = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		string(constants.JobStatusPrepOK),
		res.NormalizedText, res.Summary, res.WordCount, res.CharCount,
		jobID.String())
	if err != nil {
		r.logger.Error("failed to persist prep result", "job_id", jobID, "error", err)
		return common.WrapError(err, "finish prep")
	}
	return nil
}

func (r *jobRepository) FinishEntities(ctx context.Context, jobID uuid.UUID, res EntitiesResult) error {
	q := r.db.Rebind(`UPDATE process_jobs
		SET status = ?, finished_at = ?, entities_json = ?, keyword_count = ?, chunk_count = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		string(constants.JobStatusEntitiesOK),
		time.Now().UTC(),
		string(res.EntitiesJSON), res.KeywordCount, res.ChunkCount,
		jobID.String())
	if err != nil {
		r.logger.Error("failed to persist entities result", "job_id", jobID, "error", err)
		return common.WrapError(err, "finish entities")
	}
	return nil
}

func (r *jobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, msg string) error {
	q := r.db.Rebind(`UPDATE process_jobs
		SET status = ?, finished_at = ?, error_message = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		string(constants.JobStatusFailed), time.Now().UTC(), msg, jobID.String())
	if err != nil {
		r.logger.Error("failed to mark job failed", "job_id", jobID, "error", err)
		return common.WrapError(err, "finish failure")
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ProcessJob, error) {
	var row jobRow
	q := r.db.Rebind(`SELECT ` + jobColumns + ` FROM process_jobs WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, q, jobID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundf("job %s", jobID)
		}
		return nil, common.WrapError(err, "get job")
	}
	return row.toEntity()
}

func (r *jobRepository) LatestForDocument(ctx context.Context, documentID uuid.UUID) (*entity.ProcessJob, error) {
	var row jobRow
	q := r.db.Rebind(`SELECT ` + jobColumns + ` FROM process_jobs
		WHERE document_id = ? ORDER BY started_at DESC LIMIT 1`)
	if err := r.db.GetContext(ctx, &row, q, documentID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundf("no jobs for document %s", documentID)
		}
		return nil, common.WrapError(err, "latest job")
	}
	return row.toEntity()
}
