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

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.Document, error)
}

type documentRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewDocumentRepository(db *sqlx.DB, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{db: db, logger: logger}
}

type documentRow struct {
	ID         string    `db:"id"`
	Filename   string    `db:"filename"`
	SourceKind string    `db:"source_kind"`
	RawText    string    `db:"raw_text"`
	UploadedAt time.Time `db:"uploaded_at"`
}

func (r documentRow) toEntity() (*entity.Document, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	return &entity.Document{
		ID:         id,
		Filename:   r.Filename,
		SourceKind: r.SourceKind,
		RawText:    r.RawText,
		UploadedAt: r.UploadedAt,
	}, nil
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	if !constants.IsSourceKind(doc.SourceKind) {
		return common.InvalidInputf("unknown source kind %q", doc.SourceKind)
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}
	q := r.db.Rebind(`INSERT INTO documents (id, filename, source_kind, raw_text, uploaded_at)
		VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		doc.ID.String(), doc.Filename, doc.SourceKind, doc.RawText, doc.UploadedAt)
	if err != nil {
		r.logger.Error("failed to create document", "filename", doc.Filename, "error", err)
		return common.WrapError(err, "create document")
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var row documentRow
	q := r.db.Rebind(`SELECT id, filename, source_kind, raw_text, uploaded_at
		FROM documents WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, q, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFoundf("document %s", id)
		}
		return nil, common.WrapError(err, "get document")
	}
	return row.toEntity()
}

func (r *documentRepository) List(ctx context.Context, from, to *time.Time) ([]*entity.Document, error) {
	q := `SELECT id, filename, source_kind, raw_text, uploaded_at FROM documents`
	var args []any
	switch {
	case from != nil && to != nil:
		q += ` WHERE uploaded_at >= ? AND uploaded_at <= ?`
		args = append(args, *from, *to)
	case from != nil:
		q += ` WHERE uploaded_at >= ?`
		args = append(args, *from)
	case to != nil:
		q += ` WHERE uploaded_at <= ?`
		args = append(args, *to)
	}
	q += ` ORDER BY uploaded_at`

	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
		return nil, common.WrapError(err, "list documents")
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toEntity()
		if err != nil {
			return nil, common.WrapError(err, "decode document row")
		}
		out = append(out, doc)
	}
	return out, nil
}
