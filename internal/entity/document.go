package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an ingested document for data transfer between layers.
// RawText is the plain text produced by the upstream extraction pipeline.
type Document struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	SourceKind string    `json:"source_kind"`
	RawText    string    `json:"raw_text"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ProcessJob tracks one processing run over a document and carries the
// stage outputs.
type ProcessJob struct {
	ID             uuid.UUID  `json:"id"`
	DocumentID     uuid.UUID  `json:"document_id"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	NormalizedText string     `json:"normalized_text"`
	Summary        string     `json:"summary"`
	WordCount      int        `json:"word_count"`
	CharCount      int        `json:"char_count"`
	EntitiesJSON   []byte     `json:"entities_json,omitempty"`
	KeywordCount   int        `json:"keyword_count"`
	ChunkCount     int        `json:"chunk_count"`
}
