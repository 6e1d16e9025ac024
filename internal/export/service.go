package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/etldocs/doctext/internal/repository"
	"github.com/etldocs/doctext/internal/textutil"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	docsRepo       repository.DocumentRepository
	jobsRepo       repository.JobRepository
	summaryDisplay int
	logger         *slog.Logger
}

func NewService(docs repository.DocumentRepository, jobs repository.JobRepository, summaryDisplay int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if summaryDisplay <= 0 {
		summaryDisplay = 100
	}
	return &Service{docsRepo: docs, jobsRepo: jobs, summaryDisplay: summaryDisplay, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all documents.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	docs, err := s.docsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"Filename",
		"Source",
		"Status",
		"Words",
		"Chars",
		"Keywords",
		"Chunks",
		"Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.UploadedAt.UTC().Format("2006-01-02"))
		write(2, d.Filename)
		write(3, d.SourceKind)

		// Latest job may be missing for freshly ingested documents.
		job, err := s.jobsRepo.LatestForDocument(ctx, d.ID)
		if err != nil || job == nil {
			write(4, "")
			row++
			continue
		}
		write(4, job.Status)
		write(5, job.WordCount)
		write(6, job.CharCount)
		write(7, job.KeywordCount)
		write(8, job.ChunkCount)
		write(9, textutil.TruncateForDisplay(job.Summary, s.summaryDisplay))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "D", 14) // source, status
	_ = f.SetColWidth(sheet, "E", "H", 10) // counts
	_ = f.SetColWidth(sheet, "I", "I", 60) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
