package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/etldocs/doctext/constants"
	"github.com/etldocs/doctext/internal/common"
	"github.com/etldocs/doctext/internal/entity"
	"github.com/etldocs/doctext/internal/export"
	processor "github.com/etldocs/doctext/internal/pipeline"
	"github.com/etldocs/doctext/internal/pipeline/entities"
	"github.com/etldocs/doctext/internal/pipeline/textprep"
	"github.com/etldocs/doctext/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory with .txt/.html/.md documents (required)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		chunkSize = flag.Int("chunk-size", 0, "chunk size in characters (0 uses CHUNK_SIZE or 1000)")
		overlap   = flag.Int("overlap", 0, "chunk overlap in characters (0 uses CHUNK_OVERLAP or 100)")
		minFreq   = flag.Int("min-freq", 0, "minimum keyword frequency (0 uses MIN_KEYWORD_FREQ or 2)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "documents.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *chunkSize > 0 {
		cfg.Processing.ChunkSize = *chunkSize
	}
	if *overlap > 0 {
		cfg.Processing.ChunkOverlap = *overlap
	}
	if *minFreq > 0 {
		cfg.Processing.MinKeywordFreq = *minFreq
	}

	var (
		db  *sqlx.DB
		err error
	)
	if *inmem {
		db, err = repository.OpenSQLite(ctx, ":memory:", logger)
	} else {
		db, err = repository.Open(ctx, cfg.Database, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	docsRepo := repository.NewDocumentRepository(db, logger)
	jobsRepo := repository.NewJobRepository(db, logger)

	prep := textprep.NewPipeline(docsRepo, jobsRepo, textprep.Config{
		SummaryWords: cfg.Processing.SummaryWords,
	}, logger)
	ent := entities.NewPipeline(jobsRepo, entities.Config{
		ChunkSize:      cfg.Processing.ChunkSize,
		ChunkOverlap:   cfg.Processing.ChunkOverlap,
		MinKeywordFreq: cfg.Processing.MinKeywordFreq,
	}, logger)
	proc := processor.NewProcessor(logger, prep, ent)

	logger.Info("starting ingestion", "dir", *dir)
	ingested, skipped, err := ingestDirectory(ctx, docsRepo, *dir, logger)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete", "ingested", len(ingested), "skipped", skipped)

	processed := 0
	failures := 0
	for _, doc := range ingested {
		logger.Info("processing document", "document_id", doc.ID, "filename", doc.Filename)
		if _, err := proc.ProcessDocument(ctx, doc.ID); err != nil {
			logger.Error("failed to process document", "document_id", doc.ID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exporter := export.NewService(docsRepo, jobsRepo, cfg.Processing.DisplayMaxLen, logger)
	xlsxBytes, err := exporter.ExportDocumentsXLSX(ctx, nil, nil)
	if err != nil {
		logger.Error("failed to export documents", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

// ingestDirectory walks dir and stores every file with an allowed extension.
func ingestDirectory(ctx context.Context, docs repository.DocumentRepository, dir string, logger *slog.Logger) ([]*entity.Document, int, error) {
	var ingested []*entity.Document
	skipped := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind := constants.MapExtToKind(filepath.Ext(path))
		if kind == "" {
			skipped++
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			skipped++
			return nil
		}
		doc := &entity.Document{
			Filename:   filepath.Base(path),
			SourceKind: kind,
			RawText:    string(raw),
		}
		if err := docs.Create(ctx, doc); err != nil {
			return fmt.Errorf("store %s: %w", path, err)
		}
		ingested = append(ingested, doc)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return ingested, skipped, nil
}
