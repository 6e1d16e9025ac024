package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/etldocs/doctext/internal/common"
	"github.com/etldocs/doctext/internal/export"
	processor "github.com/etldocs/doctext/internal/pipeline"
	"github.com/etldocs/doctext/internal/pipeline/entities"
	"github.com/etldocs/doctext/internal/pipeline/textprep"
	"github.com/etldocs/doctext/internal/repository"
	"github.com/etldocs/doctext/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Postgres when DB_URL is set, SQLite otherwise (SQLITE_PATH or in-memory).
	db, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()
	log.Infow("database ready")

	docs := repository.NewDocumentRepository(db, slogger)
	jobs := repository.NewJobRepository(db, slogger)

	prep := textprep.NewPipeline(docs, jobs, textprep.Config{
		SummaryWords: cfg.Processing.SummaryWords,
	}, slogger)
	ent := entities.NewPipeline(jobs, entities.Config{
		ChunkSize:      cfg.Processing.ChunkSize,
		ChunkOverlap:   cfg.Processing.ChunkOverlap,
		MinKeywordFreq: cfg.Processing.MinKeywordFreq,
	}, slogger)
	proc := processor.NewProcessor(slogger, prep, ent)
	exporter := export.NewService(docs, jobs, cfg.Processing.DisplayMaxLen, slogger)

	svc := server.NewServer(docs, jobs, proc, exporter, cfg.Processing, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.Routes(),
	}

	log.Infof("HTTP serving on %s", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
