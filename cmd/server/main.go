// @title         gemini-ats API
// @version       1.0
// @description   Resume screening service: upload PDF/DOCX resumes, parse them into candidate profiles with an LLM and rank them against a job description.
// @BasePath      /
// @schemes       http
// @host          localhost:5000
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/Vijaybattula26/gemini-ats/docs"

	// internal imports
	"github.com/Vijaybattula26/gemini-ats/api/http"
	"github.com/Vijaybattula26/gemini-ats/api/http/handlers"
	"github.com/Vijaybattula26/gemini-ats/pkg/analysis"
	"github.com/Vijaybattula26/gemini-ats/pkg/config"
	"github.com/Vijaybattula26/gemini-ats/pkg/health"
	"github.com/Vijaybattula26/gemini-ats/pkg/logging"
	"github.com/Vijaybattula26/gemini-ats/pkg/metrics"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/screening"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from env/.env and optional CONFIG_FILE
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("shutdown", "err", err)
			}
		}
	}()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	closers = append(closers, store.close)

	model, cacheChecker, cacheClose, err := buildChatModel(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cacheClose != nil {
		closers = append(closers, cacheClose)
	}

	files, err := buildFileStore(ctx, cfg)
	if err != nil {
		return err
	}

	publisher, brokerChecker, err := buildPublisher(cfg, logger)
	if err != nil {
		return err
	}
	closers = append(closers, publisher.Close)

	extractor, err := resume.NewExtractor(cfg.UnidocLicenseKey)
	if err != nil {
		return err
	}

	counters := metrics.New()
	screeningUC := screening.NewService(
		store.repo,
		resume.NewProfileService(model),
		analysis.NewService(model, logger),
		screening.WithEvents(publisher),
		screening.WithMetrics(counters),
		screening.WithLogger(logger),
	)

	// Health service: compose checkers
	readiness := health.NewService(append([]health.Checker{store.checker}, optionalCheckers(cacheChecker, brokerChecker)...)...)

	healthHandler := handlers.NewHealthHandler(readiness, counters)
	resumeHandler := handlers.NewResumeHandler(store.repo, extractor, files, screeningUC, publisher, counters, logger, cfg.MaxUploadBytes)
	candidatesHandler := handlers.NewCandidatesHandler(store.repo, logger)

	app := http.NewApp(cfg.MaxUploadBytes, true)
	http.Register(app, healthHandler, resumeHandler, candidatesHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.Port, "llm_provider", cfg.LLMProvider, "store", store.kind)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
